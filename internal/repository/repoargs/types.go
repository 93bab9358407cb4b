package repoargs

type RepositoryName string

const (
	WalletRepoName        RepositoryName = "wallet"
	LedgerRepoName        RepositoryName = "ledger"
	UnlockRepoName        RepositoryName = "unlock"
	TopupRepoName         RepositoryName = "topup"
	StoryRepoName         RepositoryName = "story"
	ChapterRepoName       RepositoryName = "chapter"
	LibraryRepoName       RepositoryName = "library"
	AuthorRequestRepoName RepositoryName = "author_request"
)
