package repoargs

type StoryCreate struct {
	AuthorID    string
	Title       string
	Description string
	CoverURL    string
}

type ChapterCreate struct {
	StoryID int64
	Title   string
	Content string
	Price   int64
	IsVIP   bool
}
