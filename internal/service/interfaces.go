package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type WalletRepository interface {
	Ensure(ctx context.Context, userID string) error
	Find(ctx context.Context, userID string) (*domain.Wallet, error)
	AddToBalance(ctx context.Context, userID string, delta int64) (*domain.Wallet, error)
}

type LedgerRepository interface {
	Create(ctx context.Context, entry repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error)
	SumDeltas(ctx context.Context, userID string) (int64, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.LedgerEntry, error)
}

type UnlockRepository interface {
	Create(ctx context.Context, userID string, chapterID int64) (*domain.UnlockRecord, error)
	Exists(ctx context.Context, userID string, chapterID int64) (bool, error)
	GetChapterIDs(ctx context.Context, userID string, storyID int64) ([]int64, error)
}

type TopupRepository interface {
	Create(ctx context.Context, args repoargs.TopupRequestCreate) (*domain.TopupRequest, error)
	Find(ctx context.Context, id int64) (*domain.TopupRequest, error)
	MarkDecided(ctx context.Context, id int64, status domain.TopupStatusType) (*domain.TopupRequest, error)
	ListPending(ctx context.Context) ([]repoargs.PendingTopup, error)
	ExpirePending(ctx context.Context, cutoff time.Time) (int64, error)
}

type StoryRepository interface {
	Create(ctx context.Context, args repoargs.StoryCreate) (*domain.Story, error)
	Find(ctx context.Context, id int64) (*domain.Story, error)
	Approve(ctx context.Context, id int64) (*domain.Story, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]domain.Story, error)
	ListPending(ctx context.Context) ([]domain.Story, error)
	Search(ctx context.Context, query string) ([]domain.Story, error)
	IncrementViews(ctx context.Context, id int64) error
}

type ChapterRepository interface {
	Create(ctx context.Context, args repoargs.ChapterCreate) (*domain.Chapter, error)
	Find(ctx context.Context, id int64) (*domain.Chapter, error)
	GetByStoryID(ctx context.Context, storyID int64) ([]domain.Chapter, error)
}

type LibraryRepository interface {
	Exists(ctx context.Context, userID string, storyID int64) (bool, error)
	Insert(ctx context.Context, userID string, storyID int64) error
	Delete(ctx context.Context, userID string, storyID int64) error
}

type AuthorRequestRepository interface {
	Create(ctx context.Context, userID, reason string) (*domain.AuthorRequest, error)
}
