package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/internal/service"
)

// Интерфейсы сервисного слоя, объявленные на стороне транспорта - исключительно для моков.

type WalletServicer interface {
	BalanceOf(ctx context.Context, userID string) (int64, error)
	History(ctx context.Context, userID string) ([]domain.LedgerEntry, error)
	Audit(ctx context.Context, userID string) (*service.WalletAudit, error)
}

type UnlockServicer interface {
	UnlockChapter(ctx context.Context, userID string, chapterID int64) (*domain.UnlockRecord, error)
}

type TopupServicer interface {
	Submit(ctx context.Context, args service.SubmitTopupArgs) (*domain.TopupRequest, error)
	Approve(ctx context.Context, requestID int64) (*domain.TopupRequest, error)
	Reject(ctx context.Context, requestID int64) (*domain.TopupRequest, error)
	ListPending(ctx context.Context) ([]repoargs.PendingTopup, error)
}

type StoryServicer interface {
	Create(ctx context.Context, args service.CreateStoryArgs) (*domain.Story, error)
	Approve(ctx context.Context, storyID int64) (*domain.Story, error)
	AddChapter(ctx context.Context, args service.AddChapterArgs) (*domain.Chapter, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]domain.Story, error)
	ListPending(ctx context.Context) ([]domain.Story, error)
}

type CatalogServicer interface {
	GetStoryView(ctx context.Context, storyID int64, userID string) (*service.StoryView, error)
	Search(ctx context.Context, query string) ([]domain.Story, error)
	ToggleLibrary(ctx context.Context, userID string, storyID int64) (bool, error)
}

type AuthorServicer interface {
	SubmitRequest(ctx context.Context, userID, reason string) (*domain.AuthorRequest, error)
}
