package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

// StoryService модерация контента: истории публикуются в статусе pending и становятся
// видимыми читателям только после одобрения оператором. Обратного перехода нет.
type StoryService struct {
	uow         uow.UOW
	storyRepo   StoryRepository
	chapterRepo ChapterRepository
}

func NewStoryService(u uow.UOW) (*StoryService, error) {
	storyRepo, storyRepoErr := uow.GetRepositoryAs[StoryRepository](u, uow.RepositoryName(repoargs.StoryRepoName))
	if storyRepoErr != nil {
		return nil, storyRepoErr
	}
	chapterRepo, chapterRepoErr := uow.GetRepositoryAs[ChapterRepository](u, uow.RepositoryName(repoargs.ChapterRepoName))
	if chapterRepoErr != nil {
		return nil, chapterRepoErr
	}
	return &StoryService{
		uow:         u,
		storyRepo:   storyRepo,
		chapterRepo: chapterRepo,
	}, nil
}

type CreateStoryArgs struct {
	AuthorID    string
	Title       string
	Description string
	CoverURL    string
}

func (s *StoryService) Create(ctx context.Context, args CreateStoryArgs) (*domain.Story, error) {
	story, err := s.storyRepo.Create(ctx, repoargs.StoryCreate{
		AuthorID:    args.AuthorID,
		Title:       args.Title,
		Description: args.Description,
		CoverURL:    args.CoverURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating story: %w", err)
	}
	return story, nil
}

// Approve одобряет историю. Повторное одобрение возвращает domain.ErrAlreadyApproved,
// несуществующая история - domain.ErrRecordNotFound.
func (s *StoryService) Approve(ctx context.Context, storyID int64) (*domain.Story, error) {
	story, err := s.storyRepo.Approve(ctx, storyID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			if _, findErr := s.storyRepo.Find(ctx, storyID); findErr == nil {
				return nil, domain.ErrAlreadyApproved
			}
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("approving story %d: %w", storyID, err)
	}
	return story, nil
}

type AddChapterArgs struct {
	StoryID  int64
	CallerID string
	Operator bool
	Title    string
	Content  string
	Price    int64
	IsVIP    bool
}

// AddChapter добавляет главу в историю. Добавлять может только автор истории
// (независимо от ее статуса модерации) либо оператор; иначе domain.ErrNotAuthor.
func (s *StoryService) AddChapter(ctx context.Context, args AddChapterArgs) (*domain.Chapter, error) {
	story, storyErr := s.storyRepo.Find(ctx, args.StoryID)
	if storyErr != nil {
		return nil, fmt.Errorf("adding chapter to story %d: %w", args.StoryID, storyErr)
	}
	if story.AuthorID != args.CallerID && !args.Operator {
		return nil, domain.ErrNotAuthor
	}
	if args.Price < 0 {
		return nil, domain.ErrInvalidAmount
	}

	chapter, chapterErr := s.chapterRepo.Create(ctx, repoargs.ChapterCreate{
		StoryID: args.StoryID,
		Title:   args.Title,
		Content: args.Content,
		Price:   args.Price,
		IsVIP:   args.IsVIP,
	})
	if chapterErr != nil {
		return nil, fmt.Errorf("adding chapter to story %d: %w", args.StoryID, chapterErr)
	}
	return chapter, nil
}

// GetByAuthorID возвращает все истории автора, включая ожидающие модерацию.
func (s *StoryService) GetByAuthorID(ctx context.Context, authorID string) ([]domain.Story, error) {
	stories, err := s.storyRepo.GetByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return stories, nil
}

// ListPending очередь модерации для оператора.
func (s *StoryService) ListPending(ctx context.Context) ([]domain.Story, error) {
	stories, err := s.storyRepo.ListPending(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return stories, nil
}
