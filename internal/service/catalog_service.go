package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

// CatalogService читательские запросы к контенту. Читает напрямую из БД без кешей,
// поэтому юзер видит только что разблокированную главу уже следующим запросом,
// каким бы процессом тот ни обслуживался.
type CatalogService struct {
	uow         uow.UOW
	storyRepo   StoryRepository
	chapterRepo ChapterRepository
	unlockRepo  UnlockRepository
	libraryRepo LibraryRepository
}

func NewCatalogService(u uow.UOW) (*CatalogService, error) {
	storyRepo, storyRepoErr := uow.GetRepositoryAs[StoryRepository](u, uow.RepositoryName(repoargs.StoryRepoName))
	if storyRepoErr != nil {
		return nil, storyRepoErr
	}
	chapterRepo, chapterRepoErr := uow.GetRepositoryAs[ChapterRepository](u, uow.RepositoryName(repoargs.ChapterRepoName))
	if chapterRepoErr != nil {
		return nil, chapterRepoErr
	}
	unlockRepo, unlockRepoErr := uow.GetRepositoryAs[UnlockRepository](u, uow.RepositoryName(repoargs.UnlockRepoName))
	if unlockRepoErr != nil {
		return nil, unlockRepoErr
	}
	libraryRepo, libraryRepoErr := uow.GetRepositoryAs[LibraryRepository](u, uow.RepositoryName(repoargs.LibraryRepoName))
	if libraryRepoErr != nil {
		return nil, libraryRepoErr
	}
	return &CatalogService{
		uow:         u,
		storyRepo:   storyRepo,
		chapterRepo: chapterRepo,
		unlockRepo:  unlockRepo,
		libraryRepo: libraryRepo,
	}, nil
}

// ChapterView глава с пометкой доступности для конкретного юзера.
type ChapterView struct {
	domain.Chapter
	IsUnlocked bool
}

type StoryView struct {
	Story     *domain.Story
	Chapters  []ChapterView
	IsLibrary bool
}

// GetStoryView собирает карточку истории для читателя. Глава помечается IsUnlocked, если
// она бесплатная либо у юзера есть запись разблокировки; анонимному юзеру (userID == "")
// открыты только бесплатные. История в статусе pending видна лишь своему автору,
// остальным возвращается domain.ErrRecordNotFound - для читателей ее не существует.
func (s *CatalogService) GetStoryView(ctx context.Context, storyID int64, userID string) (*StoryView, error) {
	story, storyErr := s.storyRepo.Find(ctx, storyID)
	if storyErr != nil {
		return nil, fmt.Errorf("getting story view %d: %w", storyID, storyErr)
	}
	if story.Status != domain.StoryStatusApproved && story.AuthorID != userID {
		return nil, domain.ErrRecordNotFound
	}

	chapters, chaptersErr := s.chapterRepo.GetByStoryID(ctx, storyID)
	if chaptersErr != nil {
		return nil, fmt.Errorf("getting story view %d: %w", storyID, chaptersErr)
	}

	unlocked := make(map[int64]struct{})
	var isLibrary bool
	if userID != "" {
		ids, idsErr := s.unlockRepo.GetChapterIDs(ctx, userID, storyID)
		if idsErr != nil {
			return nil, fmt.Errorf("getting story view %d: %w", storyID, idsErr)
		}
		for _, id := range ids {
			unlocked[id] = struct{}{}
		}

		var libErr error
		isLibrary, libErr = s.libraryRepo.Exists(ctx, userID, storyID)
		if libErr != nil {
			return nil, fmt.Errorf("getting story view %d: %w", storyID, libErr)
		}
	}

	views := make([]ChapterView, len(chapters))
	for i, chapter := range chapters {
		_, hasRecord := unlocked[chapter.ID]
		views[i] = ChapterView{
			Chapter:    chapter,
			IsUnlocked: chapter.Price == 0 || hasRecord,
		}
	}

	// Счетчик просмотров не критичен: его сбой не должен ломать чтение.
	if story.Status == domain.StoryStatusApproved {
		_ = s.storyRepo.IncrementViews(ctx, storyID)
	}

	return &StoryView{
		Story:     story,
		Chapters:  views,
		IsLibrary: isLibrary,
	}, nil
}

// Search ищет по одобренным историям. Пустой запрос возвращает пустой результат.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Story, error) {
	if query == "" {
		return nil, nil
	}
	stories, err := s.storyRepo.Search(ctx, query)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return stories, nil
}

// ToggleLibrary добавляет либо убирает историю из библиотеки юзера.
// Возвращает итоговое состояние: true - история в библиотеке.
func (s *CatalogService) ToggleLibrary(ctx context.Context, userID string, storyID int64) (bool, error) {
	var inLibrary bool
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		libraryRepo, libraryRepoErr := uow.GetAs[LibraryRepository](tx, uow.RepositoryName(repoargs.LibraryRepoName))
		if libraryRepoErr != nil {
			return libraryRepoErr //nolint:wrapcheck
		}

		exists, existsErr := libraryRepo.Exists(c, userID, storyID)
		if existsErr != nil {
			return existsErr //nolint:wrapcheck
		}
		if exists {
			inLibrary = false
			return libraryRepo.Delete(c, userID, storyID) //nolint:wrapcheck
		}
		inLibrary = true
		return libraryRepo.Insert(c, userID, storyID) //nolint:wrapcheck
	})
	if txErr != nil {
		return false, fmt.Errorf("toggling library item (%s, %d): %w", userID, storyID, txErr)
	}
	return inLibrary, nil
}
