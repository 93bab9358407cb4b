package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/internal/service/mocks"
	"github.com/fsdevblog/groph-tales/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-tales/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockStoryRepo   *mocks.MockStoryRepository
	mockChapterRepo *mocks.MockChapterRepository
	mockUnlockRepo  *mocks.MockUnlockRepository
	mockLibraryRepo *mocks.MockLibraryRepository
	service         *CatalogService
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockStoryRepo = mocks.NewMockStoryRepository(s.mockCtrl)
	s.mockChapterRepo = mocks.NewMockChapterRepository(s.mockCtrl)
	s.mockUnlockRepo = mocks.NewMockUnlockRepository(s.mockCtrl)
	s.mockLibraryRepo = mocks.NewMockLibraryRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.StoryRepoName)).
		Return(s.mockStoryRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.ChapterRepoName)).
		Return(s.mockChapterRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UnlockRepoName)).
		Return(s.mockUnlockRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.LibraryRepoName)).
		Return(s.mockLibraryRepo, nil).AnyTimes()

	var err error
	s.service, err = NewCatalogService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *CatalogServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CatalogServiceTestSuite) TestGetStoryView() {
	userID := gofakeit.UUID()
	story := domain.Story{ID: 1, AuthorID: gofakeit.UUID(), Status: domain.StoryStatusApproved}
	chapters := []domain.Chapter{
		{ID: 1, StoryID: story.ID, Price: 0, Position: 1},
		{ID: 2, StoryID: story.ID, Price: 20, Position: 2},
		{ID: 3, StoryID: story.ID, Price: 20, Position: 3},
	}

	s.mockStoryRepo.EXPECT().Find(gomock.Any(), story.ID).Return(&story, nil)
	s.mockChapterRepo.EXPECT().GetByStoryID(gomock.Any(), story.ID).Return(chapters, nil)
	// разблокирована только вторая платная глава.
	s.mockUnlockRepo.EXPECT().GetChapterIDs(gomock.Any(), userID, story.ID).
		Return([]int64{2}, nil)
	s.mockLibraryRepo.EXPECT().Exists(gomock.Any(), userID, story.ID).Return(true, nil)
	s.mockStoryRepo.EXPECT().IncrementViews(gomock.Any(), story.ID).Return(nil)

	view, err := s.service.GetStoryView(s.T().Context(), story.ID, userID)
	s.Require().NoError(err)
	s.True(view.IsLibrary)
	s.Require().Len(view.Chapters, 3)
	s.True(view.Chapters[0].IsUnlocked)  // бесплатная
	s.True(view.Chapters[1].IsUnlocked)  // куплена
	s.False(view.Chapters[2].IsUnlocked) // платная, не куплена
}

func (s *CatalogServiceTestSuite) TestGetStoryView_Anonymous() {
	story := domain.Story{ID: 1, AuthorID: gofakeit.UUID(), Status: domain.StoryStatusApproved}
	chapters := []domain.Chapter{
		{ID: 1, StoryID: story.ID, Price: 0, Position: 1},
		{ID: 2, StoryID: story.ID, Price: 20, Position: 2},
	}

	// для анонима запросов к разблокировкам и библиотеке нет.
	s.mockStoryRepo.EXPECT().Find(gomock.Any(), story.ID).Return(&story, nil)
	s.mockChapterRepo.EXPECT().GetByStoryID(gomock.Any(), story.ID).Return(chapters, nil)
	s.mockStoryRepo.EXPECT().IncrementViews(gomock.Any(), story.ID).Return(nil)

	view, err := s.service.GetStoryView(s.T().Context(), story.ID, "")
	s.Require().NoError(err)
	s.False(view.IsLibrary)
	s.True(view.Chapters[0].IsUnlocked)
	s.False(view.Chapters[1].IsUnlocked)
}

// TestGetStoryView_PendingHidden неодобренная история существует только для автора.
func (s *CatalogServiceTestSuite) TestGetStoryView_PendingHidden() {
	authorID := gofakeit.UUID()
	story := domain.Story{ID: 1, AuthorID: authorID, Status: domain.StoryStatusPending}

	s.mockStoryRepo.EXPECT().Find(gomock.Any(), story.ID).Return(&story, nil).Times(2)
	s.mockChapterRepo.EXPECT().GetByStoryID(gomock.Any(), story.ID).
		Return([]domain.Chapter{}, nil)
	s.mockUnlockRepo.EXPECT().GetChapterIDs(gomock.Any(), authorID, story.ID).
		Return(nil, nil)
	s.mockLibraryRepo.EXPECT().Exists(gomock.Any(), authorID, story.ID).Return(false, nil)

	// чужой читатель получает "не найдено".
	_, err := s.service.GetStoryView(s.T().Context(), story.ID, gofakeit.UUID())
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	// автор видит свою историю; счетчик просмотров для pending не крутится.
	view, viewErr := s.service.GetStoryView(s.T().Context(), story.ID, authorID)
	s.Require().NoError(viewErr)
	s.Equal(story.ID, view.Story.ID)
}

func (s *CatalogServiceTestSuite) TestSearch_EmptyQuery() {
	stories, err := s.service.Search(s.T().Context(), "")
	s.Require().NoError(err)
	s.Empty(stories)
}

func (s *CatalogServiceTestSuite) TestSearch() {
	query := "tien hiep"
	found := []domain.Story{{ID: 1, Status: domain.StoryStatusApproved}}

	s.mockStoryRepo.EXPECT().Search(gomock.Any(), query).Return(found, nil)

	stories, err := s.service.Search(s.T().Context(), query)
	s.Require().NoError(err)
	s.Len(stories, 1)
}

func (s *CatalogServiceTestSuite) TestToggleLibrary() {
	userID := gofakeit.UUID()
	var storyID int64 = 9

	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.LibraryRepoName)).
		Return(s.mockLibraryRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	).Times(2)

	// первый вызов добавляет, второй убирает.
	s.mockLibraryRepo.EXPECT().Exists(gomock.Any(), userID, storyID).Return(false, nil)
	s.mockLibraryRepo.EXPECT().Insert(gomock.Any(), userID, storyID).Return(nil)
	s.mockLibraryRepo.EXPECT().Exists(gomock.Any(), userID, storyID).Return(true, nil)
	s.mockLibraryRepo.EXPECT().Delete(gomock.Any(), userID, storyID).Return(nil)

	inLibrary, err := s.service.ToggleLibrary(s.T().Context(), userID, storyID)
	s.Require().NoError(err)
	s.True(inLibrary)

	inLibrary, err = s.service.ToggleLibrary(s.T().Context(), userID, storyID)
	s.Require().NoError(err)
	s.False(inLibrary)
}
