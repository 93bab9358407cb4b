package service

import (
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

type StoryServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockStoryRepo   *mocks.MockStoryRepository
	mockChapterRepo *mocks.MockChapterRepository
	service         *StoryService
}

func TestStoryServiceSuite(t *testing.T) {
	suite.Run(t, new(StoryServiceTestSuite))
}

func (s *StoryServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockStoryRepo = mocks.NewMockStoryRepository(s.mockCtrl)
	s.mockChapterRepo = mocks.NewMockChapterRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.StoryRepoName)).
		Return(s.mockStoryRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.ChapterRepoName)).
		Return(s.mockChapterRepo, nil).AnyTimes()

	var err error
	s.service, err = NewStoryService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *StoryServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *StoryServiceTestSuite) TestCreate() {
	authorID := gofakeit.UUID()
	title := gofakeit.BookTitle()

	s.mockStoryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.StoryCreate) (*domain.Story, error) {
			s.Equal(authorID, args.AuthorID)
			s.Equal(title, args.Title)
			// новая история попадает в очередь модерации.
			return &domain.Story{ID: 1, AuthorID: authorID, Title: title, Status: domain.StoryStatusPending}, nil
		})

	story, err := s.service.Create(s.T().Context(), CreateStoryArgs{AuthorID: authorID, Title: title})
	s.Require().NoError(err)
	s.Equal(domain.StoryStatusPending, story.Status)
}

func (s *StoryServiceTestSuite) TestApprove() {
	story := domain.Story{ID: 5, AuthorID: gofakeit.UUID(), Status: domain.StoryStatusApproved}

	s.mockStoryRepo.EXPECT().Approve(gomock.Any(), story.ID).Return(&story, nil)

	approved, err := s.service.Approve(s.T().Context(), story.ID)
	s.Require().NoError(err)
	s.Equal(domain.StoryStatusApproved, approved.Status)
}

func (s *StoryServiceTestSuite) TestApprove_AlreadyApproved() {
	story := domain.Story{ID: 5, AuthorID: gofakeit.UUID(), Status: domain.StoryStatusApproved}

	// охраняемый UPDATE не нашел pending строку, но история существует.
	s.mockStoryRepo.EXPECT().Approve(gomock.Any(), story.ID).Return(nil, domain.ErrRecordNotFound)
	s.mockStoryRepo.EXPECT().Find(gomock.Any(), story.ID).Return(&story, nil)

	_, err := s.service.Approve(s.T().Context(), story.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyApproved)
}

func (s *StoryServiceTestSuite) TestApprove_NotFound() {
	s.mockStoryRepo.EXPECT().Approve(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)
	s.mockStoryRepo.EXPECT().Find(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Approve(s.T().Context(), 404)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *StoryServiceTestSuite) TestAddChapter() {
	authorID := gofakeit.UUID()
	story := domain.Story{ID: 5, AuthorID: authorID, Status: domain.StoryStatusPending}

	s.mockStoryRepo.EXPECT().Find(gomock.Any(), story.ID).Return(&story, nil).Times(2)
	s.mockChapterRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.ChapterCreate) (*domain.Chapter, error) {
			return &domain.Chapter{ID: 1, StoryID: args.StoryID, Title: args.Title, Price: args.Price}, nil
		}).Times(2)

	cases := []struct {
		name     string
		callerID string
		operator bool
	}{
		{name: "by author", callerID: authorID},
		{name: "by operator", callerID: gofakeit.UUID(), operator: true},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			chapter, err := s.service.AddChapter(s.T().Context(), AddChapterArgs{
				StoryID:  story.ID,
				CallerID: t.callerID,
				Operator: t.operator,
				Title:    gofakeit.BookTitle(),
				Content:  gofakeit.Paragraph(1, 3, 10, " "),
				Price:    15,
			})
			s.Require().NoError(err)
			s.Equal(story.ID, chapter.StoryID)
		})
	}
}

func (s *StoryServiceTestSuite) TestAddChapter_NotAuthor() {
	story := domain.Story{ID: 5, AuthorID: gofakeit.UUID(), Status: domain.StoryStatusApproved}

	s.mockStoryRepo.EXPECT().Find(gomock.Any(), story.ID).Return(&story, nil)

	_, err := s.service.AddChapter(s.T().Context(), AddChapterArgs{
		StoryID:  story.ID,
		CallerID: gofakeit.UUID(),
		Title:    "x",
		Content:  "y",
	})
	s.Require().ErrorIs(err, domain.ErrNotAuthor)
}

func (s *StoryServiceTestSuite) TestAddChapter_NegativePrice() {
	authorID := gofakeit.UUID()
	story := domain.Story{ID: 5, AuthorID: authorID, Status: domain.StoryStatusApproved}

	s.mockStoryRepo.EXPECT().Find(gomock.Any(), story.ID).Return(&story, nil)

	_, err := s.service.AddChapter(s.T().Context(), AddChapterArgs{
		StoryID:  story.ID,
		CallerID: authorID,
		Title:    "x",
		Content:  "y",
		Price:    -1,
	})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)
}
