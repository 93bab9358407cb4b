package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/internal/service/mocks"
	"github.com/fsdevblog/groph-tales/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-tales/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UnlockServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockChapterRepo *mocks.MockChapterRepository
	mockUnlockRepo  *mocks.MockUnlockRepository
	mockWalletRepo  *mocks.MockWalletRepository
	mockLedgerRepo  *mocks.MockLedgerRepository
	service         *UnlockService
}

func TestUnlockServiceSuite(t *testing.T) {
	suite.Run(t, new(UnlockServiceTestSuite))
}

func (s *UnlockServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockChapterRepo = mocks.NewMockChapterRepository(s.mockCtrl)
	s.mockUnlockRepo = mocks.NewMockUnlockRepository(s.mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.ChapterRepoName)).
		Return(s.mockChapterRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UnlockRepoName)).
		Return(s.mockUnlockRepo, nil).AnyTimes()

	var err error
	s.service, err = NewUnlockService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *UnlockServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UnlockServiceTestSuite) expectTx() {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UnlockRepoName)).
		Return(s.mockUnlockRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.LedgerRepoName)).
		Return(s.mockLedgerRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	).AnyTimes()
}

func (s *UnlockServiceTestSuite) TestUnlockChapter() {
	userID := gofakeit.UUID()
	chapter := domain.Chapter{ID: 7, StoryID: 1, Price: 25}

	s.expectTx()

	s.mockChapterRepo.EXPECT().Find(gomock.Any(), chapter.ID).Return(&chapter, nil)
	s.mockUnlockRepo.EXPECT().Exists(gomock.Any(), userID, chapter.ID).Return(false, nil)
	s.mockUnlockRepo.EXPECT().Create(gomock.Any(), userID, chapter.ID).
		Return(&domain.UnlockRecord{UserID: userID, ChapterID: chapter.ID, UnlockedAt: time.Now()}, nil)
	s.mockWalletRepo.EXPECT().Ensure(gomock.Any(), userID).Return(nil)
	s.mockWalletRepo.EXPECT().AddToBalance(gomock.Any(), userID, -chapter.Price).
		Return(&domain.Wallet{UserID: userID, Balance: 75}, nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
			// списание ссылается на главу и идет со знаком минус.
			s.Equal(-chapter.Price, args.Delta)
			s.Equal(domain.LedgerKindUnlockDebit, args.Kind)
			s.Equal("7", args.Reference)
			return &domain.LedgerEntry{ID: 1, UserID: userID, Delta: args.Delta}, nil
		})

	record, err := s.service.UnlockChapter(s.T().Context(), userID, chapter.ID)
	s.Require().NoError(err)
	s.Equal(chapter.ID, record.ChapterID)
}

func (s *UnlockServiceTestSuite) TestUnlockChapter_Free() {
	userID := gofakeit.UUID()
	chapter := domain.Chapter{ID: 3, StoryID: 1, Price: 0}

	// бесплатная глава не трогает ни журнал, ни записи разблокировок.
	s.mockChapterRepo.EXPECT().Find(gomock.Any(), chapter.ID).Return(&chapter, nil)

	record, err := s.service.UnlockChapter(s.T().Context(), userID, chapter.ID)
	s.Require().NoError(err)
	s.Equal(chapter.ID, record.ChapterID)
}

func (s *UnlockServiceTestSuite) TestUnlockChapter_AlreadyUnlocked() {
	userID := gofakeit.UUID()
	chapter := domain.Chapter{ID: 7, StoryID: 1, Price: 25}

	s.mockChapterRepo.EXPECT().Find(gomock.Any(), chapter.ID).Return(&chapter, nil)
	s.mockUnlockRepo.EXPECT().Exists(gomock.Any(), userID, chapter.ID).Return(true, nil)

	_, err := s.service.UnlockChapter(s.T().Context(), userID, chapter.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyUnlocked)
}

// TestUnlockChapter_LostRace конкурентный двойник успел вставить запись между быстрой
// проверкой и транзакцией: вставка бьется о первичный ключ, списание не фиксируется.
func (s *UnlockServiceTestSuite) TestUnlockChapter_LostRace() {
	userID := gofakeit.UUID()
	chapter := domain.Chapter{ID: 7, StoryID: 1, Price: 25}

	s.expectTx()

	s.mockChapterRepo.EXPECT().Find(gomock.Any(), chapter.ID).Return(&chapter, nil)
	s.mockUnlockRepo.EXPECT().Exists(gomock.Any(), userID, chapter.ID).Return(false, nil)
	s.mockUnlockRepo.EXPECT().Create(gomock.Any(), userID, chapter.ID).
		Return(nil, domain.ErrDuplicateKey)

	_, err := s.service.UnlockChapter(s.T().Context(), userID, chapter.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyUnlocked)
}

func (s *UnlockServiceTestSuite) TestUnlockChapter_NotEnoughBalance() {
	userID := gofakeit.UUID()
	chapter := domain.Chapter{ID: 7, StoryID: 1, Price: 9000}

	s.expectTx()

	s.mockChapterRepo.EXPECT().Find(gomock.Any(), chapter.ID).Return(&chapter, nil)
	s.mockUnlockRepo.EXPECT().Exists(gomock.Any(), userID, chapter.ID).Return(false, nil)
	s.mockUnlockRepo.EXPECT().Create(gomock.Any(), userID, chapter.ID).
		Return(&domain.UnlockRecord{UserID: userID, ChapterID: chapter.ID}, nil)
	s.mockWalletRepo.EXPECT().Ensure(gomock.Any(), userID).Return(nil)
	s.mockWalletRepo.EXPECT().AddToBalance(gomock.Any(), userID, -chapter.Price).
		Return(nil, domain.ErrNotEnoughBalance)

	_, err := s.service.UnlockChapter(s.T().Context(), userID, chapter.ID)
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *UnlockServiceTestSuite) TestUnlockChapter_ChapterNotFound() {
	userID := gofakeit.UUID()

	s.mockChapterRepo.EXPECT().Find(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.UnlockChapter(s.T().Context(), userID, 404)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
