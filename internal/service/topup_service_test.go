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

type TopupServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockTopupRepo  *mocks.MockTopupRepository
	mockWalletRepo *mocks.MockWalletRepository
	mockLedgerRepo *mocks.MockLedgerRepository
	service        *TopupService
}

func TestTopupServiceSuite(t *testing.T) {
	suite.Run(t, new(TopupServiceTestSuite))
}

func (s *TopupServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockTopupRepo = mocks.NewMockTopupRepository(s.mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TopupRepoName)).
		Return(s.mockTopupRepo, nil).AnyTimes()

	var err error
	s.service, err = NewTopupService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *TopupServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TopupServiceTestSuite) expectTx() {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TopupRepoName)).
		Return(s.mockTopupRepo, nil).AnyTimes()
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

func (s *TopupServiceTestSuite) TestSubmit() {
	args := SubmitTopupArgs{
		UserID:          gofakeit.UUID(),
		Amount:          100,
		Method:          domain.TopupMethodBank,
		TransactionCode: "FT22331122",
	}

	s.mockTopupRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, create repoargs.TopupRequestCreate) (*domain.TopupRequest, error) {
			s.Equal(args.UserID, create.UserID)
			s.Equal(args.Amount, create.Amount)
			s.Equal(args.Method, create.Method)
			s.Equal(args.TransactionCode, create.TransactionCode)
			return &domain.TopupRequest{
				ID:     1,
				UserID: create.UserID,
				Amount: create.Amount,
				Status: domain.TopupStatusPending,
			}, nil
		})

	request, err := s.service.Submit(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(domain.TopupStatusPending, request.Status)
}

func (s *TopupServiceTestSuite) TestSubmit_InvalidAmount() {
	for _, amount := range []int64{0, -50} {
		_, err := s.service.Submit(s.T().Context(), SubmitTopupArgs{
			UserID: gofakeit.UUID(),
			Amount: amount,
			Method: domain.TopupMethodMomo,
		})
		s.Require().ErrorIs(err, domain.ErrInvalidAmount)
	}
}

func (s *TopupServiceTestSuite) TestApprove() {
	userID := gofakeit.UUID()
	request := domain.TopupRequest{
		ID:     10,
		UserID: userID,
		Amount: 200,
		Status: domain.TopupStatusApproved,
	}

	s.expectTx()

	s.mockTopupRepo.EXPECT().
		MarkDecided(gomock.Any(), request.ID, domain.TopupStatusApproved).
		Return(&request, nil)
	s.mockWalletRepo.EXPECT().Ensure(gomock.Any(), userID).Return(nil)
	s.mockWalletRepo.EXPECT().AddToBalance(gomock.Any(), userID, request.Amount).
		Return(&domain.Wallet{UserID: userID, Balance: 200}, nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
			// начисление ссылается на заявку.
			s.Equal(request.Amount, args.Delta)
			s.Equal(domain.LedgerKindTopupCredit, args.Kind)
			s.Equal("10", args.Reference)
			return &domain.LedgerEntry{ID: 1, UserID: userID, Delta: args.Delta}, nil
		})

	approved, err := s.service.Approve(s.T().Context(), request.ID)
	s.Require().NoError(err)
	s.Equal(domain.TopupStatusApproved, approved.Status)
}

// TestApprove_AlreadyDecided охраняемый UPDATE не находит pending строку, но сама
// заявка существует - значит по ней уже принято решение. Повторного начисления нет.
func (s *TopupServiceTestSuite) TestApprove_AlreadyDecided() {
	decidedAt := time.Now()
	request := domain.TopupRequest{
		ID:        10,
		UserID:    gofakeit.UUID(),
		Amount:    200,
		Status:    domain.TopupStatusApproved,
		DecidedAt: &decidedAt,
	}

	s.expectTx()

	s.mockTopupRepo.EXPECT().
		MarkDecided(gomock.Any(), request.ID, domain.TopupStatusApproved).
		Return(nil, domain.ErrRecordNotFound)
	s.mockTopupRepo.EXPECT().Find(gomock.Any(), request.ID).Return(&request, nil)

	_, err := s.service.Approve(s.T().Context(), request.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyDecided)
}

func (s *TopupServiceTestSuite) TestApprove_NotFound() {
	s.expectTx()

	s.mockTopupRepo.EXPECT().
		MarkDecided(gomock.Any(), int64(404), domain.TopupStatusApproved).
		Return(nil, domain.ErrRecordNotFound)
	s.mockTopupRepo.EXPECT().Find(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Approve(s.T().Context(), 404)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *TopupServiceTestSuite) TestReject() {
	request := domain.TopupRequest{
		ID:     11,
		UserID: gofakeit.UUID(),
		Amount: 200,
		Status: domain.TopupStatusRejected,
	}

	// отклонение не трогает кошелек и журнал.
	s.mockTopupRepo.EXPECT().
		MarkDecided(gomock.Any(), request.ID, domain.TopupStatusRejected).
		Return(&request, nil)

	rejected, err := s.service.Reject(s.T().Context(), request.ID)
	s.Require().NoError(err)
	s.Equal(domain.TopupStatusRejected, rejected.Status)
}

func (s *TopupServiceTestSuite) TestExpireOlderThan() {
	ttl := 48 * time.Hour

	s.mockTopupRepo.EXPECT().ExpirePending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			// граница отсечения отстоит от текущего момента на ttl.
			s.WithinDuration(time.Now().Add(-ttl), cutoff, time.Minute)
			return 3, nil
		})

	expired, err := s.service.ExpireOlderThan(s.T().Context(), ttl)
	s.Require().NoError(err)
	s.Equal(int64(3), expired)
}
