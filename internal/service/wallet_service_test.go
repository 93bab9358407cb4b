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

type WalletServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockWalletRepo *mocks.MockWalletRepository
	mockLedgerRepo *mocks.MockLedgerRepository
	service        *WalletService
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.LedgerRepoName)).
		Return(s.mockLedgerRepo, nil).AnyTimes()

	var err error
	s.service, err = NewWalletService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *WalletServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTxRepos настраивает выдачу репозиториев из транзакции и прокидывание
// коллбэка uow.Do в мок транзакции.
func (s *WalletServiceTestSuite) expectTxRepos() {
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

func (s *WalletServiceTestSuite) TestBalanceOf() {
	userID := gofakeit.UUID()

	s.mockWalletRepo.EXPECT().Ensure(gomock.Any(), userID).Return(nil)
	s.mockWalletRepo.EXPECT().Find(gomock.Any(), userID).
		Return(&domain.Wallet{UserID: userID, Balance: 120}, nil)

	balance, err := s.service.BalanceOf(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal(int64(120), balance)
}

func (s *WalletServiceTestSuite) TestCredit() {
	userID := gofakeit.UUID()
	reference := gofakeit.UUID()

	s.expectTxRepos()

	s.mockWalletRepo.EXPECT().Ensure(gomock.Any(), userID).Return(nil)
	s.mockWalletRepo.EXPECT().AddToBalance(gomock.Any(), userID, int64(50)).
		Return(&domain.Wallet{UserID: userID, Balance: 50}, nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
			// убеждаемся что в журнал попадает положительная дельта.
			s.Equal(userID, args.UserID)
			s.Equal(int64(50), args.Delta)
			s.Equal(domain.LedgerKindTopupCredit, args.Kind)
			s.Equal(reference, args.Reference)
			return &domain.LedgerEntry{ID: 1, UserID: userID, Delta: args.Delta}, nil
		})

	entry, err := s.service.Credit(s.T().Context(), userID, 50, domain.LedgerKindTopupCredit, reference)
	s.Require().NoError(err)
	s.Equal(int64(50), entry.Delta)
}

func (s *WalletServiceTestSuite) TestCredit_InvalidAmount() {
	userID := gofakeit.UUID()

	// ни одна запись не должна быть создана: моки без ожиданий.
	for _, amount := range []int64{0, -10} {
		_, err := s.service.Credit(s.T().Context(), userID, amount, domain.LedgerKindTopupCredit, "ref")
		s.Require().ErrorIs(err, domain.ErrInvalidAmount)
	}
}

func (s *WalletServiceTestSuite) TestDebit() {
	userID := gofakeit.UUID()

	s.expectTxRepos()

	s.mockWalletRepo.EXPECT().Ensure(gomock.Any(), userID).Return(nil)
	s.mockWalletRepo.EXPECT().AddToBalance(gomock.Any(), userID, int64(-30)).
		Return(&domain.Wallet{UserID: userID, Balance: 70}, nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerEntryCreate) (*domain.LedgerEntry, error) {
			s.Equal(int64(-30), args.Delta)
			return &domain.LedgerEntry{ID: 2, UserID: userID, Delta: args.Delta}, nil
		})

	entry, err := s.service.Debit(s.T().Context(), userID, 30, domain.LedgerKindUnlockDebit, "42")
	s.Require().NoError(err)
	s.Equal(int64(-30), entry.Delta)
}

func (s *WalletServiceTestSuite) TestDebit_NotEnoughBalance() {
	userID := gofakeit.UUID()

	s.expectTxRepos()

	s.mockWalletRepo.EXPECT().Ensure(gomock.Any(), userID).Return(nil)
	// CHECK-ограничение БД не пускает баланс в минус.
	s.mockWalletRepo.EXPECT().AddToBalance(gomock.Any(), userID, int64(-500)).
		Return(nil, domain.ErrNotEnoughBalance)

	_, err := s.service.Debit(s.T().Context(), userID, 500, domain.LedgerKindUnlockDebit, "42")
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *WalletServiceTestSuite) TestAudit() {
	userID := gofakeit.UUID()

	cases := []struct {
		name           string
		balance        int64
		ledgerSum      int64
		wantConsistent bool
	}{
		{name: "consistent", balance: 100, ledgerSum: 100, wantConsistent: true},
		{name: "drifted", balance: 100, ledgerSum: 70, wantConsistent: false},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockWalletRepo.EXPECT().Find(gomock.Any(), userID).
				Return(&domain.Wallet{UserID: userID, Balance: t.balance}, nil)
			s.mockLedgerRepo.EXPECT().SumDeltas(gomock.Any(), userID).
				Return(t.ledgerSum, nil)

			audit, err := s.service.Audit(s.T().Context(), userID)
			s.Require().NoError(err)
			s.Equal(t.wantConsistent, audit.Consistent)
			s.Equal(t.balance, audit.CachedBalance)
			s.Equal(t.ledgerSum, audit.LedgerSum)
		})
	}
}
