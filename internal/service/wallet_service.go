package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

// WalletService реализует журнал движения xu. Каждая успешная операция Credit/Debit
// добавляет ровно одну запись журнала и сдвигает кешированный баланс в рамках одной
// транзакции БД: либо применяется все, либо ничего.
type WalletService struct {
	uow        uow.UOW
	walletRepo WalletRepository
	ledgerRepo LedgerRepository
}

func NewWalletService(u uow.UOW) (*WalletService, error) {
	walletRepo, walletRepoErr := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if walletRepoErr != nil {
		return nil, walletRepoErr
	}
	ledgerRepo, ledgerRepoErr := uow.GetRepositoryAs[LedgerRepository](u, uow.RepositoryName(repoargs.LedgerRepoName))
	if ledgerRepoErr != nil {
		return nil, ledgerRepoErr
	}
	return &WalletService{
		uow:        u,
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
	}, nil
}

// BalanceOf возвращает баланс юзера. Кошелек создается лениво при первом обращении.
func (s *WalletService) BalanceOf(ctx context.Context, userID string) (int64, error) {
	if err := s.walletRepo.Ensure(ctx, userID); err != nil {
		return 0, fmt.Errorf("getting balance: %w", err)
	}
	wallet, err := s.walletRepo.Find(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("getting balance: %w", err)
	}
	return wallet.Balance, nil
}

// Credit начисляет amount xu и создает запись журнала. Нулевые и отрицательные суммы
// отклоняются с domain.ErrInvalidAmount до каких-либо записей. Повторный вызов с теми же
// kind и reference вернет domain.ErrDuplicateKey, не создав второй записи.
func (s *WalletService) Credit(
	ctx context.Context,
	userID string,
	amount int64,
	kind domain.LedgerKindType,
	reference string,
) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	var entry *domain.LedgerEntry
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		entry, err = applyLedgerDelta(c, tx, userID, amount, kind, reference)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("crediting %d xu to user %s: %w", amount, userID, txErr)
	}
	return entry, nil
}

// Debit списывает amount xu. При нехватке средств возвращает domain.ErrNotEnoughBalance,
// не меняя состояние. Идемпотентность та же, что у Credit.
func (s *WalletService) Debit(
	ctx context.Context,
	userID string,
	amount int64,
	kind domain.LedgerKindType,
	reference string,
) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	var entry *domain.LedgerEntry
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		entry, err = applyLedgerDelta(c, tx, userID, -amount, kind, reference)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("debiting %d xu from user %s: %w", amount, userID, txErr)
	}
	return entry, nil
}

// History возвращает записи журнала юзера, свежие первыми.
func (s *WalletService) History(ctx context.Context, userID string) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entries, nil
}

// WalletAudit результат сверки кешированного баланса с журналом.
type WalletAudit struct {
	UserID        string
	CachedBalance int64
	LedgerSum     int64
	Consistent    bool
}

// Audit сверяет кешированный баланс кошелька со знаковой суммой записей журнала.
// Журнал - единственный источник истины, баланс лишь его проекция; расхождение
// означает поврежденные данные и требует внимания оператора.
func (s *WalletService) Audit(ctx context.Context, userID string) (*WalletAudit, error) {
	wallet, walletErr := s.walletRepo.Find(ctx, userID)
	if walletErr != nil {
		return nil, fmt.Errorf("auditing wallet of user %s: %w", userID, walletErr)
	}
	sum, sumErr := s.ledgerRepo.SumDeltas(ctx, userID)
	if sumErr != nil {
		return nil, fmt.Errorf("auditing wallet of user %s: %w", userID, sumErr)
	}
	return &WalletAudit{
		UserID:        userID,
		CachedBalance: wallet.Balance,
		LedgerSum:     sum,
		Consistent:    wallet.Balance == sum,
	}, nil
}

// applyLedgerDelta общий транзакционный шаг Credit/Debit и транзакционных сценариев других
// сервисов (разблокировка главы, подтверждение пополнения): лениво создает кошелек,
// сдвигает баланс и добавляет запись журнала.
func applyLedgerDelta(
	ctx context.Context,
	tx uow.TX,
	userID string,
	delta int64,
	kind domain.LedgerKindType,
	reference string,
) (*domain.LedgerEntry, error) {
	walletRepo, walletRepoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if walletRepoErr != nil {
		return nil, walletRepoErr //nolint:wrapcheck
	}
	ledgerRepo, ledgerRepoErr := uow.GetAs[LedgerRepository](tx, uow.RepositoryName(repoargs.LedgerRepoName))
	if ledgerRepoErr != nil {
		return nil, ledgerRepoErr //nolint:wrapcheck
	}

	if err := walletRepo.Ensure(ctx, userID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if _, err := walletRepo.AddToBalance(ctx, userID, delta); err != nil {
		return nil, err //nolint:wrapcheck
	}
	entry, entryErr := ledgerRepo.Create(ctx, repoargs.LedgerEntryCreate{
		UserID:    userID,
		Delta:     delta,
		Kind:      kind,
		Reference: reference,
	})
	if entryErr != nil {
		return nil, entryErr //nolint:wrapcheck
	}
	return entry, nil
}
