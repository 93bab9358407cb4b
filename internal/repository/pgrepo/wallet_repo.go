package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

type WalletRepository struct {
	db uow.DBTX
}

func NewWalletRepository(db uow.DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

// Ensure лениво создает кошелек с нулевым балансом. Повторный вызов - no-op.
func (r *WalletRepository) Ensure(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO wallets (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`, userID)
	return convertErr(err, "ensuring wallet for user %s", userID)
}

// Find возвращает кошелек юзера либо domain.ErrRecordNotFound.
func (r *WalletRepository) Find(ctx context.Context, userID string) (*domain.Wallet, error) {
	var w domain.Wallet
	err := r.db.QueryRow(ctx, `
		SELECT user_id, balance, created_at, updated_at
		FROM wallets WHERE user_id = $1`, userID).
		Scan(&w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "finding wallet for user %s", userID)
	}
	return &w, nil
}

// AddToBalance атомарно сдвигает баланс на delta (отрицательная delta - списание).
// Check-констрейнт balance >= 0 не дает уйти в минус: в этом случае вернется
// domain.ErrNotEnoughBalance, а объемлющая транзакция откатится.
func (r *WalletRepository) AddToBalance(ctx context.Context, userID string, delta int64) (*domain.Wallet, error) {
	var w domain.Wallet
	err := r.db.QueryRow(ctx, `
		UPDATE wallets
		SET balance = balance + $2, updated_at = now()
		WHERE user_id = $1
		RETURNING user_id, balance, created_at, updated_at`, userID, delta).
		Scan(&w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "adjusting balance of user %s by %d", userID, delta)
	}
	return &w, nil
}
