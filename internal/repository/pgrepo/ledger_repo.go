package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

type LedgerRepository struct {
	db uow.DBTX
}

func NewLedgerRepository(db uow.DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Create вставляет ровно одну запись журнала. Повторная вставка с той же тройкой
// (user_id, kind, reference) упирается в уникальный индекс и возвращает
// domain.ErrDuplicateKey - так обеспечивается идемпотентность ретраев.
func (r *LedgerRepository) Create(
	ctx context.Context,
	entry repoargs.LedgerEntryCreate,
) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	err := r.db.QueryRow(ctx, `
		INSERT INTO ledger_entries (user_id, delta, kind, reference)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, delta, kind, reference, created_at`,
		entry.UserID, entry.Delta, entry.Kind, entry.Reference).
		Scan(&e.ID, &e.UserID, &e.Delta, &e.Kind, &e.Reference, &e.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating ledger entry for user %s", entry.UserID)
	}
	return &e, nil
}

// SumDeltas возвращает знаковую сумму всех записей журнала юзера. Значение обязано
// совпадать с кешированным балансом кошелька.
func (r *LedgerRepository) SumDeltas(ctx context.Context, userID string) (int64, error) {
	var sum int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(delta), 0) FROM ledger_entries WHERE user_id = $1`, userID).
		Scan(&sum)
	if err != nil {
		return 0, convertErr(err, "summing ledger deltas of user %s", userID)
	}
	return sum, nil
}

// GetByUserID возвращает записи журнала юзера, свежие первыми.
func (r *LedgerRepository) GetByUserID(ctx context.Context, userID string) ([]domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, delta, kind, reference, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY id DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "listing ledger entries of user %s", userID)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if scanErr := rows.Scan(&e.ID, &e.UserID, &e.Delta, &e.Kind, &e.Reference, &e.CreatedAt); scanErr != nil {
			return nil, convertErr(scanErr, "scanning ledger entry of user %s", userID)
		}
		entries = append(entries, e)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing ledger entries of user %s", userID)
	}
	return entries, nil
}
