package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fsdevblog/groph-tales/internal/domain"
)

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"

	balanceCheckConstraint = "wallets_balance_check"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Особенности:
//   - pgx.ErrNoRows превращается в domain.ErrRecordNotFound.
//   - Нарушение уникального индекса (23505) - в domain.ErrDuplicateKey.
//   - Нарушение check-констрейнта баланса (23514, wallets_balance_check) - в
//     domain.ErrNotEnoughBalance. Остальные check'и схемы (суммы, enum'ы) охраняют
//     данные, которые слой сервисов валидирует заранее, поэтому их нарушение -
//     это domain.ErrUnknown, а не нехватка средств.
//   - Все остальные ошибки возвращаются как domain.ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case checkViolationCode:
			if pgErr.ConstraintName == balanceCheckConstraint {
				errType = domain.ErrNotEnoughBalance
			}
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
