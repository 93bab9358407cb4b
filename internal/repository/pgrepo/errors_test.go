package pgrepo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/fsdevblog/groph-tales/internal/domain"
)

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "no rows",
			err:      pgx.ErrNoRows,
			expected: domain.ErrRecordNotFound,
		},
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "unlock_records_pkey"},
			expected: domain.ErrDuplicateKey,
		},
		{
			name:     "balance check violation",
			err:      &pgconn.PgError{Code: checkViolationCode, ConstraintName: balanceCheckConstraint},
			expected: domain.ErrNotEnoughBalance,
		},
		{
			// прочие check'и схемы не имеют отношения к балансу.
			name:     "unrelated check violation",
			err:      &pgconn.PgError{Code: checkViolationCode, ConstraintName: "ledger_entries_delta_check"},
			expected: domain.ErrUnknown,
		},
		{
			name:     "unknown error",
			err:      errors.New("connection reset"),
			expected: domain.ErrUnknown,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			converted := convertErr(c.err, "wallet: %s", "op")
			assert.ErrorIs(t, converted, c.expected)
		})
	}
}

func TestConvertErrNil(t *testing.T) {
	assert.NoError(t, convertErr(nil, "wallet"))
}
