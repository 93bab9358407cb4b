package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

type TopupRepository struct {
	db uow.DBTX
}

func NewTopupRepository(db uow.DBTX) *TopupRepository {
	return &TopupRepository{db: db}
}

const topupColumns = `id, user_id, amount, method, transaction_code, status, created_at, decided_at`

func (r *TopupRepository) Create(
	ctx context.Context,
	args repoargs.TopupRequestCreate,
) (*domain.TopupRequest, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO topup_requests (user_id, amount, method, transaction_code)
		VALUES ($1, $2, $3, $4)
		RETURNING `+topupColumns,
		args.UserID, args.Amount, args.Method, args.TransactionCode)
	req, err := scanTopup(row)
	if err != nil {
		return nil, convertErr(err, "creating topup request for user %s", args.UserID)
	}
	return req, nil
}

func (r *TopupRepository) Find(ctx context.Context, id int64) (*domain.TopupRequest, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+topupColumns+` FROM topup_requests WHERE id = $1`, id)
	req, err := scanTopup(row)
	if err != nil {
		return nil, convertErr(err, "finding topup request %d", id)
	}
	return req, nil
}

// MarkDecided выполняет охраняемый переход pending -> status. Если заявка отсутствует либо
// уже решена, вернется domain.ErrRecordNotFound: различить эти случаи может вызывающая
// сторона через Find.
func (r *TopupRepository) MarkDecided(
	ctx context.Context,
	id int64,
	status domain.TopupStatusType,
) (*domain.TopupRequest, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE topup_requests
		SET status = $2, decided_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+topupColumns, id, status)
	req, err := scanTopup(row)
	if err != nil {
		return nil, convertErr(err, "deciding topup request %d as %s", id, status)
	}
	return req, nil
}

// ListPending возвращает очередь заявок для оператора, старые первыми. Duplicate
// выставляется заявкам, чей код транзакции встречается в других заявках.
func (r *TopupRepository) ListPending(ctx context.Context) ([]repoargs.PendingTopup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.user_id, t.amount, t.method, t.transaction_code, t.status,
		       t.created_at, t.decided_at,
		       EXISTS (
		           SELECT 1 FROM topup_requests d
		           WHERE d.transaction_code = t.transaction_code AND d.id <> t.id
		       ) AS duplicate
		FROM topup_requests t
		WHERE t.status = 'pending'
		ORDER BY t.id`)
	if err != nil {
		return nil, convertErr(err, "listing pending topup requests")
	}
	defer rows.Close()

	var pending []repoargs.PendingTopup
	for rows.Next() {
		var p repoargs.PendingTopup
		if scanErr := rows.Scan(
			&p.ID, &p.UserID, &p.Amount, &p.Method, &p.TransactionCode, &p.Status,
			&p.CreatedAt, &p.DecidedAt, &p.Duplicate,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning pending topup request")
		}
		pending = append(pending, p)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing pending topup requests")
	}
	return pending, nil
}

// ExpirePending помечает истекшими pending-заявки, созданные раньше cutoff.
// Возвращает кол-во затронутых строк.
func (r *TopupRepository) ExpirePending(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE topup_requests
		SET status = 'expired', decided_at = now()
		WHERE status = 'pending' AND created_at < $1`, cutoff)
	if err != nil {
		return 0, convertErr(err, "expiring pending topup requests")
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTopup(row rowScanner) (*domain.TopupRequest, error) {
	var req domain.TopupRequest
	if err := row.Scan(
		&req.ID, &req.UserID, &req.Amount, &req.Method, &req.TransactionCode,
		&req.Status, &req.CreatedAt, &req.DecidedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}
