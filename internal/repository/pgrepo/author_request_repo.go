package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

type AuthorRequestRepository struct {
	db uow.DBTX
}

func NewAuthorRequestRepository(db uow.DBTX) *AuthorRequestRepository {
	return &AuthorRequestRepository{db: db}
}

func (r *AuthorRequestRepository) Create(ctx context.Context, userID, reason string) (*domain.AuthorRequest, error) {
	var req domain.AuthorRequest
	err := r.db.QueryRow(ctx, `
		INSERT INTO author_requests (user_id, reason)
		VALUES ($1, $2)
		RETURNING id, user_id, reason, status, created_at`, userID, reason).
		Scan(&req.ID, &req.UserID, &req.Reason, &req.Status, &req.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating author request for user %s", userID)
	}
	return &req, nil
}
