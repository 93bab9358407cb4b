package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-tales/pkg/uow"
)

type LibraryRepository struct {
	db uow.DBTX
}

func NewLibraryRepository(db uow.DBTX) *LibraryRepository {
	return &LibraryRepository{db: db}
}

func (r *LibraryRepository) Exists(ctx context.Context, userID string, storyID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM library_items WHERE user_id = $1 AND story_id = $2
		)`, userID, storyID).
		Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking library item (%s, %d)", userID, storyID)
	}
	return exists, nil
}

// Insert добавляет историю в библиотеку. Повторное добавление - no-op.
func (r *LibraryRepository) Insert(ctx context.Context, userID string, storyID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO library_items (user_id, story_id) VALUES ($1, $2)
		ON CONFLICT (user_id, story_id) DO NOTHING`, userID, storyID)
	return convertErr(err, "inserting library item (%s, %d)", userID, storyID)
}

func (r *LibraryRepository) Delete(ctx context.Context, userID string, storyID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM library_items WHERE user_id = $1 AND story_id = $2`, userID, storyID)
	return convertErr(err, "deleting library item (%s, %d)", userID, storyID)
}
