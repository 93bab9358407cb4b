package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

type UnlockRepository struct {
	db uow.DBTX
}

func NewUnlockRepository(db uow.DBTX) *UnlockRepository {
	return &UnlockRepository{db: db}
}

// Create вставляет запись разблокировки. Первичный ключ (user_id, chapter_id) гарантирует,
// что вторая конкурентная вставка для той же пары получит domain.ErrDuplicateKey -
// именно на этом держится инвариант "одна разблокировка - одно списание".
func (r *UnlockRepository) Create(ctx context.Context, userID string, chapterID int64) (*domain.UnlockRecord, error) {
	var rec domain.UnlockRecord
	err := r.db.QueryRow(ctx, `
		INSERT INTO unlock_records (user_id, chapter_id)
		VALUES ($1, $2)
		RETURNING user_id, chapter_id, unlocked_at`, userID, chapterID).
		Scan(&rec.UserID, &rec.ChapterID, &rec.UnlockedAt)
	if err != nil {
		return nil, convertErr(err, "creating unlock record (%s, %d)", userID, chapterID)
	}
	return &rec, nil
}

func (r *UnlockRepository) Exists(ctx context.Context, userID string, chapterID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM unlock_records WHERE user_id = $1 AND chapter_id = $2
		)`, userID, chapterID).
		Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking unlock record (%s, %d)", userID, chapterID)
	}
	return exists, nil
}

// GetChapterIDs возвращает id разблокированных юзером глав в рамках одной истории.
func (r *UnlockRepository) GetChapterIDs(ctx context.Context, userID string, storyID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.chapter_id
		FROM unlock_records u
		JOIN chapters c ON c.id = u.chapter_id
		WHERE u.user_id = $1 AND c.story_id = $2`, userID, storyID)
	if err != nil {
		return nil, convertErr(err, "listing unlocked chapters of user %s in story %d", userID, storyID)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "scanning unlocked chapter of user %s", userID)
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing unlocked chapters of user %s in story %d", userID, storyID)
	}
	return ids, nil
}
