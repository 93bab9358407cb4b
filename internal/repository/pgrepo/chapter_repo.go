package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

type ChapterRepository struct {
	db uow.DBTX
}

func NewChapterRepository(db uow.DBTX) *ChapterRepository {
	return &ChapterRepository{db: db}
}

const chapterColumns = `id, story_id, title, content, price, is_vip, position, created_at`

// Create вставляет главу в конец истории: позиция вычисляется в самом запросе,
// уникальный индекс (story_id, position) отсекает гонку двух одновременных вставок.
func (r *ChapterRepository) Create(ctx context.Context, args repoargs.ChapterCreate) (*domain.Chapter, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO chapters (story_id, title, content, price, is_vip, position)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM chapters WHERE story_id = $1))
		RETURNING `+chapterColumns,
		args.StoryID, args.Title, args.Content, args.Price, args.IsVIP)
	chapter, err := scanChapter(row)
	if err != nil {
		return nil, convertErr(err, "creating chapter in story %d", args.StoryID)
	}
	return chapter, nil
}

func (r *ChapterRepository) Find(ctx context.Context, id int64) (*domain.Chapter, error) {
	row := r.db.QueryRow(ctx, `SELECT `+chapterColumns+` FROM chapters WHERE id = $1`, id)
	chapter, err := scanChapter(row)
	if err != nil {
		return nil, convertErr(err, "finding chapter %d", id)
	}
	return chapter, nil
}

func (r *ChapterRepository) GetByStoryID(ctx context.Context, storyID int64) ([]domain.Chapter, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+chapterColumns+` FROM chapters
		WHERE story_id = $1
		ORDER BY position`, storyID)
	if err != nil {
		return nil, convertErr(err, "listing chapters of story %d", storyID)
	}
	defer rows.Close()

	var chapters []domain.Chapter
	for rows.Next() {
		chapter, scanErr := scanChapter(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning chapter of story %d", storyID)
		}
		chapters = append(chapters, *chapter)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing chapters of story %d", storyID)
	}
	return chapters, nil
}

func scanChapter(row rowScanner) (*domain.Chapter, error) {
	var c domain.Chapter
	if err := row.Scan(
		&c.ID, &c.StoryID, &c.Title, &c.Content, &c.Price, &c.IsVIP, &c.Position, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
