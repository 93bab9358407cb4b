package pgrepo

import (
	"context"
	"strings"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

type StoryRepository struct {
	db uow.DBTX
}

func NewStoryRepository(db uow.DBTX) *StoryRepository {
	return &StoryRepository{db: db}
}

const storyColumns = `id, author_id, title, description, cover_url, status, views, created_at, updated_at`

func (r *StoryRepository) Create(ctx context.Context, args repoargs.StoryCreate) (*domain.Story, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO stories (author_id, title, description, cover_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+storyColumns,
		args.AuthorID, args.Title, args.Description, args.CoverURL)
	story, err := scanStory(row)
	if err != nil {
		return nil, convertErr(err, "creating story for author %s", args.AuthorID)
	}
	return story, nil
}

func (r *StoryRepository) Find(ctx context.Context, id int64) (*domain.Story, error) {
	row := r.db.QueryRow(ctx, `SELECT `+storyColumns+` FROM stories WHERE id = $1`, id)
	story, err := scanStory(row)
	if err != nil {
		return nil, convertErr(err, "finding story %d", id)
	}
	return story, nil
}

// Approve выполняет односторонний переход pending -> approved. Если история отсутствует
// или уже одобрена, вернется domain.ErrRecordNotFound - различает эти случаи сервис.
func (r *StoryRepository) Approve(ctx context.Context, id int64) (*domain.Story, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE stories
		SET status = 'approved', updated_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+storyColumns, id)
	story, err := scanStory(row)
	if err != nil {
		return nil, convertErr(err, "approving story %d", id)
	}
	return story, nil
}

func (r *StoryRepository) GetByAuthorID(ctx context.Context, authorID string) ([]domain.Story, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+storyColumns+` FROM stories
		WHERE author_id = $1
		ORDER BY created_at DESC`, authorID)
	if err != nil {
		return nil, convertErr(err, "listing stories of author %s", authorID)
	}
	return scanStories(rows, "listing stories of author "+authorID)
}

func (r *StoryRepository) ListPending(ctx context.Context) ([]domain.Story, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+storyColumns+` FROM stories
		WHERE status = 'pending'
		ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing pending stories")
	}
	return scanStories(rows, "listing pending stories")
}

// likeEscaper экранирует спецсимволы LIKE: пользовательский запрос - это
// подстрока, а не шаблон, иначе запрос "%" совпадал бы со всеми историями.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search ищет по названию и описанию среди одобренных историй. Читателям
// никогда не показываются неодобренные.
func (r *StoryRepository) Search(ctx context.Context, query string) ([]domain.Story, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+storyColumns+` FROM stories
		WHERE status = 'approved' AND (title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY views DESC, id`, likeEscaper.Replace(query))
	if err != nil {
		return nil, convertErr(err, "searching stories by %q", query)
	}
	return scanStories(rows, "searching stories")
}

func (r *StoryRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE stories SET views = views + 1 WHERE id = $1`, id)
	return convertErr(err, "incrementing views of story %d", id)
}

func scanStory(row rowScanner) (*domain.Story, error) {
	var s domain.Story
	if err := row.Scan(
		&s.ID, &s.AuthorID, &s.Title, &s.Description, &s.CoverURL,
		&s.Status, &s.Views, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanStories(rows interface {
	rowScanner
	Next() bool
	Close()
	Err() error
}, msg string) ([]domain.Story, error) {
	defer rows.Close()

	var stories []domain.Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, convertErr(err, "%s", msg)
		}
		stories = append(stories, *story)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "%s", msg)
	}
	return stories, nil
}
