package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/service"
)

type StoriesHandler struct {
	storySvs   StoryServicer
	catalogSvs CatalogServicer
}

func NewStoriesHandler(storySvs StoryServicer, catalogSvs CatalogServicer) *StoriesHandler {
	return &StoriesHandler{
		storySvs:   storySvs,
		catalogSvs: catalogSvs,
	}
}

type StoryResponse struct {
	ID          int64     `json:"id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverURL    string    `json:"cover_url"`
	Status      string    `json:"status"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

func storyToResponse(story *domain.Story) StoryResponse {
	return StoryResponse{
		ID:          story.ID,
		AuthorID:    story.AuthorID,
		Title:       story.Title,
		Description: story.Description,
		CoverURL:    story.CoverURL,
		Status:      string(story.Status),
		Views:       story.Views,
		CreatedAt:   story.CreatedAt,
	}
}

func storiesToResponse(stories []domain.Story) []StoryResponse {
	response := make([]StoryResponse, len(stories))
	for i := range stories {
		response[i] = storyToResponse(&stories[i])
	}
	return response
}

type CreateStoryParams struct {
	Title       string `binding:"required,min=1,max_bytes=255" json:"title"`
	Description string `binding:"max_bytes=4096"               json:"description"`
	CoverURL    string `binding:"omitempty,url"                json:"cover_url"`
}

// Create POST RouteGroup + StoriesRoute. Новая история попадает в очередь модерации
// в статусе pending и читателям пока не видна.
func (h *StoriesHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateStoryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	story, err := h.storySvs.Create(reqCtx, service.CreateStoryArgs{
		AuthorID:    currentUserID,
		Title:       params.Title,
		Description: params.Description,
		CoverURL:    params.CoverURL,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, storyToResponse(story))
}

// Mine GET RouteGroup + MyStoriesRoute. Все истории автора, включая неодобренные.
func (h *StoriesHandler) Mine(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stories, err := h.storySvs.GetByAuthorID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, storiesToResponse(stories))
}

type ChapterResponse struct {
	ID         int64     `json:"id"`
	StoryID    int64     `json:"story_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content,omitempty"`
	Price      int64     `json:"price"`
	IsVIP      bool      `json:"is_vip"`
	Position   int32     `json:"position"`
	IsUnlocked bool      `json:"is_unlocked"`
	CreatedAt  time.Time `json:"created_at"`
}

type StoryViewResponse struct {
	Story     StoryResponse     `json:"story"`
	Chapters  []ChapterResponse `json:"chapters"`
	IsLibrary bool              `json:"is_library"`
}

// Show GET RouteGroup + StoriesRoute/:id. Глава отдается с текстом только когда она
// разблокирована для текущего юзера либо юзер - автор истории: текст платной главы
// не должен утекать в ответе списка.
func (h *StoriesHandler) Show(c *gin.Context) {
	storyID, idErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if idErr != nil || storyID <= 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.catalogSvs.GetStoryView(reqCtx, storyID, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	isAuthor := currentUserID != "" && view.Story.AuthorID == currentUserID
	chapters := make([]ChapterResponse, len(view.Chapters))
	for i, chapter := range view.Chapters {
		chapters[i] = ChapterResponse{
			ID:         chapter.ID,
			StoryID:    chapter.StoryID,
			Title:      chapter.Title,
			Price:      chapter.Price,
			IsVIP:      chapter.IsVIP,
			Position:   chapter.Position,
			IsUnlocked: chapter.IsUnlocked,
			CreatedAt:  chapter.CreatedAt,
		}
		if chapter.IsUnlocked || isAuthor {
			chapters[i].Content = chapter.Content
		}
	}

	c.JSON(http.StatusOK, &StoryViewResponse{
		Story:     storyToResponse(view.Story),
		Chapters:  chapters,
		IsLibrary: view.IsLibrary,
	})
}

type CreateChapterParams struct {
	Title   string `binding:"required,min=1,max_bytes=255" json:"title"`
	Content string `binding:"required"                     json:"content"`
	Price   int64  `binding:"gte=0"                        json:"price"`
	IsVIP   bool   `json:"is_vip"`
}

// CreateChapter POST RouteGroup + StoriesRoute/:id/chapters. Добавлять главы может
// только автор истории (в любом статусе модерации) либо оператор.
func (h *StoriesHandler) CreateChapter(c *gin.Context) {
	storyID, idErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if idErr != nil || storyID <= 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	currentUserID := getUserIDFromContext(c)

	var params CreateChapterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	chapter, err := h.storySvs.AddChapter(reqCtx, service.AddChapterArgs{
		StoryID:  storyID,
		CallerID: currentUserID,
		Operator: isOperatorFromContext(c),
		Title:    params.Title,
		Content:  params.Content,
		Price:    params.Price,
		IsVIP:    params.IsVIP,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthor):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidAmount):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, &ChapterResponse{
		ID:         chapter.ID,
		StoryID:    chapter.StoryID,
		Title:      chapter.Title,
		Content:    chapter.Content,
		Price:      chapter.Price,
		IsVIP:      chapter.IsVIP,
		Position:   chapter.Position,
		IsUnlocked: true,
		CreatedAt:  chapter.CreatedAt,
	})
}

// Search GET RouteGroup + SearchRoute. Публичный поиск по одобренным историям.
func (h *StoriesHandler) Search(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stories, err := h.catalogSvs.Search(reqCtx, c.Query("q"))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, storiesToResponse(stories))
}
