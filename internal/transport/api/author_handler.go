package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorSvs AuthorServicer
}

func NewAuthorHandler(authorSvs AuthorServicer) *AuthorHandler {
	return &AuthorHandler{authorSvs: authorSvs}
}

type AuthorRequestParams struct {
	Reason string `binding:"required,min=1,max_bytes=2048" json:"reason"`
}

// Create POST RouteGroup + AuthorRequestRoute. Заявка на статус автора.
func (h *AuthorHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params AuthorRequestParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := h.authorSvs.SubmitRequest(reqCtx, currentUserID, params.Reason)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         request.ID,
		"user_id":    request.UserID,
		"status":     string(request.Status),
		"created_at": request.CreatedAt,
	})
}
