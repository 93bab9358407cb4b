package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	catalogSvs CatalogServicer
}

func NewLibraryHandler(catalogSvs CatalogServicer) *LibraryHandler {
	return &LibraryHandler{catalogSvs: catalogSvs}
}

type ToggleLibraryParams struct {
	StoryID int64 `binding:"required,gt=0" json:"storyId"`
}

// Toggle POST RouteGroup + LibraryToggleRoute. Переключает наличие истории
// в библиотеке юзера и возвращает итоговое состояние.
func (h *LibraryHandler) Toggle(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params ToggleLibraryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	inLibrary, err := h.catalogSvs.ToggleLibrary(reqCtx, currentUserID, params.StoryID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"in_library": inLibrary})
}
