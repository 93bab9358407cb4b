package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-tales/internal/domain"
)

// AdminHandler операторские операции: очередь пополнений, модерация историй,
// сверка кошельков. Все роуты закрыты middlewares.OperatorRequired.
type AdminHandler struct {
	topupSvs  TopupServicer
	storySvs  StoryServicer
	walletSvs WalletServicer
}

func NewAdminHandler(topupSvs TopupServicer, storySvs StoryServicer, walletSvs WalletServicer) *AdminHandler {
	return &AdminHandler{
		topupSvs:  topupSvs,
		storySvs:  storySvs,
		walletSvs: walletSvs,
	}
}

type PendingTopupResponse struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id"`
	Amount          int64     `json:"amount"`
	Method          string    `json:"method"`
	TransactionCode string    `json:"transaction_code"`
	CreatedAt       time.Time `json:"created_at"`
	Duplicate       bool      `json:"duplicate,omitempty"`
}

// PendingTopups GET RouteGroup + AdminTopupsRoute. Заявки с повторным кодом транзакции
// помечены duplicate - оператору стоит сверить их внимательнее.
func (h *AdminHandler) PendingTopups(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	pending, err := h.topupSvs.ListPending(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]PendingTopupResponse, len(pending))
	for i, req := range pending {
		response[i] = PendingTopupResponse{
			ID:              req.ID,
			UserID:          req.UserID,
			Amount:          req.Amount,
			Method:          string(req.Method),
			TransactionCode: req.TransactionCode,
			CreatedAt:       req.CreatedAt,
			Duplicate:       req.Duplicate,
		}
	}
	c.JSON(http.StatusOK, response)
}

type DecideTopupParams struct {
	RequestID int64 `binding:"required,gt=0" json:"requestId"`
}

type DecideTopupResponse struct {
	ID             int64  `json:"id"`
	Status         string `json:"status"`
	AlreadyDecided bool   `json:"already_decided,omitempty"`
}

// ApproveTopup POST RouteGroup + AdminApproveTopupRoute. Идемпотентен: повторное
// подтверждение отвечает успехом с пометкой already_decided и не начисляет второй раз.
func (h *AdminHandler) ApproveTopup(c *gin.Context) {
	h.decideTopup(c, h.topupSvs.Approve, domain.TopupStatusApproved)
}

// RejectTopup POST RouteGroup + AdminRejectTopupRoute.
func (h *AdminHandler) RejectTopup(c *gin.Context) {
	h.decideTopup(c, h.topupSvs.Reject, domain.TopupStatusRejected)
}

func (h *AdminHandler) decideTopup(
	c *gin.Context,
	decide func(context.Context, int64) (*domain.TopupRequest, error),
	status domain.TopupStatusType,
) {
	var params DecideTopupParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := decide(reqCtx, params.RequestID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyDecided):
			c.JSON(http.StatusOK, &DecideTopupResponse{
				ID:             params.RequestID,
				Status:         string(status),
				AlreadyDecided: true,
			})
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &DecideTopupResponse{
		ID:     request.ID,
		Status: string(request.Status),
	})
}

// PendingStories GET RouteGroup + AdminStoriesRoute. Очередь модерации.
func (h *AdminHandler) PendingStories(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stories, err := h.storySvs.ListPending(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, storiesToResponse(stories))
}

type ApproveStoryParams struct {
	StoryID int64 `binding:"required,gt=0" json:"storyId"`
}

type ApproveStoryResponse struct {
	ID              int64  `json:"id"`
	Status          string `json:"status"`
	AlreadyApproved bool   `json:"already_approved,omitempty"`
}

// ApproveStory POST RouteGroup + AdminApproveStoryRoute. Переход односторонний,
// повторное одобрение - успешный no-op.
func (h *AdminHandler) ApproveStory(c *gin.Context) {
	var params ApproveStoryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	story, err := h.storySvs.Approve(reqCtx, params.StoryID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyApproved):
			c.JSON(http.StatusOK, &ApproveStoryResponse{
				ID:              params.StoryID,
				Status:          string(domain.StoryStatusApproved),
				AlreadyApproved: true,
			})
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &ApproveStoryResponse{
		ID:     story.ID,
		Status: string(story.Status),
	})
}

type WalletAuditResponse struct {
	UserID        string `json:"user_id"`
	CachedBalance int64  `json:"cached_balance"`
	LedgerSum     int64  `json:"ledger_sum"`
	Consistent    bool   `json:"consistent"`
}

// WalletAudit GET RouteGroup + AdminWalletAuditRoute. Сверка кешированного баланса
// с журналом: расхождение означает поврежденные данные.
func (h *AdminHandler) WalletAudit(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	audit, err := h.walletSvs.Audit(reqCtx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &WalletAuditResponse{
		UserID:        audit.UserID,
		CachedBalance: audit.CachedBalance,
		LedgerSum:     audit.LedgerSum,
		Consistent:    audit.Consistent,
	})
}
