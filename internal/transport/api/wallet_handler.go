package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/service"
)

type WalletHandler struct {
	walletSvs WalletServicer
	topupSvs  TopupServicer
	unlockSvs UnlockServicer
}

func NewWalletHandler(walletSvs WalletServicer, topupSvs TopupServicer, unlockSvs UnlockServicer) *WalletHandler {
	return &WalletHandler{
		walletSvs: walletSvs,
		topupSvs:  topupSvs,
		unlockSvs: unlockSvs,
	}
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// Show GET RouteGroup + WalletRoute. Анонимному вызову отдается нулевой баланс:
// кошелька у него нет и не будет, но клиенту так проще.
func (h *WalletHandler) Show(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		c.JSON(http.StatusOK, &BalanceResponse{Balance: 0})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.walletSvs.BalanceOf(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{Balance: balance})
}

type LedgerEntryResponse struct {
	Delta     int64     `json:"delta"`
	Kind      string    `json:"kind"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

// History GET RouteGroup + WalletHistoryRoute. Записи журнала юзера, свежие первыми.
func (h *WalletHandler) History(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.walletSvs.History(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = LedgerEntryResponse{
			Delta:     entry.Delta,
			Kind:      string(entry.Kind),
			Reference: entry.Reference,
			CreatedAt: entry.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

type TopupRequestParams struct {
	Amount          int64  `binding:"required,gt=0"                json:"amount"`
	TransactionCode string `binding:"required,min=1,max_bytes=64"  json:"transactionCode"`
	Method          string `binding:"required,oneof=bank momo"     json:"method"`
}

type TopupRequestResponse struct {
	ID              int64     `json:"id"`
	Amount          int64     `json:"amount"`
	Method          string    `json:"method"`
	TransactionCode string    `json:"transaction_code"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateTopup POST RouteGroup + TopupRequestRoute. Фиксирует заявку на пополнение;
// код транзакции ни с чем не сверяется, решение за оператором.
func (h *WalletHandler) CreateTopup(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TopupRequestParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := h.topupSvs.Submit(reqCtx, service.SubmitTopupArgs{
		UserID:          currentUserID,
		Amount:          params.Amount,
		Method:          domain.TopupMethodType(params.Method),
		TransactionCode: params.TransactionCode,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			c.AbortWithStatus(http.StatusUnprocessableEntity)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, &TopupRequestResponse{
		ID:              request.ID,
		Amount:          request.Amount,
		Method:          string(request.Method),
		TransactionCode: request.TransactionCode,
		Status:          string(request.Status),
		CreatedAt:       request.CreatedAt,
	})
}

type UnlockChapterParams struct {
	ChapterID int64 `binding:"required,gt=0" json:"chapterId"`
}

type UnlockChapterResponse struct {
	Unlocked        bool  `json:"unlocked"`
	ChapterID       int64 `json:"chapter_id"`
	AlreadyUnlocked bool  `json:"already_unlocked,omitempty"`
}

// UnlockChapter POST RouteGroup + UnlockChapterRoute. Повторная разблокировка - не ошибка:
// клиент может безопасно ретраить, деньги второй раз не спишутся.
func (h *WalletHandler) UnlockChapter(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params UnlockChapterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, err := h.unlockSvs.UnlockChapter(reqCtx, currentUserID, params.ChapterID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyUnlocked):
			c.JSON(http.StatusOK, &UnlockChapterResponse{
				Unlocked:        true,
				ChapterID:       params.ChapterID,
				AlreadyUnlocked: true,
			})
		case errors.Is(err, domain.ErrNotEnoughBalance):
			_ = c.AbortWithError(http.StatusPaymentRequired, errors.New("not enough xu")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &UnlockChapterResponse{
		Unlocked:  true,
		ChapterID: params.ChapterID,
	})
}
