package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

// TopupService workflow заявок на пополнение: юзер заявляет о переводе, оператор сверяет
// его с внешней выпиской и подтверждает либо отклоняет. Подтверждение и начисление xu
// фиксируются одной транзакцией и строго один раз.
type TopupService struct {
	uow       uow.UOW
	topupRepo TopupRepository
}

func NewTopupService(u uow.UOW) (*TopupService, error) {
	topupRepo, topupRepoErr := uow.GetRepositoryAs[TopupRepository](u, uow.RepositoryName(repoargs.TopupRepoName))
	if topupRepoErr != nil {
		return nil, topupRepoErr
	}
	return &TopupService{
		uow:       u,
		topupRepo: topupRepo,
	}, nil
}

type SubmitTopupArgs struct {
	UserID          string
	Amount          int64
	Method          domain.TopupMethodType
	TransactionCode string
}

// Submit записывает заявку юзера в статусе pending. Код транзакции ни с чем не сверяется -
// интеграции с платежным шлюзом нет, сверку выполняет оператор вручную. Повторные коды
// принимаются: легитимный чек может быть отправлен заново, оператор увидит пометку
// дубликата в очереди.
func (s *TopupService) Submit(ctx context.Context, args SubmitTopupArgs) (*domain.TopupRequest, error) {
	if args.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	request, err := s.topupRepo.Create(ctx, repoargs.TopupRequestCreate{
		UserID:          args.UserID,
		Amount:          args.Amount,
		Method:          args.Method,
		TransactionCode: args.TransactionCode,
	})
	if err != nil {
		return nil, fmt.Errorf("submitting topup request: %w", err)
	}
	return request, nil
}

// Approve подтверждает заявку и начисляет xu. Переход pending -> approved и начисление
// коммитятся одной транзакцией; повторное подтверждение возвращает
// domain.ErrAlreadyDecided и ничего не начисляет.
func (s *TopupService) Approve(ctx context.Context, requestID int64) (*domain.TopupRequest, error) {
	var request *domain.TopupRequest
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		topupRepo, topupRepoErr := uow.GetAs[TopupRepository](tx, uow.RepositoryName(repoargs.TopupRepoName))
		if topupRepoErr != nil {
			return topupRepoErr //nolint:wrapcheck
		}

		var decideErr error
		request, decideErr = topupRepo.MarkDecided(c, requestID, domain.TopupStatusApproved)
		if decideErr != nil {
			return decideErr //nolint:wrapcheck
		}

		_, creditErr := applyLedgerDelta(
			c, tx, request.UserID, request.Amount,
			domain.LedgerKindTopupCredit, strconv.FormatInt(requestID, 10),
		)
		return creditErr
	})

	if txErr != nil {
		return nil, s.convertDecideErr(ctx, requestID, txErr, "approving")
	}
	return request, nil
}

// Reject отклоняет заявку без начисления. Семантика ошибок та же, что у Approve.
func (s *TopupService) Reject(ctx context.Context, requestID int64) (*domain.TopupRequest, error) {
	request, err := s.topupRepo.MarkDecided(ctx, requestID, domain.TopupStatusRejected)
	if err != nil {
		return nil, s.convertDecideErr(ctx, requestID, err, "rejecting")
	}
	return request, nil
}

func (s *TopupService) ListPending(ctx context.Context) ([]repoargs.PendingTopup, error) {
	pending, err := s.topupRepo.ListPending(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return pending, nil
}

// ExpireOlderThan закрывает pending-заявки старше ttl. Вызывается фоновым воркером;
// политика настраивается конфигом и по умолчанию выключена.
func (s *TopupService) ExpireOlderThan(ctx context.Context, ttl time.Duration) (int64, error) {
	expired, err := s.topupRepo.ExpirePending(ctx, time.Now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("expiring topup requests: %w", err)
	}
	return expired, nil
}

// convertDecideErr различает "заявки нет" и "заявка уже решена": охраняемый UPDATE
// не находит строку в обоих случаях.
func (s *TopupService) convertDecideErr(ctx context.Context, requestID int64, err error, action string) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		if _, findErr := s.topupRepo.Find(ctx, requestID); findErr == nil {
			return domain.ErrAlreadyDecided
		}
		return domain.ErrRecordNotFound
	}
	// Страховка от ручных правок данных: даже если заявку перевели в pending повторно,
	// дедупликация журнала не даст начислить второй раз.
	if errors.Is(err, domain.ErrDuplicateKey) {
		return domain.ErrAlreadyDecided
	}
	return fmt.Errorf("%s topup request %d: %w", action, requestID, err)
}
