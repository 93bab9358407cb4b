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

// UnlockService покупка доступа к платным главам. Ключевой инвариант: на пару
// (юзер, глава) приходится не более одной разблокировки и ровно одно списание,
// даже при конкурентных запросах (двойной тап по кнопке).
type UnlockService struct {
	uow         uow.UOW
	chapterRepo ChapterRepository
	unlockRepo  UnlockRepository
}

func NewUnlockService(u uow.UOW) (*UnlockService, error) {
	chapterRepo, chapterRepoErr := uow.GetRepositoryAs[ChapterRepository](u, uow.RepositoryName(repoargs.ChapterRepoName))
	if chapterRepoErr != nil {
		return nil, chapterRepoErr
	}
	unlockRepo, unlockRepoErr := uow.GetRepositoryAs[UnlockRepository](u, uow.RepositoryName(repoargs.UnlockRepoName))
	if unlockRepoErr != nil {
		return nil, unlockRepoErr
	}
	return &UnlockService{
		uow:         u,
		chapterRepo: chapterRepo,
		unlockRepo:  unlockRepo,
	}, nil
}

// UnlockChapter открывает юзеру доступ к главе.
//
// Алгоритм:
//  1. Бесплатная глава (price == 0) открыта всем: возвращается синтетическая запись,
//     журнал не трогается.
//  2. Быстрая проверка существующей разблокировки - domain.ErrAlreadyUnlocked без
//     повторного списания.
//  3. Вставка UnlockRecord и списание цены выполняются в одной транзакции БД. Гонку
//     двух одновременных запросов разрешает первичный ключ unlock_records: проигравшая
//     транзакция получает unique violation и откатывается целиком, ее списание
//     не фиксируется.
//
// Возвращаемые ошибки: domain.ErrRecordNotFound (глава не найдена),
// domain.ErrAlreadyUnlocked, domain.ErrNotEnoughBalance.
func (s *UnlockService) UnlockChapter(
	ctx context.Context,
	userID string,
	chapterID int64,
) (*domain.UnlockRecord, error) {
	chapter, chapterErr := s.chapterRepo.Find(ctx, chapterID)
	if chapterErr != nil {
		return nil, fmt.Errorf("unlocking chapter %d: %w", chapterID, chapterErr)
	}

	if chapter.Price == 0 {
		return &domain.UnlockRecord{
			UserID:     userID,
			ChapterID:  chapterID,
			UnlockedAt: time.Now(),
		}, nil
	}

	exists, existsErr := s.unlockRepo.Exists(ctx, userID, chapterID)
	if existsErr != nil {
		return nil, fmt.Errorf("unlocking chapter %d: %w", chapterID, existsErr)
	}
	if exists {
		return nil, domain.ErrAlreadyUnlocked
	}

	var record *domain.UnlockRecord
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		unlockRepo, unlockRepoErr := uow.GetAs[UnlockRepository](tx, uow.RepositoryName(repoargs.UnlockRepoName))
		if unlockRepoErr != nil {
			return unlockRepoErr //nolint:wrapcheck
		}

		var createErr error
		record, createErr = unlockRepo.Create(c, userID, chapterID)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		_, debitErr := applyLedgerDelta(
			c, tx, userID, -chapter.Price,
			domain.LedgerKindUnlockDebit, strconv.FormatInt(chapterID, 10),
		)
		return debitErr
	})

	if txErr != nil {
		// Проигравшая гонку транзакция упирается в первичный ключ unlock_records.
		if errors.Is(txErr, domain.ErrDuplicateKey) {
			return nil, domain.ErrAlreadyUnlocked
		}
		if errors.Is(txErr, domain.ErrNotEnoughBalance) {
			return nil, domain.ErrNotEnoughBalance
		}
		return nil, fmt.Errorf("unlocking chapter %d for user %s: %w", chapterID, userID, txErr)
	}
	return record, nil
}
