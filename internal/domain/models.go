package domain

import "time"

// Wallet кошелек юзера. Баланс - кешированная проекция суммы всех записей журнала
// (LedgerEntry) этого юзера, поддерживается в рамках той же транзакции что и записи,
// и никогда не уходит в минус.
type Wallet struct {
	UserID    string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LedgerEntry неизменяемая запись журнала движения xu. Отрицательная Delta - списание,
// положительная - начисление. Записи никогда не обновляются и не удаляются, коррекции
// оформляются новыми компенсирующими записями.
type LedgerEntry struct {
	ID        int64
	CreatedAt time.Time
	UserID    string
	Delta     int64
	Kind      LedgerKindType
	Reference string
}

// UnlockRecord факт постоянного доступа юзера к главе. Пара (UserID, ChapterID) уникальна
// на уровне БД - это и есть защита от двойного списания при конкурентных запросах.
type UnlockRecord struct {
	UserID     string
	ChapterID  int64
	UnlockedAt time.Time
}

// TopupRequest заявка юзера на пополнение баланса. Создается в статусе pending и ровно один
// раз переводится оператором в approved либо rejected.
type TopupRequest struct {
	ID              int64
	CreatedAt       time.Time
	DecidedAt       *time.Time
	UserID          string
	Amount          int64
	Method          TopupMethodType
	TransactionCode string
	Status          TopupStatusType
}

type Story struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AuthorID    string
	Title       string
	Description string
	CoverURL    string
	Status      StoryStatusType
	Views       int64
}

type Chapter struct {
	ID        int64
	CreatedAt time.Time
	StoryID   int64
	Title     string
	Content   string
	Price     int64
	IsVIP     bool
	Position  int32
}

// AuthorRequest заявка юзера на получение статуса автора.
type AuthorRequest struct {
	ID        int64
	CreatedAt time.Time
	UserID    string
	Reason    string
	Status    AuthorRequestStatusType
}
