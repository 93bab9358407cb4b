package repoargs

import "github.com/fsdevblog/groph-tales/internal/domain"

type TopupRequestCreate struct {
	UserID          string
	Amount          int64
	Method          domain.TopupMethodType
	TransactionCode string
}

// PendingTopup заявка из очереди оператора. Duplicate выставляется, если код транзакции
// встречается и в других заявках - такие показываются оператору с пометкой.
type PendingTopup struct {
	domain.TopupRequest
	Duplicate bool
}
