package repoargs

import "github.com/fsdevblog/groph-tales/internal/domain"

// LedgerEntryCreate аргументы вставки записи журнала. Тройка (UserID, Kind, Reference)
// уникальна в БД и служит ключом дедупликации для ретраев.
type LedgerEntryCreate struct {
	UserID    string
	Delta     int64
	Kind      domain.LedgerKindType
	Reference string
}
