package domain

type LedgerKindType string

const (
	LedgerKindUnlockDebit LedgerKindType = "unlock_debit"
	LedgerKindTopupCredit LedgerKindType = "topup_credit"
)

type TopupStatusType string

const (
	TopupStatusPending  TopupStatusType = "pending"
	TopupStatusApproved TopupStatusType = "approved"
	TopupStatusRejected TopupStatusType = "rejected"
	TopupStatusExpired  TopupStatusType = "expired"
)

type TopupMethodType string

const (
	TopupMethodBank TopupMethodType = "bank"
	TopupMethodMomo TopupMethodType = "momo"
)

type StoryStatusType string

const (
	StoryStatusPending  StoryStatusType = "pending"
	StoryStatusApproved StoryStatusType = "approved"
)

type AuthorRequestStatusType string

const (
	AuthorRequestStatusPending AuthorRequestStatusType = "pending"
)
