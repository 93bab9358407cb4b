package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrAlreadyUnlocked  = errors.New("chapter already unlocked")
	ErrAlreadyDecided   = errors.New("topup request already decided")
	ErrAlreadyApproved  = errors.New("story already approved")
	ErrNotAuthor        = errors.New("caller is not the story author")
)
