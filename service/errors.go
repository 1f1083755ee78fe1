package service

import (
	"errors"
)

// Expected, user-facing outcomes. The command surface maps each of these to a
// short denial message; none of them is ever fatal.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrAlreadyConfirmed  = errors.New("already confirmed")
	ErrAlreadyClaimed    = errors.New("already claimed today")
	ErrAlreadyCelebrated = errors.New("anniversary already celebrated this year")
	ErrNotAnniversary    = errors.New("today is not the anniversary")
	ErrCooldownActive    = errors.New("cooldown active")
	ErrNotCreator        = errors.New("only the creator may do that")
	ErrNotMarried        = errors.New("not married")
	ErrAlreadyMarried    = errors.New("already married")
	ErrSelfTarget        = errors.New("cannot target yourself")
	ErrHoneymoonOver     = errors.New("honeymoon is over")
	ErrInvalidArgument   = errors.New("invalid argument")
)
