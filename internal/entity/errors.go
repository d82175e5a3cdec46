package entity

import "errors"

// Error taxonomy shared by every usecase. Usecases wrap these sentinels with
// context and the HTTP layer maps them to status codes, so checks always run
// in the same order: input shape, existence, rights, execution.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
