package errors

import "errors"

var (
	ErrAwardNotFound = errors.New("award not found")
	// ErrNoWinner marks an award whose evaluated projects all fell short of
	// the qualifying threshold, or which has no evaluated projects at all.
	ErrNoWinner = errors.New("award has no qualifying winner")
)
