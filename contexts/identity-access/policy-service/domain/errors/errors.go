package errors

import "errors"

var (
	ErrUnauthenticated = errors.New("principal is not authenticated")
	ErrForbidden       = errors.New("principal is not allowed to perform this action")
	ErrUnknownAction   = errors.New("unknown policy action")
)
