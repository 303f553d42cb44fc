package services

import "errors"

// Error taxonomy shared by all services. Controllers match these with
// errors.Is to pick a status code; the wrapped message becomes the response
// body.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)
