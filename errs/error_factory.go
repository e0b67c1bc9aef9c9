package errs

import "errors"

var (
	ErrInvalidPort           = errors.New("invalid port")
	ErrUnexpectedStatus      = errors.New("unexpected status")
	ErrUnexpectedContentType = errors.New("unexpected content type")
	ErrNotResponder          = errors.New("not a responder")
	ErrUnknownLogComponent   = errors.New("unknown log component")
)
