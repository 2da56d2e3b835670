package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotationValueRequired   = errors.New("notation value is required")
	ErrNotationValueOutOfRange = errors.New("notation value must be -1, 0 or 1")

	// ErrUnsupportedNotationKind signals a programming error: a handler passed
	// a zero or foreign NotationKind into the engine.
	ErrUnsupportedNotationKind = errors.New("unsupported notation kind")
)
