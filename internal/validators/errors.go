package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRatingOutOfRange       = errors.New("rating must be an integer between 1 and 5")
	ErrCommentContentRequired = errors.New("comment content is required")

	ErrUsernameRequired            = errors.New("username required")
	ErrPasswordRequired            = errors.New("password required")
	ErrUsernameAndPasswordRequired = errors.New("username and password required")
)
