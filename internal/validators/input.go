package validators

import (
	"context"

	"feedback-board/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldRating targets the 1–5 rating of a feedback submission.
	FieldRating = "rating"

	// FieldContent targets the text content of a comment.
	FieldContent = "content"

	// FieldUsername targets the login identifier of a user.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a register/login request.
	FieldPassword = "password"
)

// InputValidator implements the Validator interface for the inbound request
// models: FeedbackRequest, CommentRequest, and User (registration
// credentials).
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type InputValidator struct {
}

// NewInputValidator constructs a new InputValidator
// and returns it as the Validator interface.
func NewInputValidator() Validator {
	return &InputValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.FeedbackRequest / *models.FeedbackRequest
//   - models.CommentRequest / *models.CommentRequest
//   - models.User / *models.User
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FeedbackRequest:
		return v.validateFeedback(ctx, value, fields...)
	case *models.FeedbackRequest:
		return v.validateFeedback(ctx, *value, fields...)

	case models.CommentRequest:
		return v.validateComment(ctx, value, fields...)
	case *models.CommentRequest:
		return v.validateComment(ctx, *value, fields...)

	case models.User:
		return v.validateCredentials(ctx, value, fields...)
	case *models.User:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateFeedback(_ context.Context, req models.FeedbackRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRating}
	}

	for _, f := range fields {
		switch f {
		case FieldRating:
			rating, ok := req.Rating64()
			if !ok || rating < 1 || rating > 5 {
				return ErrRatingOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateComment(_ context.Context, req models.CommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if req.Content == "" {
				return ErrCommentContentRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials enforces presence of registration credentials. The
// three sentinel errors reproduce the API's message grammar: one missing
// field names that field, both missing yields the combined message.
func (v *InputValidator) validateCredentials(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	missingUsername := false
	missingPassword := false

	for _, f := range fields {
		switch f {
		case FieldUsername:
			missingUsername = user.Username == ""
		case FieldPassword:
			missingPassword = user.Password == ""
		default:
			return ErrUnknownField
		}
	}

	switch {
	case missingUsername && missingPassword:
		return ErrUsernameAndPasswordRequired
	case missingUsername:
		return ErrUsernameRequired
	case missingPassword:
		return ErrPasswordRequired
	}

	return nil
}
