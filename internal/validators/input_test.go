package validators

import (
	"context"
	"errors"
	"testing"

	"feedback-board/models"
)

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewInputValidator()
	if err := v.Validate(context.Background(), 42); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestValidateFeedback_Rating(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		rating  any
		wantErr error
	}{
		{"valid low bound", float64(1), nil},
		{"valid high bound", float64(5), nil},
		{"missing", nil, ErrRatingOutOfRange},
		{"zero", float64(0), ErrRatingOutOfRange},
		{"too big", float64(6), ErrRatingOutOfRange},
		{"fractional", float64(3.5), ErrRatingOutOfRange},
		{"string", "4", ErrRatingOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.FeedbackRequest{Rating: tt.rating})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateComment_Content(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, models.CommentRequest{Content: "nice"}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := v.Validate(ctx, &models.CommentRequest{}); !errors.Is(err, ErrCommentContentRequired) {
		t.Errorf("expected ErrCommentContentRequired, got %v", err)
	}
}

func TestValidateCredentials_MessageGrammar(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{"both present", models.User{Username: "john", Password: "pw"}, nil},
		{"missing username", models.User{Password: "pw"}, ErrUsernameRequired},
		{"missing password", models.User{Username: "john"}, ErrPasswordRequired},
		{"missing both", models.User{}, ErrUsernameAndPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewInputValidator()
	err := v.Validate(context.Background(), models.CommentRequest{Content: "x"}, "no-such-field")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}
