package service

import (
	"context"

	"feedback-board/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type FeedbackService interface {
	CreateFeedback(ctx context.Context, userID int64, request models.FeedbackRequest) (models.Feedback, error)
	GetFeedback(ctx context.Context, feedbackID int64) (models.Feedback, error)
	GetAllFeedbacks(ctx context.Context) ([]models.Feedback, error)
}

type CommentService interface {
	CreateComment(ctx context.Context, userID int64, feedbackID int64, request models.CommentRequest) (models.Comment, error)
	GetComment(ctx context.Context, commentID int64) (models.Comment, error)
	GetFeedbackComments(ctx context.Context, feedbackID int64) ([]models.Comment, error)
}

// NotationService is the voting engine. All notation behaviour is selected by
// the models.NotationKind descriptor — the same three operations serve both
// feedback and comment notations.
type NotationService interface {
	// CreateNotation casts the user's first notation on the given owner.
	// Returns store.ErrNotationAlreadyExists when the user has one already.
	CreateNotation(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64, request models.NotationRequest) (models.Notation, error)

	// UpdateNotation overwrites the value of the user's existing notation.
	// Returns store.ErrNotationNotFound when there is nothing to update.
	UpdateNotation(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64, request models.NotationRequest) (models.Notation, error)

	// GetNotationSummary aggregates all notations on the owner plus the
	// requesting user's own vote. Returns the owner's not-found error when
	// the owner itself does not exist.
	GetNotationSummary(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64) (models.NotationSummary, error)
}
