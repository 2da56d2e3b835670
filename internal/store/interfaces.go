package store

import (
	"context"

	"feedback-board/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the persisted record with
	// server-assigned fields. Returns ErrUsernameAlreadyExists when the
	// username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// FeedbackRepository persists and reads feedback submissions.
type FeedbackRepository interface {
	// CreateFeedback inserts a new feedback and returns the persisted record.
	CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error)

	// GetFeedback returns one feedback with its author's username joined,
	// or ErrFeedbackNotFound.
	GetFeedback(ctx context.Context, feedbackID int64) (models.Feedback, error)

	// GetAllFeedbacks returns every feedback with author usernames joined.
	GetAllFeedbacks(ctx context.Context) ([]models.Feedback, error)
}

// CommentRepository persists and reads comments attached to feedbacks.
type CommentRepository interface {
	// CreateComment inserts a new comment and returns the persisted record.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// GetComment returns one comment with its author's username joined,
	// or ErrCommentNotFound.
	GetComment(ctx context.Context, commentID int64) (models.Comment, error)

	// GetFeedbackComments returns all comments of one feedback with author
	// usernames joined.
	GetFeedbackComments(ctx context.Context, feedbackID int64) ([]models.Comment, error)
}

// NotationRepository persists notations. All mutation of notation rows goes
// through this interface; no other writer touches them.
type NotationRepository interface {
	// CreateNotation inserts a notation as a single atomic write. A
	// uniqueness violation on (user, owner kind, owner id) is returned as
	// ErrNotationAlreadyExists, so concurrent creates for the same pair
	// collapse to exactly one stored row.
	CreateNotation(ctx context.Context, notation models.Notation) (models.Notation, error)

	// UpdateNotationValue overwrites the value of the caller's existing
	// notation on the given owner. Returns ErrNotationNotFound when the
	// user has not cast a notation on that owner.
	UpdateNotationValue(ctx context.Context, notation models.Notation) (models.Notation, error)

	// GetOwnerNotations returns every notation cast on the given owner.
	GetOwnerNotations(ctx context.Context, kind models.NotationKind, ownerID int64) ([]models.Notation, error)
}
