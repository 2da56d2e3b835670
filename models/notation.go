package models

import "time"

// Notation value bounds. A notation is one user's signed opinion on exactly
// one owning entity: -1 (downvote), 0 (neutral) or +1 (upvote).
const (
	NotationValueMin int64 = -1
	NotationValueMax int64 = 1
)

// Notation is a single user's vote on a feedback or a comment.
//
// The (UserID, OwnerKind, OwnerID) triple is unique: a user holds at most one
// notation per owning entity. The constraint lives in the database schema and
// is the engine's central invariant.
type Notation struct {
	// NotationID is the server-assigned unique identifier.
	NotationID int64 `json:"-"`

	// UserID references the user who cast the notation.
	UserID int64 `json:"-"`

	// OwnerKind is the discriminator naming the owning entity type.
	// One of the NotationKind names ("feedback" or "comment").
	OwnerKind string `json:"-"`

	// OwnerID is the identifier of the owning feedback or comment.
	OwnerID int64 `json:"-"`

	// Value is the vote itself: -1, 0 or 1.
	Value int64 `json:"value"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Notation model.
func (n Notation) TableName() string {
	return "notations"
}

// NotationKind is a closed descriptor selecting which owning entity type a
// notation operation targets. The two valid kinds are the package-level
// FeedbackNotation and CommentNotation values; the zero value is invalid.
//
// Fields are unexported on purpose: no other package can mint a new kind, so
// engine code never needs to inspect runtime types to pick behaviour.
type NotationKind struct {
	// name is the discriminator value stored in notations.owner_kind.
	name string

	// ownerNoun is the capitalised owner type name used in user-facing
	// "not found" messages.
	ownerNoun string
}

// FeedbackNotation targets notations owned by a Feedback.
var FeedbackNotation = NotationKind{name: "feedback", ownerNoun: "Feedback"}

// CommentNotation targets notations owned by a Comment.
var CommentNotation = NotationKind{name: "comment", ownerNoun: "Comment"}

// Name returns the owner_kind discriminator ("feedback" or "comment").
func (k NotationKind) Name() string {
	return k.name
}

// OwnerNoun returns the owner type name used in error messages
// ("Feedback" or "Comment").
func (k NotationKind) OwnerNoun() string {
	return k.ownerNoun
}

// Valid reports whether k is one of the registered kinds. A false result is
// a programming error on the caller's side, not user input.
func (k NotationKind) Valid() bool {
	return k == FeedbackNotation || k == CommentNotation
}

// String implements fmt.Stringer.
func (k NotationKind) String() string {
	return k.name
}

// NotationSummary aggregates all notations of one owning entity plus the
// requesting user's own vote (0 when the user has not voted).
type NotationSummary struct {
	OwnerID           int64 `json:"owner_id"`
	PositiveNotations int64 `json:"positive_notations"`
	NegativeNotations int64 `json:"negative_notations"`
	UserNotation      int64 `json:"user_notation"`
}
