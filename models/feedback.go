package models

import "time"

// Feedback is a single rating+note submission. Immutable once created:
// this system exposes no edit or delete operations for it.
type Feedback struct {
	// FeedbackID is the server-assigned unique identifier.
	FeedbackID int64 `json:"id"`

	// UserID references the user who submitted the feedback.
	UserID int64 `json:"user_id"`

	// Username is the submitter's display name, joined in read queries.
	// Not a column of the feedbacks table.
	Username string `json:"username,omitempty"`

	// Rating is an integer score between 1 and 5 inclusive.
	Rating int64 `json:"rating"`

	// Note is an optional free-text remark. Empty means not provided.
	Note string `json:"note"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Feedback model.
func (f Feedback) TableName() string {
	return "feedbacks"
}
