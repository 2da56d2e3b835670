package models

import "time"

// Comment is a free-text reply attached to a feedback. Immutable once
// created in this system's scope.
type Comment struct {
	// CommentID is the server-assigned unique identifier.
	CommentID int64 `json:"id"`

	// UserID references the comment author.
	UserID int64 `json:"user_id"`

	// Username is the author's display name, joined in read queries.
	// Not a column of the comments table.
	Username string `json:"username,omitempty"`

	// FeedbackID references the feedback this comment belongs to.
	FeedbackID int64 `json:"feedback_id"`

	// Content is the comment text. Required.
	Content string `json:"content"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
