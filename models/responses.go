package models

// ErrorResponse is the uniform JSON error body written for every failed
// request: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health-check endpoint.
type HealthResponse struct {
	Message string `json:"message"`
}

// RegisterResponse confirms a successful account registration.
type RegisterResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// TokenResponse carries the signed JWT issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// FeedbackCreatedResponse confirms a stored feedback submission.
type FeedbackCreatedResponse struct {
	ID      int64  `json:"id"`
	Note    string `json:"note"`
	Message string `json:"message"`
}

// FeedbackListResponse wraps the full feedback listing.
type FeedbackListResponse struct {
	Feedbacks []Feedback `json:"feedbacks"`
}

// CommentCreatedResponse confirms a stored comment.
type CommentCreatedResponse struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Message string `json:"message"`
}

// CommentListResponse wraps the comments of one feedback.
type CommentListResponse struct {
	Comments []Comment `json:"comments"`
}

// NotationResponse confirms a created or updated notation, echoing the
// stored value back to the caller.
type NotationResponse struct {
	Content int64  `json:"content"`
	Message string `json:"message"`
}
