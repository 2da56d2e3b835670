package models

import "math"

// FeedbackRequest is the JSON body of a feedback submission.
//
// Rating is decoded loosely (any) so that a non-integer rating produces the
// specific "rating must be an integer" validation error instead of a generic
// JSON decoding failure.
type FeedbackRequest struct {
	Rating any    `json:"rating"`
	Note   string `json:"note"`
}

// Rating64 converts the raw rating to int64. The second return value is
// false when the rating is absent, non-numeric, or not integral.
func (r FeedbackRequest) Rating64() (int64, bool) {
	return toInt64(r.Rating)
}

// CommentRequest is the JSON body of a comment submission.
type CommentRequest struct {
	Content    string `json:"content"`
	FeedbackID int64  `json:"feedback_id"`
}

// NotationRequest is the JSON body of a notation create/update call.
//
// Value is decoded loosely (any) so the engine can distinguish an absent
// value from an out-of-range one, as required by the validation contract.
type NotationRequest struct {
	Value any `json:"value"`
}

// Value64 converts the raw value to int64. The second return value is false
// when the value is absent, non-numeric, or not integral.
func (r NotationRequest) Value64() (int64, bool) {
	return toInt64(r.Value)
}

// toInt64 narrows a JSON-decoded number to an integral int64.
// encoding/json decodes every JSON number into float64, so only that case
// and the nil case matter here.
func toInt64(raw any) (int64, bool) {
	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}

	return int64(f), true
}
