package http

import (
	"context"
	"net/http"
	"testing"

	"feedback-board/internal/store"
	"feedback-board/internal/validators"
	"feedback-board/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment_Success(t *testing.T) {
	comment := &mockCommentService{
		createFn: func(_ context.Context, userID int64, feedbackID int64, request models.CommentRequest) (models.Comment, error) {
			assert.Equal(t, int64(3), userID)
			assert.Equal(t, int64(11), feedbackID)
			return models.Comment{CommentID: 5, UserID: userID, FeedbackID: feedbackID, Content: request.Content}, nil
		},
	}
	router := newTestRouter(testServices{comment: comment})

	rec := doRequest(t, router, http.MethodPost, "/api/comment", "good-token", map[string]any{
		"content":     "agree",
		"feedback_id": 11,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Comment created", body["message"])
	assert.Equal(t, float64(5), body["id"])
	assert.Equal(t, "agree", body["text"])
}

func TestCreateComment_EmptyContent(t *testing.T) {
	comment := &mockCommentService{
		createFn: func(_ context.Context, _ int64, _ int64, _ models.CommentRequest) (models.Comment, error) {
			return models.Comment{}, validators.ErrCommentContentRequired
		},
	}
	router := newTestRouter(testServices{comment: comment})

	rec := doRequest(t, router, http.MethodPost, "/api/comment", "good-token", map[string]any{
		"feedback_id": 11,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Comment content is required", decodeBody(t, rec)["error"])
}

func TestCreateComment_FeedbackMissing(t *testing.T) {
	comment := &mockCommentService{
		createFn: func(_ context.Context, _ int64, _ int64, _ models.CommentRequest) (models.Comment, error) {
			return models.Comment{}, store.ErrFeedbackNotFound
		},
	}
	router := newTestRouter(testServices{comment: comment})

	rec := doRequest(t, router, http.MethodPost, "/api/comment", "good-token", map[string]any{
		"content":     "agree",
		"feedback_id": 404,
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Feedback not found", decodeBody(t, rec)["error"])
}

func TestGetComment_NotFound(t *testing.T) {
	comment := &mockCommentService{
		getFn: func(_ context.Context, _ int64) (models.Comment, error) {
			return models.Comment{}, store.ErrCommentNotFound
		},
	}
	router := newTestRouter(testServices{comment: comment})

	rec := doRequest(t, router, http.MethodGet, "/api/comment/404", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Comment not found", decodeBody(t, rec)["error"])
}

func TestGetFeedbackComments_Public(t *testing.T) {
	comment := &mockCommentService{
		getFeedbackFn: func(_ context.Context, feedbackID int64) ([]models.Comment, error) {
			assert.Equal(t, int64(11), feedbackID)
			return []models.Comment{
				{CommentID: 1, FeedbackID: 11, Content: "first"},
				{CommentID: 2, FeedbackID: 11, Content: "second"},
			}, nil
		},
	}
	router := newTestRouter(testServices{comment: comment})

	rec := doRequest(t, router, http.MethodGet, "/api/feedback/11/comments", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	comments, ok := decodeBody(t, rec)["comments"].([]any)
	require.True(t, ok)
	assert.Len(t, comments, 2)
}
