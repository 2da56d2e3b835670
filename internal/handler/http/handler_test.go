package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"feedback-board/internal/logger"
	"feedback-board/internal/service"
	"feedback-board/models"

	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "issued-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString == "good-token" {
		return models.Token{UserID: 3}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockFeedbackService struct {
	createFn func(ctx context.Context, userID int64, request models.FeedbackRequest) (models.Feedback, error)
	getFn    func(ctx context.Context, feedbackID int64) (models.Feedback, error)
	getAllFn func(ctx context.Context) ([]models.Feedback, error)
}

func (m *mockFeedbackService) CreateFeedback(ctx context.Context, userID int64, request models.FeedbackRequest) (models.Feedback, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, request)
	}
	return models.Feedback{}, nil
}

func (m *mockFeedbackService) GetFeedback(ctx context.Context, feedbackID int64) (models.Feedback, error) {
	if m.getFn != nil {
		return m.getFn(ctx, feedbackID)
	}
	return models.Feedback{FeedbackID: feedbackID}, nil
}

func (m *mockFeedbackService) GetAllFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

type mockCommentService struct {
	createFn      func(ctx context.Context, userID int64, feedbackID int64, request models.CommentRequest) (models.Comment, error)
	getFn         func(ctx context.Context, commentID int64) (models.Comment, error)
	getFeedbackFn func(ctx context.Context, feedbackID int64) ([]models.Comment, error)
}

func (m *mockCommentService) CreateComment(ctx context.Context, userID int64, feedbackID int64, request models.CommentRequest) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, feedbackID, request)
	}
	return models.Comment{}, nil
}

func (m *mockCommentService) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	if m.getFn != nil {
		return m.getFn(ctx, commentID)
	}
	return models.Comment{CommentID: commentID}, nil
}

func (m *mockCommentService) GetFeedbackComments(ctx context.Context, feedbackID int64) ([]models.Comment, error) {
	if m.getFeedbackFn != nil {
		return m.getFeedbackFn(ctx, feedbackID)
	}
	return nil, nil
}

type mockNotationService struct {
	createFn  func(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64, request models.NotationRequest) (models.Notation, error)
	updateFn  func(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64, request models.NotationRequest) (models.Notation, error)
	summaryFn func(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64) (models.NotationSummary, error)
}

func (m *mockNotationService) CreateNotation(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64, request models.NotationRequest) (models.Notation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, kind, userID, ownerID, request)
	}
	value, _ := request.Value64()
	return models.Notation{UserID: userID, OwnerKind: kind.Name(), OwnerID: ownerID, Value: value}, nil
}

func (m *mockNotationService) UpdateNotation(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64, request models.NotationRequest) (models.Notation, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, kind, userID, ownerID, request)
	}
	value, _ := request.Value64()
	return models.Notation{UserID: userID, OwnerKind: kind.Name(), OwnerID: ownerID, Value: value}, nil
}

func (m *mockNotationService) GetNotationSummary(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64) (models.NotationSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, kind, userID, ownerID)
	}
	return models.NotationSummary{OwnerID: ownerID}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth     service.AuthService
	feedback service.FeedbackService
	comment  service.CommentService
	notation service.NotationService
}

func newTestRouter(s testServices) http.Handler {
	if s.auth == nil {
		s.auth = &mockAuthService{}
	}
	if s.feedback == nil {
		s.feedback = &mockFeedbackService{}
	}
	if s.comment == nil {
		s.comment = &mockCommentService{}
	}
	if s.notation == nil {
		s.notation = &mockNotationService{}
	}

	h := NewHandler(&service.Services{
		AuthService:     s.auth,
		FeedbackService: s.feedback,
		CommentService:  s.comment,
		NotationService: s.notation,
	}, logger.Nop())

	return h.Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
