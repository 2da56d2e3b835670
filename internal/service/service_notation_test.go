package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"feedback-board/internal/logger"
	"feedback-board/internal/store"
	"feedback-board/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: store repositories
// ─────────────────────────────────────────────

type mockNotationRepository struct {
	createFn            func(ctx context.Context, notation models.Notation) (models.Notation, error)
	updateFn            func(ctx context.Context, notation models.Notation) (models.Notation, error)
	getOwnerNotationsFn func(ctx context.Context, kind models.NotationKind, ownerID int64) ([]models.Notation, error)
}

func (m *mockNotationRepository) CreateNotation(ctx context.Context, notation models.Notation) (models.Notation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, notation)
	}
	return notation, nil
}

func (m *mockNotationRepository) UpdateNotationValue(ctx context.Context, notation models.Notation) (models.Notation, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, notation)
	}
	return notation, nil
}

func (m *mockNotationRepository) GetOwnerNotations(ctx context.Context, kind models.NotationKind, ownerID int64) ([]models.Notation, error) {
	if m.getOwnerNotationsFn != nil {
		return m.getOwnerNotationsFn(ctx, kind, ownerID)
	}
	return nil, nil
}

type mockFeedbackRepository struct {
	createFn func(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	getFn    func(ctx context.Context, feedbackID int64) (models.Feedback, error)
	getAllFn func(ctx context.Context) ([]models.Feedback, error)
}

func (m *mockFeedbackRepository) CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	if m.createFn != nil {
		return m.createFn(ctx, feedback)
	}
	return feedback, nil
}

func (m *mockFeedbackRepository) GetFeedback(ctx context.Context, feedbackID int64) (models.Feedback, error) {
	if m.getFn != nil {
		return m.getFn(ctx, feedbackID)
	}
	return models.Feedback{FeedbackID: feedbackID}, nil
}

func (m *mockFeedbackRepository) GetAllFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

type mockCommentRepository struct {
	createFn      func(ctx context.Context, comment models.Comment) (models.Comment, error)
	getFn         func(ctx context.Context, commentID int64) (models.Comment, error)
	getFeedbackFn func(ctx context.Context, feedbackID int64) ([]models.Comment, error)
}

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return comment, nil
}

func (m *mockCommentRepository) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	if m.getFn != nil {
		return m.getFn(ctx, commentID)
	}
	return models.Comment{CommentID: commentID}, nil
}

func (m *mockCommentRepository) GetFeedbackComments(ctx context.Context, feedbackID int64) ([]models.Comment, error) {
	if m.getFeedbackFn != nil {
		return m.getFeedbackFn(ctx, feedbackID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newNotationService(n *mockNotationRepository, f *mockFeedbackRepository, c *mockCommentRepository) NotationService {
	if n == nil {
		n = &mockNotationRepository{}
	}
	if f == nil {
		f = &mockFeedbackRepository{}
	}
	if c == nil {
		c = &mockCommentRepository{}
	}
	return NewNotationService(n, f, c, logger.Nop())
}

func notationValue(v any) models.NotationRequest {
	return models.NotationRequest{Value: v}
}

// ─────────────────────────────────────────────
// Value validation
// ─────────────────────────────────────────────

func TestNotationService_ValueValidation(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr error
	}{
		{name: "missing value", value: nil, wantErr: ErrNotationValueRequired},
		{name: "too large", value: float64(2), wantErr: ErrNotationValueOutOfRange},
		{name: "too small", value: float64(-2), wantErr: ErrNotationValueOutOfRange},
		{name: "fractional", value: float64(0.5), wantErr: ErrNotationValueOutOfRange},
		{name: "non-numeric", value: "up", wantErr: ErrNotationValueOutOfRange},
		{name: "upvote", value: float64(1), wantErr: nil},
		{name: "neutral", value: float64(0), wantErr: nil},
		{name: "downvote", value: float64(-1), wantErr: nil},
	}

	svc := newNotationService(nil, nil, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateNotation(context.Background(), models.FeedbackNotation, 1, 1, notationValue(tt.value))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ─────────────────────────────────────────────
// CreateNotation
// ─────────────────────────────────────────────

func TestNotationService_CreateNotation_Success(t *testing.T) {
	repo := &mockNotationRepository{
		createFn: func(_ context.Context, notation models.Notation) (models.Notation, error) {
			assert.Equal(t, int64(3), notation.UserID)
			assert.Equal(t, "comment", notation.OwnerKind)
			assert.Equal(t, int64(11), notation.OwnerID)
			assert.Equal(t, int64(-1), notation.Value)

			notation.NotationID = 42
			return notation, nil
		},
	}
	svc := newNotationService(repo, nil, nil)

	created, err := svc.CreateNotation(context.Background(), models.CommentNotation, 3, 11, notationValue(float64(-1)))

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.NotationID)
	assert.Equal(t, int64(-1), created.Value)
}

func TestNotationService_CreateNotation_Duplicate(t *testing.T) {
	repo := &mockNotationRepository{
		createFn: func(_ context.Context, _ models.Notation) (models.Notation, error) {
			return models.Notation{}, store.ErrNotationAlreadyExists
		},
	}
	svc := newNotationService(repo, nil, nil)

	_, err := svc.CreateNotation(context.Background(), models.FeedbackNotation, 3, 11, notationValue(float64(1)))

	assert.ErrorIs(t, err, store.ErrNotationAlreadyExists)
}

func TestNotationService_CreateNotation_InvalidKind(t *testing.T) {
	svc := newNotationService(nil, nil, nil)

	_, err := svc.CreateNotation(context.Background(), models.NotationKind{}, 3, 11, notationValue(float64(1)))

	assert.ErrorIs(t, err, ErrUnsupportedNotationKind)
}

// ─────────────────────────────────────────────
// UpdateNotation
// ─────────────────────────────────────────────

func TestNotationService_UpdateNotation_Success(t *testing.T) {
	repo := &mockNotationRepository{
		updateFn: func(_ context.Context, notation models.Notation) (models.Notation, error) {
			assert.Equal(t, int64(0), notation.Value)
			return notation, nil
		},
	}
	svc := newNotationService(repo, nil, nil)

	updated, err := svc.UpdateNotation(context.Background(), models.FeedbackNotation, 3, 11, notationValue(float64(0)))

	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Value)
}

func TestNotationService_UpdateNotation_NotFound(t *testing.T) {
	repo := &mockNotationRepository{
		updateFn: func(_ context.Context, _ models.Notation) (models.Notation, error) {
			return models.Notation{}, store.ErrNotationNotFound
		},
	}
	svc := newNotationService(repo, nil, nil)

	_, err := svc.UpdateNotation(context.Background(), models.CommentNotation, 3, 11, notationValue(float64(1)))

	assert.ErrorIs(t, err, store.ErrNotationNotFound)
}

// ─────────────────────────────────────────────
// GetNotationSummary
// ─────────────────────────────────────────────

func TestNotationService_GetNotationSummary_Aggregation(t *testing.T) {
	repo := &mockNotationRepository{
		getOwnerNotationsFn: func(_ context.Context, kind models.NotationKind, ownerID int64) ([]models.Notation, error) {
			assert.Equal(t, models.FeedbackNotation, kind)
			assert.Equal(t, int64(11), ownerID)

			return []models.Notation{
				{UserID: 1, Value: 1},
				{UserID: 2, Value: 1},
				{UserID: 3, Value: -1},
				{UserID: 4, Value: 0},
			}, nil
		},
	}
	svc := newNotationService(repo, nil, nil)

	summary, err := svc.GetNotationSummary(context.Background(), models.FeedbackNotation, 3, 11)

	require.NoError(t, err)
	assert.Equal(t, int64(11), summary.OwnerID)
	assert.Equal(t, int64(2), summary.PositiveNotations)
	assert.Equal(t, int64(1), summary.NegativeNotations)
	assert.Equal(t, int64(-1), summary.UserNotation)
}

func TestNotationService_GetNotationSummary_NoUserVote(t *testing.T) {
	repo := &mockNotationRepository{
		getOwnerNotationsFn: func(_ context.Context, _ models.NotationKind, _ int64) ([]models.Notation, error) {
			return []models.Notation{{UserID: 1, Value: 1}}, nil
		},
	}
	svc := newNotationService(repo, nil, nil)

	summary, err := svc.GetNotationSummary(context.Background(), models.CommentNotation, 99, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.UserNotation)
}

func TestNotationService_GetNotationSummary_OwnerMissing(t *testing.T) {
	feedbacks := &mockFeedbackRepository{
		getFn: func(_ context.Context, _ int64) (models.Feedback, error) {
			return models.Feedback{}, store.ErrFeedbackNotFound
		},
	}
	svc := newNotationService(nil, feedbacks, nil)

	_, err := svc.GetNotationSummary(context.Background(), models.FeedbackNotation, 3, 404)

	assert.ErrorIs(t, err, store.ErrFeedbackNotFound)
}

func TestNotationService_GetNotationSummary_CommentOwnerMissing(t *testing.T) {
	comments := &mockCommentRepository{
		getFn: func(_ context.Context, _ int64) (models.Comment, error) {
			return models.Comment{}, store.ErrCommentNotFound
		},
	}
	svc := newNotationService(nil, nil, comments)

	_, err := svc.GetNotationSummary(context.Background(), models.CommentNotation, 3, 404)

	assert.ErrorIs(t, err, store.ErrCommentNotFound)
}

// ─────────────────────────────────────────────
// Concurrent first votes
// ─────────────────────────────────────────────

// uniqueNotationRepository mimics the database uniqueness constraint on
// (user_id, owner_kind, owner_id) so concurrent creates race for one slot.
type uniqueNotationRepository struct {
	mu   sync.Mutex
	rows map[[3]int64]models.Notation
	next int64
}

func ownerKindCode(kind string) int64 {
	if kind == "comment" {
		return 1
	}
	return 0
}

func (r *uniqueNotationRepository) CreateNotation(_ context.Context, notation models.Notation) (models.Notation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [3]int64{notation.UserID, ownerKindCode(notation.OwnerKind), notation.OwnerID}
	if _, exists := r.rows[key]; exists {
		return models.Notation{}, store.ErrNotationAlreadyExists
	}

	r.next++
	notation.NotationID = r.next
	r.rows[key] = notation
	return notation, nil
}

func (r *uniqueNotationRepository) UpdateNotationValue(_ context.Context, notation models.Notation) (models.Notation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [3]int64{notation.UserID, ownerKindCode(notation.OwnerKind), notation.OwnerID}
	existing, exists := r.rows[key]
	if !exists {
		return models.Notation{}, store.ErrNotationNotFound
	}

	existing.Value = notation.Value
	r.rows[key] = existing
	return existing, nil
}

func (r *uniqueNotationRepository) GetOwnerNotations(_ context.Context, kind models.NotationKind, ownerID int64) ([]models.Notation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notations := make([]models.Notation, 0)
	for _, n := range r.rows {
		if n.OwnerKind == kind.Name() && n.OwnerID == ownerID {
			notations = append(notations, n)
		}
	}
	return notations, nil
}

func TestNotationService_CreateNotation_ConcurrentFirstVotes(t *testing.T) {
	repo := &uniqueNotationRepository{rows: make(map[[3]int64]models.Notation)}
	svc := NewNotationService(repo, &mockFeedbackRepository{}, &mockCommentRepository{}, logger.Nop())

	const attempts = 32

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateNotation(context.Background(), models.FeedbackNotation, 3, 11, notationValue(float64(1)))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, store.ErrNotationAlreadyExists):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one concurrent create must win")
	assert.Equal(t, attempts-1, conflicts)

	notations, err := repo.GetOwnerNotations(context.Background(), models.FeedbackNotation, 11)
	require.NoError(t, err)
	assert.Len(t, notations, 1, "exactly one notation row must be stored")
}
