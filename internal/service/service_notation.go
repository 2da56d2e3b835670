package service

import (
	"context"
	"errors"
	"fmt"

	"feedback-board/internal/logger"
	"feedback-board/internal/store"
	"feedback-board/models"
)

// notationService is the notation engine. It is generic over the owning
// entity: every operation takes a models.NotationKind descriptor and the two
// registered kinds (feedback, comment) share one code path and one table.
//
// The engine never pre-checks for an existing notation before creating one.
// Creation is a single INSERT and the database uniqueness constraint decides
// the winner under concurrency, so two simultaneous first votes by the same
// user collapse to exactly one stored row.
type notationService struct {
	notationRepository store.NotationRepository
	feedbackRepository store.FeedbackRepository
	commentRepository  store.CommentRepository
	logger             *logger.Logger
}

// NewNotationService constructs the notation engine. The feedback and comment
// repositories are used only for owner-existence checks on summary reads.
func NewNotationService(
	notationRepository store.NotationRepository,
	feedbackRepository store.FeedbackRepository,
	commentRepository store.CommentRepository,
	logger *logger.Logger,
) NotationService {
	return &notationService{
		notationRepository: notationRepository,
		feedbackRepository: feedbackRepository,
		commentRepository:  commentRepository,
		logger:             logger,
	}
}

// validateValue narrows the loosely decoded request value to a vote.
// An absent value and an out-of-range (or non-integer) value are distinct
// failures with distinct user-facing messages.
func validateValue(request models.NotationRequest) (int64, error) {
	if request.Value == nil {
		return 0, ErrNotationValueRequired
	}

	value, ok := request.Value64()
	if !ok || value < models.NotationValueMin || value > models.NotationValueMax {
		return 0, ErrNotationValueOutOfRange
	}

	return value, nil
}

// CreateNotation casts the user's first notation on the owner identified by
// (kind, ownerID). The insert itself is the uniqueness check: a concurrent or
// repeated create surfaces as store.ErrNotationAlreadyExists.
func (s *notationService) CreateNotation(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64, request models.NotationRequest) (models.Notation, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return models.Notation{}, ErrUnsupportedNotationKind
	}

	value, err := validateValue(request)
	if err != nil {
		return models.Notation{}, err
	}

	notation := models.Notation{
		UserID:    userID,
		OwnerKind: kind.Name(),
		OwnerID:   ownerID,
		Value:     value,
	}

	created, err := s.notationRepository.CreateNotation(ctx, notation)
	if err != nil {
		if errors.Is(err, store.ErrNotationAlreadyExists) {
			return models.Notation{}, err
		}

		log.Err(err).Int64("userID", userID).Str("kind", kind.Name()).Int64("ownerID", ownerID).Msg("notation creation ended with error")
		return models.Notation{}, fmt.Errorf("notation creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateNotation overwrites the value of the user's existing notation on the
// owner. A user who has not voted yet gets store.ErrNotationNotFound.
func (s *notationService) UpdateNotation(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64, request models.NotationRequest) (models.Notation, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return models.Notation{}, ErrUnsupportedNotationKind
	}

	value, err := validateValue(request)
	if err != nil {
		return models.Notation{}, err
	}

	notation := models.Notation{
		UserID:    userID,
		OwnerKind: kind.Name(),
		OwnerID:   ownerID,
		Value:     value,
	}

	updated, err := s.notationRepository.UpdateNotationValue(ctx, notation)
	if err != nil {
		if errors.Is(err, store.ErrNotationNotFound) {
			return models.Notation{}, err
		}

		log.Err(err).Int64("userID", userID).Str("kind", kind.Name()).Int64("ownerID", ownerID).Msg("notation update ended with error")
		return models.Notation{}, fmt.Errorf("notation update ended with error: %w", err)
	}

	return updated, nil
}

// GetNotationSummary aggregates every notation on one owner plus the
// requesting user's own vote (0 when the user has not voted).
//
// The owner's existence is verified first, so a summary on a missing feedback
// or comment reports the owner as not found rather than an empty tally.
func (s *notationService) GetNotationSummary(ctx context.Context, kind models.NotationKind, userID int64, ownerID int64) (models.NotationSummary, error) {
	if err := s.checkOwnerExists(ctx, kind, ownerID); err != nil {
		return models.NotationSummary{}, err
	}

	notations, err := s.notationRepository.GetOwnerNotations(ctx, kind, ownerID)
	if err != nil {
		return models.NotationSummary{}, fmt.Errorf("loading notations ended with error: %w", err)
	}

	summary := models.NotationSummary{OwnerID: ownerID}
	for _, n := range notations {
		switch {
		case n.Value > 0:
			summary.PositiveNotations++
		case n.Value < 0:
			summary.NegativeNotations++
		}
		if n.UserID == userID {
			summary.UserNotation = n.Value
		}
	}

	return summary, nil
}

// checkOwnerExists resolves the kind to the owning entity's repository and
// confirms the owner row exists.
func (s *notationService) checkOwnerExists(ctx context.Context, kind models.NotationKind, ownerID int64) error {
	switch kind {
	case models.FeedbackNotation:
		_, err := s.feedbackRepository.GetFeedback(ctx, ownerID)
		return err
	case models.CommentNotation:
		_, err := s.commentRepository.GetComment(ctx, ownerID)
		return err
	default:
		return ErrUnsupportedNotationKind
	}
}
