package service

import (
	"context"
	"fmt"

	"feedback-board/internal/logger"
	"feedback-board/internal/store"
	"feedback-board/internal/validators"
	"feedback-board/models"
)

// feedbackService implements FeedbackService on top of a FeedbackRepository.
type feedbackService struct {
	feedbackRepository store.FeedbackRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewFeedbackService constructs a FeedbackService wired to the given repository.
func NewFeedbackService(feedbackRepository store.FeedbackRepository, validator validators.Validator, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateFeedback validates the submitted rating and persists a new feedback
// for the given user. A missing, non-integer or out-of-range rating yields
// validators.ErrRatingOutOfRange.
func (s *feedbackService) CreateFeedback(ctx context.Context, userID int64, request models.FeedbackRequest) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Feedback{}, err
	}

	rating, _ := request.Rating64()
	feedback := models.Feedback{
		UserID: userID,
		Rating: rating,
		Note:   request.Note,
	}

	created, err := s.feedbackRepository.CreateFeedback(ctx, feedback)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("feedback creation ended with error")
		return models.Feedback{}, fmt.Errorf("feedback creation ended with error: %w", err)
	}

	return created, nil
}

// GetFeedback returns one feedback or store.ErrFeedbackNotFound.
func (s *feedbackService) GetFeedback(ctx context.Context, feedbackID int64) (models.Feedback, error) {
	return s.feedbackRepository.GetFeedback(ctx, feedbackID)
}

// GetAllFeedbacks returns every feedback with author usernames joined.
func (s *feedbackService) GetAllFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	return s.feedbackRepository.GetAllFeedbacks(ctx)
}
