package service

import (
	"context"
	"fmt"

	"feedback-board/internal/logger"
	"feedback-board/internal/store"
	"feedback-board/internal/validators"
	"feedback-board/models"
)

// commentService implements CommentService. It depends on the feedback
// repository as well, because a comment may only be attached to an existing
// feedback.
type commentService struct {
	commentRepository  store.CommentRepository
	feedbackRepository store.FeedbackRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewCommentService constructs a CommentService wired to the given repositories.
func NewCommentService(commentRepository store.CommentRepository, feedbackRepository store.FeedbackRepository, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository:  commentRepository,
		feedbackRepository: feedbackRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateComment validates the comment content, confirms the target feedback
// exists, and persists the comment.
//
// Returns:
//   - validators.ErrCommentContentRequired when the content is empty.
//   - store.ErrFeedbackNotFound when the target feedback does not exist.
func (s *commentService) CreateComment(ctx context.Context, userID int64, feedbackID int64, request models.CommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Comment{}, err
	}

	if _, err := s.feedbackRepository.GetFeedback(ctx, feedbackID); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		UserID:     userID,
		FeedbackID: feedbackID,
		Content:    request.Content,
	}

	created, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int64("feedbackID", feedbackID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return created, nil
}

// GetComment returns one comment or store.ErrCommentNotFound.
func (s *commentService) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	return s.commentRepository.GetComment(ctx, commentID)
}

// GetFeedbackComments returns all comments of one feedback. The feedback must
// exist; otherwise store.ErrFeedbackNotFound is returned.
func (s *commentService) GetFeedbackComments(ctx context.Context, feedbackID int64) ([]models.Comment, error) {
	if _, err := s.feedbackRepository.GetFeedback(ctx, feedbackID); err != nil {
		return nil, err
	}

	return s.commentRepository.GetFeedbackComments(ctx, feedbackID)
}
