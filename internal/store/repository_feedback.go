package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedback-board/internal/logger"
	"feedback-board/models"
)

// feedbackRepository is the PostgreSQL-backed implementation of
// [FeedbackRepository]. Reads join the author's username for display.
type feedbackRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFeedbackRepository constructs a [FeedbackRepository] backed by the
// provided database connection and logger.
func NewFeedbackRepository(db *DB, logger *logger.Logger) FeedbackRepository {
	logger.Debug().Msg("creating feedback repository")
	return &feedbackRepository{
		db:     db,
		logger: logger,
	}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateFeedback(feedback)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.CreateFeedback").Msg("error building query")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Feedback
	var note sql.NullString
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&created.FeedbackID, &created.UserID, &created.Rating, &note, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*feedbackRepository.CreateFeedback").Msg("error creating feedback")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	created.Note = note.String

	return created, nil
}

func (r *feedbackRepository) GetFeedback(ctx context.Context, feedbackID int64) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFeedback(feedbackID)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.GetFeedback").Msg("error building query")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Feedback
	var note sql.NullString
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&found.FeedbackID, &found.UserID, &found.Username, &found.Rating, &note, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrFeedbackNotFound
		}

		log.Err(err).Str("func", "*feedbackRepository.GetFeedback").Msg("error getting feedback")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	found.Note = note.String

	return found, nil
}

func (r *feedbackRepository) GetAllFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllFeedbacks()
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.GetAllFeedbacks").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.GetAllFeedbacks").Msg("error querying feedbacks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	feedbacks := make([]models.Feedback, 0)
	for rows.Next() {
		var fb models.Feedback
		var note sql.NullString
		if err := rows.Scan(&fb.FeedbackID, &fb.UserID, &fb.Username, &fb.Rating, &note, &fb.CreatedAt); err != nil {
			log.Err(err).Str("func", "*feedbackRepository.GetAllFeedbacks").Msg("error scanning feedback row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		fb.Note = note.String
		feedbacks = append(feedbacks, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return feedbacks, nil
}
