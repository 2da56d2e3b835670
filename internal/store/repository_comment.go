package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedback-board/internal/logger"
	"feedback-board/models"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. Reads join the author's username for display.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateComment(comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error building query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Comment
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&created.CommentID, &created.UserID, &created.FeedbackID, &created.Content, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error creating comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *commentRepository) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetComment(commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("error building query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Comment
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&found.CommentID, &found.UserID, &found.Username, &found.FeedbackID, &found.Content, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("error getting comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *commentRepository) GetFeedbackComments(ctx context.Context, feedbackID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFeedbackComments(feedbackID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetFeedbackComments").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetFeedbackComments").Msg("error querying comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.CommentID, &c.UserID, &c.Username, &c.FeedbackID, &c.Content, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*commentRepository.GetFeedbackComments").Msg("error scanning comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}
