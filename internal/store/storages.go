package store

import "feedback-board/internal/logger"

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository
	FeedbackRepository
	CommentRepository
	NotationRepository
}

// NewStorages wires all repositories to one database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		FeedbackRepository: NewFeedbackRepository(db, logger),
		CommentRepository:  NewCommentRepository(db, logger),
		NotationRepository: NewNotationRepository(db, logger),
	}
}
