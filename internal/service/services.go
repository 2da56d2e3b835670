package service

import (
	"feedback-board/internal/config"
	"feedback-board/internal/logger"
	"feedback-board/internal/store"
	"feedback-board/internal/validators"
)

type Services struct {
	AuthService     AuthService
	FeedbackService FeedbackService
	CommentService  CommentService
	NotationService NotationService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewInputValidator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		FeedbackService: NewFeedbackService(storages.FeedbackRepository, validator, logger),
		CommentService:  NewCommentService(storages.CommentRepository, storages.FeedbackRepository, validator, logger),
		NotationService: NewNotationService(storages.NotationRepository, storages.FeedbackRepository, storages.CommentRepository, logger),
	}
}
