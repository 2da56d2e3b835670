package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"feedback-board/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)

		r.Get("/api/feedback", h.getAllFeedbacks)
		r.Get("/api/feedback/{id:[0-9]+}", h.getFeedback)
		r.Get("/api/feedback/{id:[0-9]+}/comments", h.getFeedbackComments)
		r.Get("/api/comment/{id:[0-9]+}", h.getComment)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/feedback", h.createFeedback)
		r.Post("/api/comment", h.createComment)

		r.Post("/api/feedback/{id:[0-9]+}/notations", h.createNotation(models.FeedbackNotation))
		r.Patch("/api/feedback/{id:[0-9]+}/notations", h.updateNotation(models.FeedbackNotation))
		r.Get("/api/feedback/{id:[0-9]+}/notations", h.notationSummary(models.FeedbackNotation))
		r.Get("/api/feedback/{id:[0-9]+}/notations/summary", h.notationSummary(models.FeedbackNotation))

		r.Post("/api/comment/{id:[0-9]+}/notations", h.createNotation(models.CommentNotation))
		r.Patch("/api/comment/{id:[0-9]+}/notations", h.updateNotation(models.CommentNotation))
		r.Get("/api/comment/{id:[0-9]+}/notations", h.notationSummary(models.CommentNotation))
		r.Get("/api/comment/{id:[0-9]+}/notations/summary", h.notationSummary(models.CommentNotation))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
