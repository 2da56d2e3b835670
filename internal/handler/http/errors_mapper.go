package http

import (
	"errors"
	"net/http"

	"feedback-board/internal/logger"
	"feedback-board/internal/service"
	"feedback-board/internal/store"
	"feedback-board/internal/utils"
	"feedback-board/internal/validators"
)

// apiError pairs the HTTP status with the user-facing message for one
// sentinel error.
type apiError struct {
	status  int
	message string
}

var errorResponseMap = map[error]apiError{
	validators.ErrUsernameRequired:            {http.StatusBadRequest, "Username required"},
	validators.ErrPasswordRequired:            {http.StatusBadRequest, "Password required"},
	validators.ErrUsernameAndPasswordRequired: {http.StatusBadRequest, "Username and password required"},
	validators.ErrRatingOutOfRange:            {http.StatusBadRequest, "Rating must be an integer between 1 and 5"},
	validators.ErrCommentContentRequired:      {http.StatusBadRequest, "Comment content is required"},

	service.ErrInvalidCredentials:      {http.StatusUnauthorized, "Invalid credentials"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, "Unauthorized"},
	service.ErrNotationValueRequired:   {http.StatusBadRequest, "Notation content is required"},
	service.ErrNotationValueOutOfRange: {http.StatusBadRequest, "Notation must be -1, 0 or 1"},

	store.ErrUsernameAlreadyExists: {http.StatusBadRequest, "Username already exists"},
	store.ErrNoUserWasFound:        {http.StatusNotFound, "User not found"},
	store.ErrFeedbackNotFound:      {http.StatusNotFound, "Feedback not found"},
	store.ErrCommentNotFound:       {http.StatusNotFound, "Comment not found"},
	store.ErrNotationAlreadyExists: {http.StatusBadRequest, "Can't have more than one notation per entity"},
	store.ErrNotationNotFound:      {http.StatusNotFound, "Notation not found"},
}

// respondError translates a service/store error into its HTTP status and
// user-facing message. Errors without a mapping are hidden behind a generic
// 500 so internals never leak to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			utils.WriteJSONError(w, response.message, response.status)
			return
		}
	}

	logger.FromRequest(r).Err(err).Msg("unexpected error")
	utils.WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
}
