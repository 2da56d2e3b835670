package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"feedback-board/internal/logger"
	"feedback-board/internal/utils"
	"feedback-board/models"
)

// pathID extracts the numeric {id} route parameter. Route patterns constrain
// the parameter to digits, so a parse failure only happens on overflow.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (h *Handler) createFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var request models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	feedback, err := h.services.FeedbackService.CreateFeedback(ctx, userID, request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FeedbackCreatedResponse{
		ID:      feedback.FeedbackID,
		Note:    feedback.Note,
		Message: "Feedback created",
	}, http.StatusCreated)
}

func (h *Handler) getFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "Feedback not found", http.StatusNotFound)
		return
	}

	feedback, err := h.services.FeedbackService.GetFeedback(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, feedback, http.StatusOK)
}

func (h *Handler) getAllFeedbacks(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.services.FeedbackService.GetAllFeedbacks(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FeedbackListResponse{Feedbacks: feedbacks}, http.StatusOK)
}
