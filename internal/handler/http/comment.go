package http

import (
	"encoding/json"
	"net/http"

	"feedback-board/internal/logger"
	"feedback-board/internal/utils"
	"feedback-board/models"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var request models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	comment, err := h.services.CommentService.CreateComment(ctx, userID, request.FeedbackID, request)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CommentCreatedResponse{
		ID:      comment.CommentID,
		Text:    comment.Content,
		Message: "Comment created",
	}, http.StatusCreated)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "Comment not found", http.StatusNotFound)
		return
	}

	comment, err := h.services.CommentService.GetComment(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) getFeedbackComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "Feedback not found", http.StatusNotFound)
		return
	}

	comments, err := h.services.CommentService.GetFeedbackComments(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CommentListResponse{Comments: comments}, http.StatusOK)
}
