package http

import (
	"encoding/json"
	"net/http"

	"feedback-board/internal/logger"
	"feedback-board/internal/utils"
	"feedback-board/models"
)

// The notation handlers are generic over the owning entity: each route binds
// one of the registered models.NotationKind descriptors at wiring time and
// the same three handlers serve feedback and comment votes.

func (h *Handler) createNotation(kind models.NotationKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ownerID, ok := pathID(r)
		if !ok {
			utils.WriteJSONError(w, kind.OwnerNoun()+" not found", http.StatusNotFound)
			return
		}

		var request models.NotationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Msg("invalid JSON body")
			utils.WriteJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		notation, err := h.services.NotationService.CreateNotation(ctx, kind, userID, ownerID, request)
		if err != nil {
			respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.NotationResponse{
			Content: notation.Value,
			Message: "Notation created",
		}, http.StatusCreated)
	}
}

func (h *Handler) updateNotation(kind models.NotationKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ownerID, ok := pathID(r)
		if !ok {
			utils.WriteJSONError(w, kind.OwnerNoun()+" not found", http.StatusNotFound)
			return
		}

		var request models.NotationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Msg("invalid JSON body")
			utils.WriteJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		notation, err := h.services.NotationService.UpdateNotation(ctx, kind, userID, ownerID, request)
		if err != nil {
			respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.NotationResponse{
			Content: notation.Value,
			Message: "Notation updated",
		}, http.StatusOK)
	}
}

func (h *Handler) notationSummary(kind models.NotationKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			utils.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ownerID, ok := pathID(r)
		if !ok {
			utils.WriteJSONError(w, kind.OwnerNoun()+" not found", http.StatusNotFound)
			return
		}

		summary, err := h.services.NotationService.GetNotationSummary(ctx, kind, userID, ownerID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, summary, http.StatusOK)
	}
}
