package http

import (
	"net/http"

	"feedback-board/internal/utils"
	"feedback-board/models"
)

// health is the liveness probe. It reports success as long as the process
// accepts connections; it does not touch the database.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Message: "App is running"}, http.StatusOK)
}
