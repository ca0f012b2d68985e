package get_queue

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers"
)

type Handler struct {
	service QueueService
	logger  Logger
}

func NewHandler(service QueueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/queue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	board, err := h.service.Board(r.Context(), shopID)
	if err != nil {
		h.logger.Error("GET /shops/{id}/queue - Failed to get queue: shop_id=%s, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shops/{id}/queue - Queue fetched: shop_id=%s, waiting=%d", shopID, len(board.Waiting))
	handlers.RespondJSON(w, http.StatusOK, board)
}
