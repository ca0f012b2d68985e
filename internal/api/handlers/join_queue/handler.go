package join_queue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные клиента"
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

// Handle POST /api/v1/shops/{shopId}/queue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	var req JoinQueueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/{id}/queue - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Join(r.Context(), shopID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrInvalidInput):
			h.logger.Warn("POST /shops/{id}/queue - Invalid data: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /shops/{id}/queue - Failed to join queue: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/queue - Client joined: shop_id=%s, entry_id=%s", shopID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
