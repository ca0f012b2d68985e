package join_waitlist

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные предпочтения записи"
)

type Handler struct {
	service WaitlistService
	logger  Logger
}

func NewHandler(service WaitlistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/waitlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	var req models.JoinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/{id}/waitlist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Join(r.Context(), shopID, &req)
	if err != nil {
		switch {
		case errors.Is(err, waitlist.ErrInvalidInput):
			h.logger.Warn("POST /shops/{id}/waitlist - Invalid data: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /shops/{id}/waitlist - Failed to join waitlist: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/waitlist - Entry created: shop_id=%s, entry_id=%s", shopID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
