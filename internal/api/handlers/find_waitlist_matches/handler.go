package find_waitlist_matches

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
	msgInvalidSlot        = "некорректный слот"
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

// Handle POST /api/v1/shops/{shopId}/waitlist/matches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	var slot models.SlotRequest
	if err := handlers.DecodeJSON(r, &slot); err != nil {
		h.logger.Warn("POST /shops/{id}/waitlist/matches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.FindMatches(r.Context(), shopID, &slot)
	if err != nil {
		switch {
		case errors.Is(err, waitlist.ErrInvalidInput):
			h.logger.Warn("POST /shops/{id}/waitlist/matches - Invalid slot: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /shops/{id}/waitlist/matches - Failed: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/waitlist/matches - Matches found: shop_id=%s, count=%d", shopID, len(result.Matches))
	handlers.RespondJSON(w, http.StatusOK, result)
}
