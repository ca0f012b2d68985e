package get_waitlist

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist"
)

const msgInvalidStatus = "некорректный статус"

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

// Handle GET /api/v1/shops/{shopId}/waitlist?status=waiting
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	entries, err := h.service.List(r.Context(), shopID, status)
	if err != nil {
		switch {
		case errors.Is(err, waitlist.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/waitlist - Invalid status: shop_id=%s, status=%v", shopID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /shops/{id}/waitlist - Failed to list waitlist: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/waitlist - Waitlist fetched: shop_id=%s, count=%d", shopID, len(entries))
	handlers.RespondJSON(w, http.StatusOK, entries)
}
