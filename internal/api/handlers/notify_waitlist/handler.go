package notify_waitlist

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
	msgInvalidData        = "некорректный список записей или слот"
	msgNotFound           = "запись листа ожидания не найдена"
	msgInvalidTransition  = "не все записи можно уведомить"
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

// Handle POST /api/v1/shops/{shopId}/waitlist/notify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	var req models.NotifyBulkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/{id}/waitlist/notify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entries, err := h.service.NotifyBulk(r.Context(), shopID, &req)
	if err != nil {
		switch {
		case errors.Is(err, waitlist.ErrInvalidInput):
			h.logger.Warn("POST /shops/{id}/waitlist/notify - Invalid data: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, waitlist.ErrEntryNotFound):
			h.logger.Warn("POST /shops/{id}/waitlist/notify - Entry not found: shop_id=%s, error=%v", shopID, err)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, waitlist.ErrInvalidTransition):
			h.logger.Warn("POST /shops/{id}/waitlist/notify - Invalid transition: shop_id=%s, error=%v", shopID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /shops/{id}/waitlist/notify - Failed: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/waitlist/notify - Notified: shop_id=%s, count=%d", shopID, len(entries))
	handlers.RespondJSON(w, http.StatusOK, entries)
}
