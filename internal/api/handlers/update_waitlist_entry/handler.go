package update_waitlist_entry

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

// Action действие над записью листа ожидания, совпадает с последним сегментом пути
type Action string

const (
	ActionNotify Action = "notify"
	ActionExpire Action = "expire"
	ActionBook   Action = "book"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "некорректный слот"
	msgNotFound           = "запись листа ожидания не найдена"
	msgInvalidTransition  = "действие недоступно в текущем статусе записи"
)

type Handler struct {
	service WaitlistService
	action  Action
	logger  Logger
}

func NewHandler(service WaitlistService, action Action, logger Logger) *Handler {
	return &Handler{
		service: service,
		action:  action,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/waitlist/{entryId}/{action}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID := vars["shopId"]
	entryID := vars["entryId"]

	var (
		result *models.EntryResponse
		err    error
	)

	switch h.action {
	case ActionNotify:
		var req NotifyRequest
		if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
			h.logger.Warn("POST /shops/{id}/waitlist/{entryId}/notify - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.Notify(r.Context(), shopID, entryID, req.Slot)
	case ActionExpire:
		result, err = h.service.Expire(r.Context(), shopID, entryID)
	default:
		result, err = h.service.Book(r.Context(), shopID, entryID)
	}

	if err != nil {
		switch {
		case errors.Is(err, waitlist.ErrInvalidInput):
			h.logger.Warn("POST /shops/{id}/waitlist/{entryId}/%s - Invalid slot: %v", h.action, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, waitlist.ErrEntryNotFound):
			h.logger.Warn("POST /shops/{id}/waitlist/{entryId}/%s - Entry not found: shop_id=%s, entry_id=%s",
				h.action, shopID, entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, waitlist.ErrInvalidTransition):
			h.logger.Warn("POST /shops/{id}/waitlist/{entryId}/%s - Invalid transition: entry_id=%s, error=%v",
				h.action, entryID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /shops/{id}/waitlist/{entryId}/%s - Failed: entry_id=%s, error=%v",
				h.action, entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/waitlist/{entryId}/%s - Done: entry_id=%s, status=%s", h.action, entryID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
