package update_queue_entry

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue/models"
)

// Action действие над записью очереди, совпадает с последним сегментом пути
type Action string

const (
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionNoShow   Action = "no-show"
	ActionMoveUp   Action = "move-up"
	ActionMoveDown Action = "move-down"
)

const (
	msgNotFound          = "запись очереди не найдена"
	msgInvalidTransition = "действие недоступно в текущем статусе записи"
)

type Handler struct {
	service QueueService
	action  Action
	logger  Logger
}

func NewHandler(service QueueService, action Action, logger Logger) *Handler {
	return &Handler{
		service: service,
		action:  action,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/queue/{entryId}/{action}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID := vars["shopId"]
	entryID := vars["entryId"]

	result, err := h.call(r.Context(), shopID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, queue.ErrEntryNotFound):
			h.logger.Warn("POST /shops/{id}/queue/{entryId}/%s - Entry not found: shop_id=%s, entry_id=%s",
				h.action, shopID, entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, queue.ErrInvalidTransition):
			h.logger.Warn("POST /shops/{id}/queue/{entryId}/%s - Invalid transition: entry_id=%s, error=%v",
				h.action, entryID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /shops/{id}/queue/{entryId}/%s - Failed: entry_id=%s, error=%v",
				h.action, entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/queue/{entryId}/%s - Done: entry_id=%s, status=%s", h.action, entryID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) call(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error) {
	switch h.action {
	case ActionStart:
		return h.service.Start(ctx, shopID, entryID)
	case ActionComplete:
		return h.service.Complete(ctx, shopID, entryID)
	case ActionNoShow:
		return h.service.NoShow(ctx, shopID, entryID)
	case ActionMoveUp:
		return h.service.MoveUp(ctx, shopID, entryID)
	default:
		return h.service.MoveDown(ctx, shopID, entryID)
	}
}
