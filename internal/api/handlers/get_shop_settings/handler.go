package get_shop_settings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	result, err := h.service.Get(r.Context(), shopID)
	if err != nil {
		h.logger.Error("GET /shops/{id}/settings - Failed to get settings: shop_id=%s, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shops/{id}/settings - Settings fetched: shop_id=%s, default=%t", shopID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
