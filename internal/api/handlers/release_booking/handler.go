package release_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/asharptechsolutions/stylist-scheduler/internal/api/handlers"
	"github.com/asharptechsolutions/stylist-scheduler/internal/usecase/release_slot"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные запроса"
	msgNotFound           = "бронирование не найдено"
	msgCannotRelease      = "бронирование не может быть отменено"
)

type Handler struct {
	useCase ReleaseSlotUseCase
	action  release_slot.Action
	logger  Logger
}

func NewHandler(useCase ReleaseSlotUseCase, action release_slot.Action, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		action:  action,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel и /reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingIDStr := mux.Vars(r)["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/%s - Invalid booking ID: %v", h.action, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ReleaseBookingRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/%s - Invalid request body: %v", h.action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, h.action))
	if err != nil {
		switch {
		case errors.Is(err, release_slot.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/%s - Invalid data: booking_id=%d, error=%v", h.action, bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, release_slot.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/%s - Booking not found: booking_id=%d", h.action, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, release_slot.ErrCannotRelease):
			h.logger.Warn("PATCH /bookings/{id}/%s - Cannot release: booking_id=%d", h.action, bookingID)
			handlers.RespondConflict(w, msgCannotRelease)

		default:
			h.logger.Error("PATCH /bookings/{id}/%s - Failed to release booking: booking_id=%d, error=%v",
				h.action, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/%s - Booking released: booking_id=%d, matches=%d",
		h.action, bookingID, len(result.Matches))
	handlers.RespondJSON(w, http.StatusOK, result)
}
