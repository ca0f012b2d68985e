package release_booking

import (
	"github.com/asharptechsolutions/stylist-scheduler/internal/usecase/release_slot"
)

// ReleaseBookingRequest HTTP request model, тело опционально
type ReleaseBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *ReleaseBookingRequest) ToUseCaseRequest(bookingID int64, action release_slot.Action) *release_slot.Request {
	return &release_slot.Request{
		BookingID: bookingID,
		Action:    action,
		Reason:    r.CancellationReason,
	}
}
