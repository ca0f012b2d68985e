package release_slot

import (
	"fmt"
	"unicode/utf8"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if req.Action != ActionCancel && req.Action != ActionReject {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}
