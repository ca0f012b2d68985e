package update_waitlist_entry

import (
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

// NotifyRequest HTTP request model, тело опционально
type NotifyRequest struct {
	Slot *models.SlotRequest `json:"slot,omitempty"`
}
