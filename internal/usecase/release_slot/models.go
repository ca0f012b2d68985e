package release_slot

import (
	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

// Action способ освобождения слота
type Action string

const (
	ActionCancel Action = "cancel"
	ActionReject Action = "reject"
)

// Status итоговый статус бронирования для действия
func (a Action) Status() domain.BookingStatus {
	if a == ActionReject {
		return domain.BookingStatusRejected
	}
	return domain.BookingStatusCancelled
}

// Request запрос на отмену или отклонение бронирования
type Request struct {
	BookingID int64
	Action    Action
	Reason    *string
}

// Response освобождённый слот и подходящие записи листа ожидания, старые первыми.
// Уведомлять ли их, решает вызывающий
type Response struct {
	BookingID int64                  `json:"bookingId"`
	ShopID    string                 `json:"shopId"`
	Status    string                 `json:"status"`
	FreedSlot models.SlotResponse    `json:"freedSlot"`
	Matches   []models.EntryResponse `json:"matches"`
}
