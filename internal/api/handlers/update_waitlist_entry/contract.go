package update_waitlist_entry

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

type WaitlistService interface {
	Notify(ctx context.Context, shopID, entryID string, slot *models.SlotRequest) (*models.EntryResponse, error)
	Expire(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error)
	Book(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
