package notify_waitlist

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

type WaitlistService interface {
	NotifyBulk(ctx context.Context, shopID string, req *models.NotifyBulkRequest) ([]models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
