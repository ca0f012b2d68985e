package update_queue_entry

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue/models"
)

type QueueService interface {
	Start(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error)
	Complete(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error)
	NoShow(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error)
	MoveUp(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error)
	MoveDown(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
