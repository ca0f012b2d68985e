package get_queue

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue/models"
)

type QueueService interface {
	Board(ctx context.Context, shopID string) (*models.BoardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
