package join_queue

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue/models"
)

type QueueService interface {
	Join(ctx context.Context, shopID string, req *models.JoinRequest) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
