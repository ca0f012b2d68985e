package release_booking

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/usecase/release_slot"
)

type ReleaseSlotUseCase interface {
	Execute(ctx context.Context, req *release_slot.Request) (*release_slot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
