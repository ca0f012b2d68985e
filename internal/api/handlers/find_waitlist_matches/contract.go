package find_waitlist_matches

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

type WaitlistService interface {
	FindMatches(ctx context.Context, shopID string, slot *models.SlotRequest) (*models.MatchesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
