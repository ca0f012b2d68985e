package get_shop_settings

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context, shopID string) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
