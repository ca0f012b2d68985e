package update_shop_settings

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, shopID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
