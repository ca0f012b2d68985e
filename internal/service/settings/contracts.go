package settings

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	GetByShop(ctx context.Context, shopID string) (*domain.ShopSettings, error)
	Upsert(ctx context.Context, settings *domain.ShopSettings) (*domain.ShopSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
