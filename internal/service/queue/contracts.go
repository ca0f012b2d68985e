package queue

import (
	"context"
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// QueueRepository интерфейс репозитория живой очереди
type QueueRepository interface {
	Create(ctx context.Context, entry *domain.QueueEntry) error
	GetByID(ctx context.Context, id string) (*domain.QueueEntry, error)
	GetActiveByShop(ctx context.Context, shopID string) ([]domain.QueueEntry, error)
	ApplyChanges(ctx context.Context, entries []domain.QueueEntry) error
}

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	GetByShop(ctx context.Context, shopID string) (*domain.ShopSettings, error)
}

// StaffServiceClient интерфейс клиента сервиса персонала
type StaffServiceClient interface {
	CountActiveStaff(ctx context.Context, shopID string) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик очереди
type Metrics interface {
	IncQueueTransition(action string)
	ObserveWaitEstimate(minutes int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
