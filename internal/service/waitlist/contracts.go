package waitlist

import (
	"context"
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) error
	GetByID(ctx context.Context, id string) (*domain.WaitlistEntry, error)
	GetByShop(ctx context.Context, shopID string, status *domain.WaitlistStatus) ([]domain.WaitlistEntry, error)
	UpdateStatus(ctx context.Context, entries []domain.WaitlistEntry) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик листа ожидания
type Metrics interface {
	ObserveWaitlistMatches(count int)
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
