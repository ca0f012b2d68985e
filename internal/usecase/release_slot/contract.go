package release_slot

import (
	"context"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Release(ctx context.Context, id int64, status domain.BookingStatus, reason *string) error
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	GetByShop(ctx context.Context, shopID string, status *domain.WaitlistStatus) ([]domain.WaitlistEntry, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик сверки листа ожидания
type Metrics interface {
	ObserveWaitlistMatches(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
