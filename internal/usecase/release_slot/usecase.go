package release_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	matcher "github.com/asharptechsolutions/stylist-scheduler/internal/engine/waitlist"
	bookingRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/booking"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

// UseCase use case освобождения слота бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	waitlistRepo WaitlistRepository
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	waitlistRepo WaitlistRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		waitlistRepo: waitlistRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute отменяет или отклоняет бронирование и сразу сверяет
// освободившийся слот с листом ожидания магазина
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReleaseSlot: booking=%d, action=%s", req.BookingID, req.Action)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReleaseSlot: validation failed: %v", err)
		return nil, err
	}

	var (
		booking *domain.Booking
		matches []domain.WaitlistEntry
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Блокируем бронирование и проверяем статус
		var err error
		booking, err = uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: get booking: %w", ErrInternal, err)
		}

		if !booking.CanBeReleased() {
			return fmt.Errorf("%w: booking id=%d is %s", ErrCannotRelease, booking.ID, booking.Status)
		}

		// 3. Освобождаем слот
		status := req.Action.Status()
		if err := uc.bookingRepo.Release(txCtx, booking.ID, status, req.Reason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: booking id=%d changed concurrently", ErrCannotRelease, booking.ID)
			}
			return fmt.Errorf("%w: release booking: %w", ErrInternal, err)
		}
		booking.Status = status
		booking.CancellationReason = req.Reason

		// 4. Сверяем слот с ожидающими записями
		waiting := domain.WaitlistStatusWaiting
		entries, err := uc.waitlistRepo.GetByShop(txCtx, booking.ShopID, &waiting)
		if err != nil {
			return fmt.Errorf("%w: load waitlist: %w", ErrInternal, err)
		}

		matches = matcher.FindMatches(entries, booking.FreedSlot())
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			uc.logger.Warn("ReleaseSlot: booking id=%d not found", req.BookingID)
		case errors.Is(err, ErrCannotRelease):
			uc.logger.Warn("ReleaseSlot: %v", err)
		default:
			uc.logger.Error("ReleaseSlot: failed for booking id=%d: %v", req.BookingID, err)
		}
		return nil, err
	}

	uc.metrics.ObserveWaitlistMatches(len(matches))
	uc.logger.Info("ReleaseSlot: booking id=%d is %s, %d waitlist matches for shop=%s",
		booking.ID, booking.Status, len(matches), booking.ShopID)

	return &Response{
		BookingID: booking.ID,
		ShopID:    booking.ShopID,
		Status:    string(booking.Status),
		FreedSlot: models.FromDomainSlot(booking.FreedSlot()),
		Matches:   models.FromDomainEntries(matches),
	}, nil
}
