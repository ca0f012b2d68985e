package waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/internal/engine/queuestate"
	matcher "github.com/asharptechsolutions/stylist-scheduler/internal/engine/waitlist"
	waitlistRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/waitlist"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

// Service сервис листа ожидания
type Service struct {
	repo         WaitlistRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса листа ожидания
func NewService(repo WaitlistRepository, txManager TransactionManager, metrics Metrics, logger Logger) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Join добавляет клиента в лист ожидания магазина
func (s *Service) Join(ctx context.Context, shopID string, req *models.JoinRequest) (*models.EntryResponse, error) {
	s.logger.Info("Join: shop=%s, client=%q, service=%v, staff=%v", shopID, req.ClientName, req.ServiceID, req.StaffID)

	entry, err := buildEntry(shopID, req)
	if err != nil {
		s.logger.Warn("Join: validation failed: %v", err)
		return nil, err
	}

	entry.ID = uuid.NewString()
	entry.Status = domain.WaitlistStatusWaiting
	entry.CreatedAt = s.timeProvider.Now()

	if err := s.repo.Create(ctx, &entry); err != nil {
		s.logger.Error("Join: repository error for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: Join - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Join: entry id=%s added to waitlist of shop=%s", entry.ID, shopID)
	return models.FromDomainEntry(&entry), nil
}

// List возвращает записи магазина, старые первыми, опционально по статусу
func (s *Service) List(ctx context.Context, shopID string, status *string) ([]models.EntryResponse, error) {
	s.logger.Info("List: shop=%s, status=%v", shopID, status)

	filter, err := parseStatus(status)
	if err != nil {
		s.logger.Warn("List: validation failed: %v", err)
		return nil, err
	}

	entries, err := s.repo.GetByShop(ctx, shopID, filter)
	if err != nil {
		s.logger.Error("List: repository error for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntries(entries), nil
}

// Notify переводит запись в notified, сохраняя предложенный слот если он передан
func (s *Service) Notify(ctx context.Context, shopID, entryID string, slotReq *models.SlotRequest) (*models.EntryResponse, error) {
	var slot *domain.FreedSlot
	if slotReq != nil {
		parsed, err := ParseSlot(slotReq)
		if err != nil {
			s.logger.Warn("Notify: validation failed: %v", err)
			return nil, err
		}
		slot = &parsed
	}

	now := s.timeProvider.Now()
	return s.apply(ctx, "Notify", shopID, entryID, func(entry domain.WaitlistEntry) (domain.WaitlistEntry, error) {
		return queuestate.Notify(entry, now, slot)
	})
}

// Expire убирает запись из листа ожидания
func (s *Service) Expire(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error) {
	return s.apply(ctx, "Expire", shopID, entryID, queuestate.Expire)
}

// Book отмечает, что уведомлённый клиент занял предложенный слот
func (s *Service) Book(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error) {
	return s.apply(ctx, "Book", shopID, entryID, queuestate.Book)
}

// NotifyBulk уведомляет несколько записей сразу.
// Если хотя бы одна запись не может быть уведомлена, не меняется ни одна
func (s *Service) NotifyBulk(ctx context.Context, shopID string, req *models.NotifyBulkRequest) ([]models.EntryResponse, error) {
	s.logger.Info("NotifyBulk: shop=%s, entries=%d", shopID, len(req.EntryIDs))

	if len(req.EntryIDs) == 0 {
		s.logger.Warn("NotifyBulk: empty entry list for shop=%s", shopID)
		return nil, fmt.Errorf("%w: entryIds must not be empty", ErrInvalidInput)
	}

	var slot *domain.FreedSlot
	if req.Slot != nil {
		parsed, err := ParseSlot(req.Slot)
		if err != nil {
			s.logger.Warn("NotifyBulk: validation failed: %v", err)
			return nil, err
		}
		slot = &parsed
	}

	now := s.timeProvider.Now()

	var notified []domain.WaitlistEntry
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		entries, err := s.repo.GetByShop(txCtx, shopID, nil)
		if err != nil {
			return fmt.Errorf("%w: NotifyBulk - load entries: %w", ErrInternal, err)
		}

		notified, err = queuestate.NotifyBulk(entries, req.EntryIDs, now, slot)
		if err != nil {
			return translateEngineError(err)
		}

		if err := s.repo.UpdateStatus(txCtx, notified); err != nil {
			return fmt.Errorf("%w: NotifyBulk - update entries: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logResult("NotifyBulk", shopID, "", err)
		return nil, err
	}

	s.logger.Info("NotifyBulk: notified %d entries of shop=%s", len(notified), shopID)
	return models.FromDomainEntries(notified), nil
}

// FindMatches возвращает ожидающие записи, подходящие под освободившийся слот
func (s *Service) FindMatches(ctx context.Context, shopID string, slotReq *models.SlotRequest) (*models.MatchesResponse, error) {
	slot, err := ParseSlot(slotReq)
	if err != nil {
		s.logger.Warn("FindMatches: validation failed: %v", err)
		return nil, err
	}

	status := domain.WaitlistStatusWaiting
	entries, err := s.repo.GetByShop(ctx, shopID, &status)
	if err != nil {
		s.logger.Error("FindMatches: repository error for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: FindMatches - repository error: %v", ErrInternal, err)
	}

	matches := matcher.FindMatches(entries, slot)
	s.metrics.ObserveWaitlistMatches(len(matches))

	s.logger.Info("FindMatches: shop=%s, candidates=%d, matches=%d", shopID, len(entries), len(matches))
	return &models.MatchesResponse{
		Slot:    models.FromDomainSlot(slot),
		Matches: models.FromDomainEntries(matches),
	}, nil
}

type transitionFunc func(entry domain.WaitlistEntry) (domain.WaitlistEntry, error)

// apply загружает запись под блокировкой, выполняет переход и сохраняет результат
func (s *Service) apply(ctx context.Context, op, shopID, entryID string, fn transitionFunc) (*models.EntryResponse, error) {
	s.logger.Info("%s: shop=%s, entry=%s", op, shopID, entryID)

	var updated domain.WaitlistEntry
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		entry, err := s.repo.GetByID(txCtx, entryID)
		if err != nil {
			if errors.Is(err, waitlistRepo.ErrEntryNotFound) {
				return fmt.Errorf("%w: id=%s", ErrEntryNotFound, entryID)
			}
			return fmt.Errorf("%w: %s - get entry: %w", ErrInternal, op, err)
		}
		if entry.ShopID != shopID {
			return fmt.Errorf("%w: id=%s", ErrEntryNotFound, entryID)
		}

		updated, err = fn(*entry)
		if err != nil {
			return translateEngineError(err)
		}

		if err := s.repo.UpdateStatus(txCtx, []domain.WaitlistEntry{updated}); err != nil {
			return fmt.Errorf("%w: %s - update entry: %w", ErrInternal, op, err)
		}
		return nil
	})
	if err != nil {
		s.logResult(op, shopID, entryID, err)
		return nil, err
	}

	s.logger.Info("%s: entry=%s is %s", op, entryID, updated.Status)
	return models.FromDomainEntry(&updated), nil
}

func (s *Service) logResult(op, shopID, entryID string, err error) {
	switch {
	case errors.Is(err, ErrEntryNotFound), errors.Is(err, ErrInvalidTransition):
		s.logger.Warn("%s: rejected for shop=%s, entry=%s: %v", op, shopID, entryID, err)
	default:
		s.logger.Error("%s: failed for shop=%s, entry=%s: %v", op, shopID, entryID, err)
	}
}

func translateEngineError(err error) error {
	switch {
	case errors.Is(err, queuestate.ErrInvalidTransition):
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	case errors.Is(err, queuestate.ErrEntryNotFound):
		return fmt.Errorf("%w: %v", ErrEntryNotFound, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
