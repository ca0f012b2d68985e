package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/internal/engine/queuestate"
	"github.com/asharptechsolutions/stylist-scheduler/internal/engine/waittime"
	queueRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/queue"
	settingsRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/settings"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue/models"
)

// Действия очереди, они же значения label в метриках
const (
	ActionJoin     = "join"
	ActionStart    = "start"
	ActionComplete = "complete"
	ActionNoShow   = "no_show"
	ActionMoveUp   = "move_up"
	ActionMoveDown = "move_down"
)

// Config значения по умолчанию для магазинов без настроек
type Config struct {
	DefaultDurationMinutes int
	DefaultServerCount     int
}

// Service сервис живой очереди
type Service struct {
	queueRepo    QueueRepository
	settingsRepo SettingsRepository
	staffClient  StaffServiceClient
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	cfg          Config
	logger       Logger
}

// NewService создает новый экземпляр сервиса очереди.
// staffClient может быть nil, тогда число мест берется из настроек магазина
func NewService(
	queueRepo QueueRepository,
	settingsRepo SettingsRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *Service {
	if cfg.DefaultDurationMinutes < domain.MinDurationMinutes {
		cfg.DefaultDurationMinutes = domain.DefaultDurationMinutes
	}
	if cfg.DefaultServerCount < domain.MinServerCount {
		cfg.DefaultServerCount = domain.DefaultServerCount
	}
	return &Service{
		queueRepo:    queueRepo,
		settingsRepo: settingsRepo,
		staffClient:  staffClient,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		cfg:          cfg,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Join ставит клиента в конец очереди магазина
// Следующая позиция вычисляется в сериализуемой транзакции
func (s *Service) Join(ctx context.Context, shopID string, req *models.JoinRequest) (*models.EntryResponse, error) {
	s.logger.Info("Join: shop=%s, client=%q, service=%v, staff=%v", shopID, req.ClientName, req.ServiceID, req.StaffID)

	if err := validateJoinRequest(req); err != nil {
		s.logger.Warn("Join: validation failed: %v", err)
		return nil, err
	}

	entry := domain.QueueEntry{
		ID:                       uuid.NewString(),
		ShopID:                   shopID,
		ClientName:               strings.TrimSpace(req.ClientName),
		ServiceID:                req.ServiceID,
		StaffID:                  req.StaffID,
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
	}
	now := s.timeProvider.Now()

	var joined domain.QueueEntry
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		snapshot, err := s.queueRepo.GetActiveByShop(txCtx, shopID)
		if err != nil {
			return fmt.Errorf("%w: Join - load snapshot: %w", ErrInternal, err)
		}

		result, err := queuestate.Join(snapshot, entry, now)
		if err != nil {
			return fmt.Errorf("%w: Join - %w", ErrInternal, err)
		}

		joined = result.Changed[0]
		if err := s.queueRepo.Create(txCtx, &joined); err != nil {
			return fmt.Errorf("%w: Join - create entry: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Join: failed for shop=%s: %v", shopID, err)
		return nil, err
	}

	s.metrics.IncQueueTransition(ActionJoin)
	s.logger.Info("Join: entry id=%s joined shop=%s at position=%d", joined.ID, shopID, joined.Position)
	return models.FromDomainEntry(&joined), nil
}

// Board возвращает очередь магазина с оценкой ожидания для каждой позиции
// и для нового клиента. Оценки не сохраняются
func (s *Service) Board(ctx context.Context, shopID string) (*models.BoardResponse, error) {
	s.logger.Info("Board: fetching queue for shop=%s", shopID)

	var (
		snapshot   []domain.QueueEntry
		settings   *domain.ShopSettings
		staffCount int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := s.queueRepo.GetActiveByShop(gctx, shopID)
		if err != nil {
			return err
		}
		snapshot = entries
		return nil
	})
	g.Go(func() error {
		settings = s.loadSettings(gctx, shopID)
		return nil
	})
	g.Go(func() error {
		staffCount = s.countStaff(gctx, shopID)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Board: failed to load queue for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: Board - repository error: %v", ErrInternal, err)
	}

	serverCount := s.resolveServerCount(staffCount, settings)
	opts := waittime.Options{
		ServerCount:     serverCount,
		DefaultDuration: settings.DefaultDurationMinutes,
		Now:             s.timeProvider.Now(),
	}

	waiting := queuestate.WaitingOrder(snapshot)
	inProgress := queuestate.InProgress(snapshot)

	waits := waittime.EstimateAllWaits(waiting, inProgress, opts)
	newArrival := waittime.EstimateNewArrival(waiting, inProgress, opts)
	s.metrics.ObserveWaitEstimate(newArrival)

	s.logger.Info("Board: shop=%s waiting=%d in_progress=%d servers=%d new_arrival_wait=%d",
		shopID, len(waiting), len(inProgress), serverCount, newArrival)

	return &models.BoardResponse{
		ShopID:                shopID,
		ServerCount:           serverCount,
		Waiting:               models.FromDomainEntries(waiting, waits),
		InProgress:            models.FromDomainEntries(inProgress, nil),
		NewArrivalWaitMinutes: newArrival,
	}, nil
}

// Start начинает обслуживание ожидающего клиента
func (s *Service) Start(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error) {
	return s.apply(ctx, "Start", ActionStart, shopID, entryID, queuestate.Start)
}

// Complete завершает обслуживание
func (s *Service) Complete(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error) {
	return s.apply(ctx, "Complete", ActionComplete, shopID, entryID, queuestate.Complete)
}

// NoShow отмечает неявку ожидающего клиента
func (s *Service) NoShow(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error) {
	return s.apply(ctx, "NoShow", ActionNoShow, shopID, entryID, queuestate.NoShow)
}

// MoveUp поднимает клиента на одну позицию
func (s *Service) MoveUp(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error) {
	return s.apply(ctx, "MoveUp", ActionMoveUp, shopID, entryID,
		func(snapshot []domain.QueueEntry, id string, _ time.Time) (queuestate.Result, error) {
			return queuestate.MoveUp(snapshot, id)
		})
}

// MoveDown опускает клиента на одну позицию
func (s *Service) MoveDown(ctx context.Context, shopID, entryID string) (*models.EntryResponse, error) {
	return s.apply(ctx, "MoveDown", ActionMoveDown, shopID, entryID,
		func(snapshot []domain.QueueEntry, id string, _ time.Time) (queuestate.Result, error) {
			return queuestate.MoveDown(snapshot, id)
		})
}

type transitionFunc func(snapshot []domain.QueueEntry, id string, now time.Time) (queuestate.Result, error)

// apply читает снимок очереди под блокировкой, выполняет переход
// и сохраняет изменённые записи в той же транзакции
func (s *Service) apply(ctx context.Context, op, action, shopID, entryID string, fn transitionFunc) (*models.EntryResponse, error) {
	s.logger.Info("%s: shop=%s, entry=%s", op, shopID, entryID)

	now := s.timeProvider.Now()

	var (
		target  domain.QueueEntry
		changed int
	)
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		snapshot, err := s.queueRepo.GetActiveByShop(txCtx, shopID)
		if err != nil {
			return fmt.Errorf("%w: %s - load snapshot: %w", ErrInternal, op, err)
		}

		result, err := fn(snapshot, entryID, now)
		if err != nil {
			return s.translateEngineError(txCtx, op, shopID, entryID, err)
		}

		if err := s.queueRepo.ApplyChanges(txCtx, result.Changed); err != nil {
			return fmt.Errorf("%w: %s - apply changes: %w", ErrInternal, op, err)
		}

		for i := range result.Entries {
			if result.Entries[i].ID == entryID {
				target = result.Entries[i]
				break
			}
		}
		changed = len(result.Changed)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEntryNotFound), errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("%s: rejected for shop=%s, entry=%s: %v", op, shopID, entryID, err)
		default:
			s.logger.Error("%s: failed for shop=%s, entry=%s: %v", op, shopID, entryID, err)
		}
		return nil, err
	}

	if changed > 0 {
		s.metrics.IncQueueTransition(action)
	}
	s.logger.Info("%s: entry=%s is %s, %d rows updated", op, entryID, target.Status, changed)
	return models.FromDomainEntry(&target), nil
}

// translateEngineError переводит ошибки перехода в ошибки сервиса.
// Запись вне активного снимка проверяется отдельно: завершённая запись
// даёт ErrInvalidTransition, отсутствующая ErrEntryNotFound
func (s *Service) translateEngineError(ctx context.Context, op, shopID, entryID string, err error) error {
	switch {
	case errors.Is(err, queuestate.ErrInvalidTransition):
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)

	case errors.Is(err, queuestate.ErrEntryNotFound):
		entry, getErr := s.queueRepo.GetByID(ctx, entryID)
		if getErr != nil {
			if errors.Is(getErr, queueRepo.ErrEntryNotFound) {
				return fmt.Errorf("%w: id=%s", ErrEntryNotFound, entryID)
			}
			return fmt.Errorf("%w: %s - get entry: %w", ErrInternal, op, getErr)
		}
		if entry.ShopID != shopID {
			return fmt.Errorf("%w: id=%s", ErrEntryNotFound, entryID)
		}
		return fmt.Errorf("%w: entry id=%s is already %s", ErrInvalidTransition, entryID, entry.Status)

	default:
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
}

// loadSettings возвращает настройки магазина, при отсутствии или ошибке значения из конфига
func (s *Service) loadSettings(ctx context.Context, shopID string) *domain.ShopSettings {
	fallback := &domain.ShopSettings{
		ShopID:                 shopID,
		ServerCount:            s.cfg.DefaultServerCount,
		DefaultDurationMinutes: s.cfg.DefaultDurationMinutes,
	}

	settings, err := s.settingsRepo.GetByShop(ctx, shopID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("loadSettings: failed to get settings for shop=%s, using defaults: %v", shopID, err)
		}
		return fallback
	}

	if settings.DefaultDurationMinutes < domain.MinDurationMinutes {
		settings.DefaultDurationMinutes = fallback.DefaultDurationMinutes
	}
	return settings
}

// countStaff возвращает число активных сотрудников, 0 если узнать не удалось
func (s *Service) countStaff(ctx context.Context, shopID string) int {
	if s.staffClient == nil {
		return 0
	}

	count, err := s.staffClient.CountActiveStaff(ctx, shopID)
	if err != nil {
		s.logger.Warn("countStaff: falling back to shop settings for shop=%s: %v", shopID, err)
		return 0
	}
	return count
}

// resolveServerCount приоритет: активные сотрудники > настройки магазина > конфиг
func (s *Service) resolveServerCount(staffCount int, settings *domain.ShopSettings) int {
	if staffCount > 0 {
		return staffCount
	}
	if settings != nil && settings.ServerCount > 0 {
		return settings.ServerCount
	}
	return s.cfg.DefaultServerCount
}
