package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	settingsRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/settings"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/settings/models"
)

// Defaults значения для магазинов без сохранённых настроек
type Defaults struct {
	ServerCount            int
	DefaultDurationMinutes int
}

// Service сервис настроек магазина
type Service struct {
	repo     SettingsRepository
	defaults Defaults
	logger   Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, defaults Defaults, logger Logger) *Service {
	if defaults.ServerCount < domain.MinServerCount {
		defaults.ServerCount = domain.DefaultServerCount
	}
	if defaults.DefaultDurationMinutes < domain.MinDurationMinutes {
		defaults.DefaultDurationMinutes = domain.DefaultDurationMinutes
	}
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// Get получает настройки магазина
// Если магазин ничего не настраивал, возвращает значения по умолчанию
func (s *Service) Get(ctx context.Context, shopID string) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for shop=%s", shopID)

	settings, isDefault, err := s.load(ctx, shopID)
	if err != nil {
		s.logger.Error("Get: repository error for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings, isDefault), nil
}

// Update обновляет настройки магазина
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, shopID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for shop=%s", shopID)

	settings, _, err := s.load(ctx, shopID)
	if err != nil {
		s.logger.Error("Update: repository error for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyToSettings(settings)

	if err := validateSettings(settings); err != nil {
		s.logger.Warn("Update: validation failed for shop=%s: %v", shopID, err)
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: shop=%s server_count=%d default_duration=%d",
		shopID, saved.ServerCount, saved.DefaultDurationMinutes)
	return models.FromDomainSettings(saved, false), nil
}

func (s *Service) load(ctx context.Context, shopID string) (*domain.ShopSettings, bool, error) {
	settings, err := s.repo.GetByShop(ctx, shopID)
	if err == nil {
		return settings, false, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return nil, false, err
	}

	return &domain.ShopSettings{
		ShopID:                 shopID,
		ServerCount:            s.defaults.ServerCount,
		DefaultDurationMinutes: s.defaults.DefaultDurationMinutes,
	}, true, nil
}

func validateSettings(settings *domain.ShopSettings) error {
	if settings.ServerCount < domain.MinServerCount || settings.ServerCount > domain.MaxServerCount {
		return fmt.Errorf("%w: serverCount must be between %d and %d",
			ErrInvalidInput, domain.MinServerCount, domain.MaxServerCount)
	}
	if settings.DefaultDurationMinutes < domain.MinDurationMinutes ||
		settings.DefaultDurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: defaultDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}
