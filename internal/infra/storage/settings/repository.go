package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/dbmetrics"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/psqlbuilder"
)

const table = "shop_settings"

// Repository репозиторий настроек магазина
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByShop получает настройки магазина
func (r *Repository) GetByShop(ctx context.Context, shopID string) (*domain.ShopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"shop_id",
		"server_count",
		"default_duration_minutes",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"shop_id": shopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - build select query: %v", ErrBuildQuery, err)
	}

	settings, err := scanSettings(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - scan settings: %w", ErrScanRow, err)
	}
	return settings, nil
}

// Upsert создает или обновляет настройки магазина
func (r *Repository) Upsert(ctx context.Context, settings *domain.ShopSettings) (*domain.ShopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("shop_id", "server_count", "default_duration_minutes").
		Values(settings.ShopID, settings.ServerCount, settings.DefaultDurationMinutes).
		Suffix(`ON CONFLICT (shop_id) DO UPDATE SET
			server_count = EXCLUDED.server_count,
			default_duration_minutes = EXCLUDED.default_duration_minutes,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	result := *settings
	result.CreatedAt = createdAt.Time
	result.UpdatedAt = updatedAt.Time

	return &result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSettings(row rowScanner) (*domain.ShopSettings, error) {
	var (
		settings  domain.ShopSettings
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&settings.ShopID,
		&settings.ServerCount,
		&settings.DefaultDurationMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}
