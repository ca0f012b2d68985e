package queue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/dbmetrics"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/psqlbuilder"
)

const table = "queue_entries"

var columns = []string{
	"id",
	"shop_id",
	"client_name",
	"service_id",
	"staff_id",
	"estimated_duration_minutes",
	"status",
	"position",
	"joined_at",
	"started_at",
	"completed_at",
}

// Repository репозиторий записей живой очереди
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория очереди
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись очереди
func (r *Repository) Create(ctx context.Context, entry *domain.QueueEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			entry.ID,
			entry.ShopID,
			entry.ClientName,
			entry.ServiceID,
			entry.StaffID,
			entry.EstimatedDurationMinutes,
			entry.Status,
			positionValue(entry),
			entry.JoinedAt,
			entry.StartedAt,
			entry.CompletedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает запись очереди по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.QueueEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %w", ErrScanRow, err)
	}
	return entry, nil
}

// GetActiveByShop получает снимок активной очереди магазина (waiting + in-progress).
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы перенумерация
// и смена статуса применялись к неизменному снимку.
func (r *Repository) GetActiveByShop(ctx context.Context, shopID string) ([]domain.QueueEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"shop_id": shopID,
			"status":  []string{string(domain.QueueStatusWaiting), string(domain.QueueStatusInProgress)},
		}).
		OrderBy("position ASC NULLS LAST", "joined_at ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByShop - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.QueueEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveByShop - scan row: %w", ErrScanRow, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByShop - rows error: %w", ErrScanRow, err)
	}

	return entries, nil
}

// ApplyChanges сохраняет изменённое состояние записей (статус, позиция, отметки времени).
// Вызывается внутри транзакции вместе с чтением снимка.
func (r *Repository) ApplyChanges(ctx context.Context, entries []domain.QueueEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for i := range entries {
		entry := &entries[i]

		query, args, err := psqlbuilder.Update(table).
			Set("status", entry.Status).
			Set("position", positionValue(entry)).
			Set("started_at", entry.StartedAt).
			Set("completed_at", entry.CompletedAt).
			Where(squirrel.Eq{"id": entry.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ApplyChanges - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: ApplyChanges - execute update id=%s: %w", ErrExecQuery, entry.ID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: ApplyChanges - get rows affected: %v", ErrExecQuery, err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("%w: id=%s", ErrEntryNotFound, entry.ID)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.QueueEntry, error) {
	var (
		entry    domain.QueueEntry
		position sql.NullInt64
	)

	err := row.Scan(
		&entry.ID,
		&entry.ShopID,
		&entry.ClientName,
		&entry.ServiceID,
		&entry.StaffID,
		&entry.EstimatedDurationMinutes,
		&entry.Status,
		&position,
		&entry.JoinedAt,
		&entry.StartedAt,
		&entry.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	if position.Valid {
		entry.Position = int(position.Int64)
	}
	return &entry, nil
}

// positionValue позиция хранится только для ожидающих записей
func positionValue(entry *domain.QueueEntry) interface{} {
	if !entry.IsWaiting() {
		return nil
	}
	return entry.Position
}
