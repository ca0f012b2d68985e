package waitlist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/dbmetrics"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/psqlbuilder"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/types"
)

const table = "waitlist_entries"

var columns = []string{
	"id",
	"shop_id",
	"client_name",
	"service_id",
	"staff_id",
	"preferred_date",
	"preferred_days",
	"time_range_start",
	"time_range_end",
	"status",
	"created_at",
	"notified_at",
	"notified_slot",
}

// Repository репозиторий листа ожидания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория листа ожидания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись листа ожидания
func (r *Repository) Create(ctx context.Context, entry *domain.WaitlistEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slot, err := encodeSlot(entry.NotifiedSlot)
	if err != nil {
		return fmt.Errorf("%w: Create: %v", ErrEncodeSlot, err)
	}

	var rangeStart, rangeEnd *types.TimeString
	if entry.PreferredTimeRange != nil {
		rangeStart = &entry.PreferredTimeRange.Start
		rangeEnd = &entry.PreferredTimeRange.End
	}

	days := entry.PreferredDays
	if days == nil {
		days = []string{}
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			entry.ID,
			entry.ShopID,
			entry.ClientName,
			entry.ServiceID,
			entry.Staff.Raw(),
			entry.PreferredDate,
			pq.Array(days),
			rangeStart,
			rangeEnd,
			entry.Status,
			entry.CreatedAt,
			entry.NotifiedAt,
			slotParam(slot),
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

// GetByID получает запись листа ожидания по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
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

// GetByShop получает записи магазина, старые первыми.
// Опционально фильтрует по статусу.
func (r *Repository) GetByShop(ctx context.Context, shopID string, status *domain.WaitlistStatus) ([]domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("created_at ASC", "id ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShop - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.WaitlistEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByShop - scan row: %w", ErrScanRow, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByShop - rows error: %w", ErrScanRow, err)
	}

	return entries, nil
}

// UpdateStatus сохраняет статус и данные уведомления записей
func (r *Repository) UpdateStatus(ctx context.Context, entries []domain.WaitlistEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for i := range entries {
		entry := &entries[i]

		slot, err := encodeSlot(entry.NotifiedSlot)
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus: %v", ErrEncodeSlot, err)
		}

		query, args, err := psqlbuilder.Update(table).
			Set("status", entry.Status).
			Set("notified_at", entry.NotifiedAt).
			Set("notified_slot", slotParam(slot)).
			Where(squirrel.Eq{"id": entry.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - execute update id=%s: %w", ErrExecQuery, entry.ID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
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

func scanEntry(row rowScanner) (*domain.WaitlistEntry, error) {
	var (
		entry      domain.WaitlistEntry
		staffID    *string
		days       pq.StringArray
		rangeStart sql.NullString
		rangeEnd   sql.NullString
		slot       []byte
	)

	err := row.Scan(
		&entry.ID,
		&entry.ShopID,
		&entry.ClientName,
		&entry.ServiceID,
		&staffID,
		&entry.PreferredDate,
		&days,
		&rangeStart,
		&rangeEnd,
		&entry.Status,
		&entry.CreatedAt,
		&entry.NotifiedAt,
		&slot,
	)
	if err != nil {
		return nil, err
	}

	entry.Staff = domain.ParseStaffPreference(staffID)
	if len(days) > 0 {
		entry.PreferredDays = []string(days)
	}

	if rangeStart.Valid && rangeEnd.Valid {
		var start, end types.TimeString
		if err := start.Scan(rangeStart.String); err != nil {
			return nil, err
		}
		if err := end.Scan(rangeEnd.String); err != nil {
			return nil, err
		}
		entry.PreferredTimeRange = &domain.TimeRange{Start: start, End: end}
	}

	entry.NotifiedSlot, err = decodeSlot(slot)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}
