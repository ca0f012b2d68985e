package waitlist

import (
	"fmt"
	"strings"
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/types"
)

// ParseSlot проверяет и конвертирует слот из запроса
func ParseSlot(req *models.SlotRequest) (domain.FreedSlot, error) {
	var slot domain.FreedSlot
	if req == nil {
		return slot, nil
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return slot, fmt.Errorf("%w: slot date must be YYYY-MM-DD", ErrInvalidInput)
		}
		slot.Date = &date
	}
	if req.Time != nil {
		t, err := types.NewTimeStringFromString(*req.Time)
		if err != nil {
			return slot, fmt.Errorf("%w: slot time must be HH:MM", ErrInvalidInput)
		}
		slot.Time = &t
	}
	slot.StaffID = nonEmpty(req.StaffID)
	slot.ServiceID = nonEmpty(req.ServiceID)
	return slot, nil
}

// buildEntry проверяет запрос и собирает новую запись листа ожидания
func buildEntry(shopID string, req *models.JoinRequest) (domain.WaitlistEntry, error) {
	var entry domain.WaitlistEntry

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return entry, fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return entry, fmt.Errorf("%w: clientName is longer than %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	entry.ShopID = shopID
	entry.ClientName = name
	entry.ServiceID = nonEmpty(req.ServiceID)
	entry.Staff = domain.ParseStaffPreference(nonEmpty(req.StaffID))

	if req.PreferredDate != nil {
		date, err := time.Parse(domain.DateFormat, *req.PreferredDate)
		if err != nil {
			return entry, fmt.Errorf("%w: preferredDate must be YYYY-MM-DD", ErrInvalidInput)
		}
		entry.PreferredDate = &date
	}

	if len(req.PreferredDays) > 0 {
		seen := make(map[string]bool, len(req.PreferredDays))
		days := make([]string, 0, len(req.PreferredDays))
		for _, d := range req.PreferredDays {
			day := strings.ToLower(strings.TrimSpace(d))
			if !domain.IsWeekdayName(day) {
				return entry, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, d)
			}
			if !seen[day] {
				seen[day] = true
				days = append(days, day)
			}
		}
		entry.PreferredDays = days
	}

	if req.PreferredTimeRange != nil {
		start, err := types.NewTimeStringFromString(req.PreferredTimeRange.Start)
		if err != nil {
			return entry, fmt.Errorf("%w: preferredTimeRange.start must be HH:MM", ErrInvalidInput)
		}
		end, err := types.NewTimeStringFromString(req.PreferredTimeRange.End)
		if err != nil {
			return entry, fmt.Errorf("%w: preferredTimeRange.end must be HH:MM", ErrInvalidInput)
		}
		if end.IsBefore(start) {
			return entry, fmt.Errorf("%w: preferredTimeRange.end is before start", ErrInvalidInput)
		}
		entry.PreferredTimeRange = &domain.TimeRange{Start: start, End: end}
	}

	return entry, nil
}

func parseStatus(raw *string) (*domain.WaitlistStatus, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if !domain.IsValidWaitlistStatus(*raw) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *raw)
	}
	status := domain.WaitlistStatus(*raw)
	return &status, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
