// Package waitlist reconciles a freed appointment slot against waiting waitlist entries.
package waitlist

import (
	"sort"
	"strings"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/types"
)

// Matches reports whether entry accepts slot. All checks are conjunctive.
func Matches(entry *domain.WaitlistEntry, slot domain.FreedSlot) bool {
	if !entry.IsWaiting() {
		return false
	}
	return matchService(entry, slot) &&
		entry.Staff.Accepts(slot.StaffID) &&
		matchDate(entry, slot) &&
		matchTime(entry, slot)
}

// FindMatches returns the entries accepting slot, oldest request first.
// Entries created at the same instant keep their input order.
func FindMatches(entries []domain.WaitlistEntry, slot domain.FreedSlot) []domain.WaitlistEntry {
	matched := make([]domain.WaitlistEntry, 0)
	for i := range entries {
		if Matches(&entries[i], slot) {
			matched = append(matched, entries[i])
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	return matched
}

func matchService(entry *domain.WaitlistEntry, slot domain.FreedSlot) bool {
	if entry.ServiceID == nil || slot.ServiceID == nil {
		return true
	}
	return *entry.ServiceID == *slot.ServiceID
}

// matchDate: an exact preferred date wins over the weekday set.
func matchDate(entry *domain.WaitlistEntry, slot domain.FreedSlot) bool {
	if slot.Date == nil {
		return true
	}

	if entry.PreferredDate != nil {
		return types.SameDate(*entry.PreferredDate, *slot.Date)
	}

	if len(entry.PreferredDays) > 0 {
		weekday := slot.WeekdayName()
		for _, day := range entry.PreferredDays {
			if strings.EqualFold(strings.TrimSpace(day), weekday) {
				return true
			}
		}
		return false
	}

	return true
}

func matchTime(entry *domain.WaitlistEntry, slot domain.FreedSlot) bool {
	if slot.Time == nil || entry.PreferredTimeRange == nil {
		return true
	}
	return entry.PreferredTimeRange.Contains(*slot.Time)
}
