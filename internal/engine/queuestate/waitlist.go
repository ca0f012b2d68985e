package queuestate

import (
	"fmt"
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// Notify marks a waiting waitlist entry as notified, optionally recording the offered slot
func Notify(entry domain.WaitlistEntry, now time.Time, slot *domain.FreedSlot) (domain.WaitlistEntry, error) {
	if entry.Status != domain.WaitlistStatusWaiting {
		return entry, fmt.Errorf("%w: notify requires status %s, entry id=%s is %s",
			ErrInvalidTransition, domain.WaitlistStatusWaiting, entry.ID, entry.Status)
	}

	notifiedAt := now
	entry.Status = domain.WaitlistStatusNotified
	entry.NotifiedAt = &notifiedAt
	if slot != nil {
		offered := *slot
		entry.NotifiedSlot = &offered
	}
	return entry, nil
}

// NotifyBulk notifies every entry named in ids. Either all of them change or none does.
func NotifyBulk(entries []domain.WaitlistEntry, ids []string, now time.Time, slot *domain.FreedSlot) ([]domain.WaitlistEntry, error) {
	byID := make(map[string]int, len(entries))
	for i := range entries {
		byID[entries[i].ID] = i
	}

	notified := make([]domain.WaitlistEntry, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		idx, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%s", ErrEntryNotFound, id)
		}
		updated, err := Notify(entries[idx], now, slot)
		if err != nil {
			return nil, err
		}
		notified = append(notified, updated)
	}
	return notified, nil
}

// Expire removes an entry from the waitlist. Allowed from waiting and notified.
func Expire(entry domain.WaitlistEntry) (domain.WaitlistEntry, error) {
	if entry.Status != domain.WaitlistStatusWaiting && entry.Status != domain.WaitlistStatusNotified {
		return entry, fmt.Errorf("%w: expire is not allowed from %s, entry id=%s",
			ErrInvalidTransition, entry.Status, entry.ID)
	}
	entry.Status = domain.WaitlistStatusExpired
	return entry, nil
}

// Book records that a notified client took the offered slot
func Book(entry domain.WaitlistEntry) (domain.WaitlistEntry, error) {
	if entry.Status != domain.WaitlistStatusNotified {
		return entry, fmt.Errorf("%w: book requires status %s, entry id=%s is %s",
			ErrInvalidTransition, domain.WaitlistStatusNotified, entry.ID, entry.Status)
	}
	entry.Status = domain.WaitlistStatusBooked
	return entry, nil
}
