package domain

import (
	"strings"
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/pkg/types"
)

// WaitlistStatus represents the lifecycle state of a waitlist entry
type WaitlistStatus string

const (
	WaitlistStatusWaiting  WaitlistStatus = "waiting"
	WaitlistStatusNotified WaitlistStatus = "notified"
	WaitlistStatusBooked   WaitlistStatus = "booked"
	WaitlistStatusExpired  WaitlistStatus = "expired"
)

// WaitlistEntry represents a client waiting for an appointment slot to free up.
// PreferredDate, when set, takes precedence over PreferredDays.
type WaitlistEntry struct {
	ID                 string
	ShopID             string
	ClientName         string
	ServiceID          *string
	Staff              StaffPreference
	PreferredDate      *time.Time
	PreferredDays      []string
	PreferredTimeRange *TimeRange
	Status             WaitlistStatus
	CreatedAt          time.Time
	NotifiedAt         *time.Time
	NotifiedSlot       *FreedSlot
}

// IsWaiting returns true if the entry can still be matched
func (e *WaitlistEntry) IsWaiting() bool {
	return e.Status == WaitlistStatusWaiting
}

// IsTerminal returns true for booked and expired entries
func (e *WaitlistEntry) IsTerminal() bool {
	return e.Status == WaitlistStatusBooked || e.Status == WaitlistStatusExpired
}

// IsValidWaitlistStatus validates a raw status value
func IsValidWaitlistStatus(s string) bool {
	switch WaitlistStatus(s) {
	case WaitlistStatusWaiting, WaitlistStatusNotified, WaitlistStatusBooked, WaitlistStatusExpired:
		return true
	}
	return false
}

// FreedSlot is an appointment slot that became available after a cancellation or rejection.
// Every field is optional; an absent field does not constrain matching.
type FreedSlot struct {
	Date      *time.Time
	Time      *types.TimeString
	StaffID   *string
	ServiceID *string
}

// WeekdayName returns the lower-case weekday of the slot date, or "" without a date
func (s FreedSlot) WeekdayName() string {
	if s.Date == nil {
		return ""
	}
	return strings.ToLower(s.Date.Weekday().String())
}
