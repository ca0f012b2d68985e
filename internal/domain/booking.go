package domain

import (
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/pkg/types"
)

// BookingStatus represents the status of an appointment booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// Booking represents an appointment as stored by the shop
type Booking struct {
	ID              int64
	ShopID          string
	ClientName      string
	ServiceID       *string
	StaffID         *string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeReleased returns true if cancelling or rejecting the booking frees its slot
func (b *Booking) CanBeReleased() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// IsReleased returns true if the booking was cancelled or rejected
func (b *Booking) IsReleased() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusRejected
}

// FreedSlot derives the slot a released booking leaves behind
func (b *Booking) FreedSlot() FreedSlot {
	slot := FreedSlot{
		StaffID:   b.StaffID,
		ServiceID: b.ServiceID,
	}
	if !b.BookingDate.IsZero() {
		date := b.BookingDate
		slot.Date = &date
	}
	if b.StartTime != "" {
		start := b.StartTime
		slot.Time = &start
	}
	return slot
}
