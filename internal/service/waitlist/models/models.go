package models

import (
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// Request модели

// TimeRangeRequest желаемый интервал времени "HH:MM"-"HH:MM"
type TimeRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// JoinRequest запрос на запись в лист ожидания
// staffId "any" означает любого мастера, preferredDate имеет приоритет над preferredDays
type JoinRequest struct {
	ClientName         string            `json:"clientName"`
	ServiceID          *string           `json:"serviceId,omitempty"`
	StaffID            *string           `json:"staffId,omitempty"`
	PreferredDate      *string           `json:"preferredDate,omitempty"`
	PreferredDays      []string          `json:"preferredDays,omitempty"`
	PreferredTimeRange *TimeRangeRequest `json:"preferredTimeRange,omitempty"`
}

// SlotRequest освободившийся слот, все поля опциональны
type SlotRequest struct {
	Date      *string `json:"date,omitempty"` // "2024-05-01"
	Time      *string `json:"time,omitempty"` // "10:00"
	StaffID   *string `json:"staffId,omitempty"`
	ServiceID *string `json:"serviceId,omitempty"`
}

// NotifyBulkRequest запрос на уведомление нескольких записей сразу
type NotifyBulkRequest struct {
	EntryIDs []string     `json:"entryIds"`
	Slot     *SlotRequest `json:"slot,omitempty"`
}

// Response модели

// TimeRangeResponse интервал времени
type TimeRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotResponse слот
type SlotResponse struct {
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	StaffID   *string `json:"staffId,omitempty"`
	ServiceID *string `json:"serviceId,omitempty"`
}

// EntryResponse запись листа ожидания
type EntryResponse struct {
	ID                 string             `json:"id"`
	ShopID             string             `json:"shopId"`
	ClientName         string             `json:"clientName"`
	ServiceID          *string            `json:"serviceId,omitempty"`
	StaffID            *string            `json:"staffId,omitempty"`
	PreferredDate      *string            `json:"preferredDate,omitempty"`
	PreferredDays      []string           `json:"preferredDays,omitempty"`
	PreferredTimeRange *TimeRangeResponse `json:"preferredTimeRange,omitempty"`
	Status             string             `json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`
	NotifiedAt         *time.Time         `json:"notifiedAt,omitempty"`
	NotifiedSlot       *SlotResponse      `json:"notifiedSlot,omitempty"`
}

// MatchesResponse записи, подходящие под слот, старые первыми
type MatchesResponse struct {
	Slot    SlotResponse    `json:"slot"`
	Matches []EntryResponse `json:"matches"`
}

// FromDomainSlot конвертирует domain модель слота в response
func FromDomainSlot(slot domain.FreedSlot) SlotResponse {
	resp := SlotResponse{
		StaffID:   slot.StaffID,
		ServiceID: slot.ServiceID,
	}
	if slot.Date != nil {
		d := slot.Date.Format(domain.DateFormat)
		resp.Date = &d
	}
	if slot.Time != nil {
		t := slot.Time.String()
		resp.Time = &t
	}
	return resp
}

// FromDomainEntry конвертирует domain модель в response
func FromDomainEntry(entry *domain.WaitlistEntry) *EntryResponse {
	resp := &EntryResponse{
		ID:            entry.ID,
		ShopID:        entry.ShopID,
		ClientName:    entry.ClientName,
		ServiceID:     entry.ServiceID,
		StaffID:       entry.Staff.Raw(),
		PreferredDays: entry.PreferredDays,
		Status:        string(entry.Status),
		CreatedAt:     entry.CreatedAt,
		NotifiedAt:    entry.NotifiedAt,
	}
	if entry.PreferredDate != nil {
		d := entry.PreferredDate.Format(domain.DateFormat)
		resp.PreferredDate = &d
	}
	if entry.PreferredTimeRange != nil {
		resp.PreferredTimeRange = &TimeRangeResponse{
			Start: entry.PreferredTimeRange.Start.String(),
			End:   entry.PreferredTimeRange.End.String(),
		}
	}
	if entry.NotifiedSlot != nil {
		slot := FromDomainSlot(*entry.NotifiedSlot)
		resp.NotifiedSlot = &slot
	}
	return resp
}

// FromDomainEntries конвертирует список записей
func FromDomainEntries(entries []domain.WaitlistEntry) []EntryResponse {
	result := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *FromDomainEntry(&entries[i]))
	}
	return result
}
