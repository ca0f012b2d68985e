package models

import (
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// JoinRequest запрос на постановку клиента в живую очередь
type JoinRequest struct {
	ClientName               string  `json:"clientName"`
	ServiceID                *string `json:"serviceId,omitempty"`
	StaffID                  *string `json:"staffId,omitempty"`
	EstimatedDurationMinutes int     `json:"estimatedDurationMinutes,omitempty"`
}

// EntryResponse запись очереди
type EntryResponse struct {
	ID                       string     `json:"id"`
	ShopID                   string     `json:"shopId"`
	ClientName               string     `json:"clientName"`
	ServiceID                *string    `json:"serviceId,omitempty"`
	StaffID                  *string    `json:"staffId,omitempty"`
	EstimatedDurationMinutes int        `json:"estimatedDurationMinutes"`
	Status                   string     `json:"status"`
	Position                 *int       `json:"position,omitempty"`
	JoinedAt                 time.Time  `json:"joinedAt"`
	StartedAt                *time.Time `json:"startedAt,omitempty"`
	CompletedAt              *time.Time `json:"completedAt,omitempty"`
	EstimatedWaitMinutes     *int       `json:"estimatedWaitMinutes,omitempty"`
}

// BoardResponse текущее состояние очереди магазина с оценками ожидания
type BoardResponse struct {
	ShopID                string          `json:"shopId"`
	ServerCount           int             `json:"serverCount"`
	Waiting               []EntryResponse `json:"waiting"`
	InProgress            []EntryResponse `json:"inProgress"`
	NewArrivalWaitMinutes int             `json:"newArrivalWaitMinutes"`
}

// FromDomainEntry конвертирует domain модель в response
func FromDomainEntry(entry *domain.QueueEntry) *EntryResponse {
	resp := &EntryResponse{
		ID:                       entry.ID,
		ShopID:                   entry.ShopID,
		ClientName:               entry.ClientName,
		ServiceID:                entry.ServiceID,
		StaffID:                  entry.StaffID,
		EstimatedDurationMinutes: entry.EstimatedDurationMinutes,
		Status:                   string(entry.Status),
		JoinedAt:                 entry.JoinedAt,
		StartedAt:                entry.StartedAt,
		CompletedAt:              entry.CompletedAt,
	}
	if entry.IsWaiting() {
		position := entry.Position
		resp.Position = &position
	}
	return resp
}

// FromDomainEntries конвертирует список записей, добавляя оценку ожидания если она есть
func FromDomainEntries(entries []domain.QueueEntry, waits map[string]int) []EntryResponse {
	result := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		resp := FromDomainEntry(&entries[i])
		if wait, ok := waits[entries[i].ID]; ok {
			w := wait
			resp.EstimatedWaitMinutes = &w
		}
		result = append(result, *resp)
	}
	return result
}
