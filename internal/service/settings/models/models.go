package models

import (
	"time"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек магазина
// Поддерживает частичное обновление
type UpdateSettingsRequest struct {
	ServerCount            *int `json:"serverCount,omitempty"`
	DefaultDurationMinutes *int `json:"defaultDurationMinutes,omitempty"`
}

// ApplyToSettings применяет обновления к настройкам
func (r *UpdateSettingsRequest) ApplyToSettings(settings *domain.ShopSettings) {
	if r.ServerCount != nil {
		settings.ServerCount = *r.ServerCount
	}
	if r.DefaultDurationMinutes != nil {
		settings.DefaultDurationMinutes = *r.DefaultDurationMinutes
	}
}

// SettingsResponse ответ с настройками магазина
type SettingsResponse struct {
	ShopID                 string     `json:"shopId"`
	ServerCount            int        `json:"serverCount"`
	DefaultDurationMinutes int        `json:"defaultDurationMinutes"`
	IsDefault              bool       `json:"isDefault"`
	UpdatedAt              *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует domain модель в response
func FromDomainSettings(settings *domain.ShopSettings, isDefault bool) *SettingsResponse {
	resp := &SettingsResponse{
		ShopID:                 settings.ShopID,
		ServerCount:            settings.ServerCount,
		DefaultDurationMinutes: settings.DefaultDurationMinutes,
		IsDefault:              isDefault,
	}
	if !settings.UpdatedAt.IsZero() {
		updatedAt := settings.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
