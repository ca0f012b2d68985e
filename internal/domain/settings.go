package domain

import "time"

// ShopSettings holds per-shop queue parameters
type ShopSettings struct {
	ShopID                 string
	ServerCount            int
	DefaultDurationMinutes int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DefaultShopSettings returns settings used when a shop has not configured anything
func DefaultShopSettings(shopID string) *ShopSettings {
	return &ShopSettings{
		ShopID:                 shopID,
		ServerCount:            DefaultServerCount,
		DefaultDurationMinutes: DefaultDurationMinutes,
	}
}

// SupportsParallelService returns true if more than one client can be served at once
func (s *ShopSettings) SupportsParallelService() bool {
	return s.ServerCount > 1
}
