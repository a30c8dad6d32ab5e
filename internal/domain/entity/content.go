package entity

import "time"

// Notification is an admin-published announcement shown to platform users
type Notification struct {
	ID          uint64
	Message     string
	IsImportant bool
	CreatedAt   time.Time
}

// Terms is the single terms-and-conditions document (upserted, never listed)
type Terms struct {
	ID        uint64
	Paragraph string
	UpdatedAt time.Time
}

// PlatformStats is the single marketing stats document shown on the home page
type PlatformStats struct {
	ID                    uint64
	TokenValue            float64
	TotalInvestment       float64
	ProfitPercent         float64
	ActiveUsers           int64
	TokenDescription      string
	InvestmentDescription string
	ProfitDescription     string
	UsersDescription      string
	UpdatedAt             time.Time
}

// UsdRate is the cached USD to INR conversion rate, refreshed on demand from
// an external rate source
type UsdRate struct {
	ID        uint64
	Rate      float64
	UpdatedAt time.Time
}
