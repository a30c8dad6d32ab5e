package dto

import (
	"time"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// NotificationRequest represents a notification create or update
type NotificationRequest struct {
	Message     string `json:"message" binding:"required"`
	IsImportant bool   `json:"isImportant"`
}

// NotificationResponse represents one published notification
type NotificationResponse struct {
	ID          uint64    `json:"id"`
	Message     string    `json:"message"`
	IsImportant bool      `json:"isImportant"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToNotificationResponse maps a notification entity to its API representation
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Message:     n.Message,
		IsImportant: n.IsImportant,
		CreatedAt:   n.CreatedAt,
	}
}

// ToNotificationResponses maps a list of notification entities
func ToNotificationResponses(ns []*entity.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		responses = append(responses, ToNotificationResponse(n))
	}
	return responses
}

// TermsRequest represents a terms-and-conditions replacement
type TermsRequest struct {
	Paragraph string `json:"paragraph" binding:"required"`
}

// TermsResponse represents the current terms document
type TermsResponse struct {
	Paragraph string    `json:"paragraph"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatsRequest represents a platform stats replacement
type StatsRequest struct {
	TokenValue            float64 `json:"tokenValue"`
	TotalInvestment       float64 `json:"totalInvestment"`
	ProfitPercent         float64 `json:"profitPercent"`
	ActiveUsers           int64   `json:"activeUsers"`
	TokenDescription      string  `json:"tokenDescription"`
	InvestmentDescription string  `json:"investmentDescription"`
	ProfitDescription     string  `json:"profitDescription"`
	UsersDescription      string  `json:"usersDescription"`
}

// StatsResponse represents the current platform stats document
type StatsResponse struct {
	TokenValue            float64   `json:"tokenValue"`
	TotalInvestment       float64   `json:"totalInvestment"`
	ProfitPercent         float64   `json:"profitPercent"`
	ActiveUsers           int64     `json:"activeUsers"`
	TokenDescription      string    `json:"tokenDescription"`
	InvestmentDescription string    `json:"investmentDescription"`
	ProfitDescription     string    `json:"profitDescription"`
	UsersDescription      string    `json:"usersDescription"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// ToStatsResponse maps a stats entity to its API representation
func ToStatsResponse(s *entity.PlatformStats) StatsResponse {
	return StatsResponse{
		TokenValue:            s.TokenValue,
		TotalInvestment:       s.TotalInvestment,
		ProfitPercent:         s.ProfitPercent,
		ActiveUsers:           s.ActiveUsers,
		TokenDescription:      s.TokenDescription,
		InvestmentDescription: s.InvestmentDescription,
		ProfitDescription:     s.ProfitDescription,
		UsersDescription:      s.UsersDescription,
		UpdatedAt:             s.UpdatedAt,
	}
}

// RateResponse represents the cached USD to INR rate
type RateResponse struct {
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"updatedAt"`
}
