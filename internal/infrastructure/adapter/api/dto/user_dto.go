package dto

import (
	"time"

	"github.com/stakeway/backoffice/internal/domain/entity"
)

// UpdateUserRequest represents an admin profile edit. Balances are not
// editable here; they only move through approvals and settlements.
type UpdateUserRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Sponsor     string `json:"sponsor"`
	Level       *int   `json:"level"`
}

// UserResponse represents one platform member
type UserResponse struct {
	ID            uint64    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	Sponsor       string    `json:"sponsor"`
	Referrals     []string  `json:"referrals"`
	Level         int       `json:"level"`
	Wallet        string    `json:"wallet"`
	WalletRecord  string    `json:"walletRecord"`
	TotalInvested string    `json:"totalInvested"`
	TokenWallet   float64   `json:"tokenWallet"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUserResponse maps a user entity to its API representation
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		Sponsor:       user.Sponsor,
		Referrals:     user.Referrals,
		Level:         user.Level,
		Wallet:        entity.CentsToAmount(user.Wallet()),
		WalletRecord:  entity.CentsToAmount(user.WalletRecord()),
		TotalInvested: entity.CentsToAmount(user.TotalInvested()),
		TokenWallet:   user.TokenWallet,
		CreatedAt:     user.CreatedAt,
	}
}

// ToUserResponses maps a list of user entities
func ToUserResponses(users []*entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}
