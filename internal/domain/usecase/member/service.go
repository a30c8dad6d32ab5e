package member

import (
	"context"

	"github.com/stakeway/backoffice/internal/domain/entity"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/domain/port/persistence"
)

// Service exposes member administration: listing, lookup by username and
// profile edits. Balance movements are never done here; they belong to the
// commission distributor and the settlement services.
type Service struct {
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewService creates a member administration service
func NewService(userRepo persistence.UserRepository, logger coreport.Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List returns all members
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	return s.userRepo.List(ctx)
}

// Get returns one member by ID
func (s *Service) Get(ctx context.Context, id uint64) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByUsername returns one member by unique username
func (s *Service) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// Update persists profile edits for one member
func (s *Service) Update(ctx context.Context, user *entity.User) error {
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User updated", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}
