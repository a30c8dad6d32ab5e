package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stakeway/backoffice/internal/domain/entity"
	errs "github.com/stakeway/backoffice/internal/domain/error"
	"github.com/stakeway/backoffice/mocks/port/core"
	"github.com/stakeway/backoffice/mocks/port/persistence"
)

func TestService_GetByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the member", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		expected := &entity.User{ID: 7, Username: "alice"}
		mockUserRepo.On("GetByUsername", ctx, "alice").Return(expected, nil)

		service := NewService(mockUserRepo, mockLogger)

		// Act
		user, err := service.GetByUsername(ctx, "alice")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, user)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should return not found for an unknown username", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByUsername", ctx, "ghost").Return(nil, errs.ErrUserNotFound)

		service := NewService(mockUserRepo, mockLogger)

		// Act
		user, err := service.GetByUsername(ctx, "ghost")

		// Assert
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, user)
		mockUserRepo.AssertExpectations(t)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist profile edits", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		user := &entity.User{ID: 7, Username: "alice", Email: "alice@example.com"}
		mockUserRepo.On("Update", ctx, user).Return(nil)
		mockLogger.On("Info", "User updated", mock.AnythingOfType("map[string]interface {}")).Return()

		service := NewService(mockUserRepo, mockLogger)

		// Act
		err := service.Update(ctx, user)

		// Assert
		assert.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should return repository errors without logging", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockLogger := new(core.MockLogger)

		user := &entity.User{ID: 7, Username: "alice"}
		mockUserRepo.On("Update", ctx, user).Return(errs.ErrDatabaseConnection)

		service := NewService(mockUserRepo, mockLogger)

		// Act
		err := service.Update(ctx, user)

		// Assert
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		mockLogger.AssertNotCalled(t, "Info", mock.Anything, mock.Anything)
		mockUserRepo.AssertExpectations(t)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	// Arrange
	mockUserRepo := new(persistence.MockUserRepository)
	mockLogger := new(core.MockLogger)

	users := []*entity.User{
		{ID: 1, Username: "root"},
		{ID: 7, Username: "alice"},
	}
	mockUserRepo.On("List", ctx).Return(users, nil)

	service := NewService(mockUserRepo, mockLogger)

	// Act
	got, err := service.List(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, users, got)
	mockUserRepo.AssertExpectations(t)
}
