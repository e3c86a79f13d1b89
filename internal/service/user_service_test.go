package service

import (
	"testing"

	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/dharunks/insightiq/internal/dto"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// dupUserRepo simulates the unique-index violation the postgres driver
// reports (translated to gorm.ErrDuplicatedKey by the connection's
// TranslateError setting).
type dupUserRepo struct {
	*fakeUserRepo
}

func (r *dupUserRepo) Create(user *model.User) error {
	return gorm.ErrDuplicatedKey
}

func TestRegisterUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	resp, err := svc.Register(dto.UserCreateDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "alice", resp.Username)
}

func TestRegisterDuplicateUserIsValidationError(t *testing.T) {
	svc := NewUserService(&dupUserRepo{newFakeUserRepo()})

	_, err := svc.Register(dto.UserCreateDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetUser(42)
	assert.True(t, apperr.IsNotFound(err))
}
