package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
)

func TestRegisterUser_thenLogin(t *testing.T) {
	us := NewUserService(testDB)

	res, err := us.Register(RegisterUserInput{
		Username: "eve",
		Email:    "eve@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	payload, ok := res.Data.(UserAuthPayload)
	require.True(t, ok)
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "eve", payload.User.Username)
	assert.Empty(t, payload.User.Password)

	claims, err := auth.ValidateToken(payload.Token)
	require.NoError(t, err)
	assert.Equal(t, payload.User.ID, claims.SubjectID)
	assert.Equal(t, model.RoleUser, claims.Role)

	res, err = us.Login("eve@example.com", "secret123")
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestRegisterUser_duplicateEmail(t *testing.T) {
	us := NewUserService(testDB)

	res, err := us.Register(RegisterUserInput{
		Username: "alice2",
		Email:    database.TestUser1.Email,
		Password: "secret123",
	})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "email", res.Errors[0].Field)
	assert.Equal(t, "Email already registered", res.Errors[0].Message)
}

func TestLoginUser_wrongPassword(t *testing.T) {
	us := NewUserService(testDB)

	res, err := us.Login(database.TestUser1.Email, "not-the-password")
	require.NoError(t, err)
	require.False(t, res.Success)
	assert.Equal(t, "password", res.Errors[0].Field)
}

func TestLoginUser_unknownEmail(t *testing.T) {
	us := NewUserService(testDB)

	res, err := us.Login("nobody@example.com", "whatever")
	require.NoError(t, err)
	require.False(t, res.Success)
	assert.Equal(t, "User not found", res.Errors[0].Message)
}

func TestLoginUser_tokenCarriesStoredRole(t *testing.T) {
	us := NewUserService(testDB)

	reg, err := us.Register(RegisterUserInput{
		Username: "modesty",
		Email:    "modesty@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.True(t, reg.Success)
	userID := reg.Data.(UserAuthPayload).User.ID

	// A role changed out of band must flow into the next token.
	require.NoError(t, testDB.Model(&model.User{}).Where("id = ?", userID).Update("role", "moderator").Error)

	res, err := us.Login("modesty@example.com", "secret123")
	require.NoError(t, err)
	require.True(t, res.Success)

	claims, err := auth.ValidateToken(res.Data.(UserAuthPayload).Token)
	require.NoError(t, err)
	assert.Equal(t, "moderator", claims.Role)
}

func TestUpdateProfile_mergesFields(t *testing.T) {
	us := NewUserService(testDB)

	reg, err := us.Register(RegisterUserInput{
		Username: "frank",
		Email:    "frank@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.True(t, reg.Success)
	userID := reg.Data.(UserAuthPayload).User.ID

	res, err := us.UpdateProfile(userID, UpdateProfileInput{PhoneNumber: strPtr("0899999999")})
	require.NoError(t, err)
	require.True(t, res.Success)

	updated := res.Data.(model.User)
	assert.Equal(t, "frank", updated.Username)
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "0899999999", *updated.PhoneNumber)
}

func TestLoginWithGoogle_createsThenFinds(t *testing.T) {
	us := NewUserService(testDB)

	res, created, err := us.LoginWithGoogle("google-sub-123", "grace@example.com", "Grace Hopper")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.True(t, created)

	res, created, err = us.LoginWithGoogle("google-sub-123", "grace@example.com", "Grace Hopper")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.False(t, created)
}
