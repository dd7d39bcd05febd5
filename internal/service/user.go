package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"
)

// UserService wraps user registration, login and profile access.
type UserService struct {
	DB *database.DBinstanceStruct
}

// NewUserService creates a new UserService with the provided database connection.
func NewUserService(db *database.DBinstanceStruct) *UserService {
	return &UserService{DB: db}
}

// RegisterUserInput is the payload accepted by Register.
type RegisterUserInput struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	PhoneNumber *string `json:"phoneNumber"`
}

// UserAuthPayload is the data returned by successful user registration or login.
type UserAuthPayload struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// UpdateProfileInput carries the profile fields a user may change.
type UpdateProfileInput struct {
	Username    string  `json:"username"`
	PhoneNumber *string `json:"phoneNumber"`
}

// Register creates a user account. The email must not belong to an existing
// user; the password is hashed before persisting and never echoed back.
func (s *UserService) Register(in RegisterUserInput) (Result, error) {
	var existing model.User
	err := s.DB.Where("email = ?", in.Email).First(&existing).Error
	switch {
	case err == nil:
		return FailField("email", "Email already registered"), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing
	default:
		return Result{}, err
	}

	hashed, err := utilities.HashPassword(in.Password)
	if err != nil {
		return Result{}, err
	}

	user := model.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    hashed,
		PhoneNumber: in.PhoneNumber,
		Role:        model.RoleUser,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return FailField(uniqueUserField(err), "Already registered"), nil
		}
		return Result{}, err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return Result{}, err
	}

	return Ok(UserAuthPayload{Token: token, User: user}), nil
}

// Login verifies credentials against a stored user and issues a token
// carrying the role recorded on the account.
func (s *UserService) Login(email, password string) (Result, error) {
	var user model.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return FailField("email", "User not found"), nil
	case err != nil:
		return Result{}, err
	}

	if user.Password == "" || !utilities.VerifyPassword(password, user.Password) {
		return FailField("password", "Invalid password"), nil
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return Result{}, err
	}

	return Ok(UserAuthPayload{Token: token, User: user}), nil
}

// LoginWithGoogle finds or creates the account matching a verified Google
// identity and issues the same role-bearing token as a password login.
// Created is true when a fresh account was provisioned.
func (s *UserService) LoginWithGoogle(googleID, email, name string) (Result, bool, error) {
	var user model.User
	err := s.DB.Where("google_id = ?", googleID).First(&user).Error

	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		username := strings.TrimSpace(name)
		if len(username) < 3 {
			// fall back to the mailbox name so the username constraint holds
			username = strings.SplitN(email, "@", 2)[0]
		}
		user = model.User{
			Username: username,
			Email:    email,
			GoogleID: googleID,
			Role:     model.RoleUser,
		}
		if err := s.DB.Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				user.Username = fmt.Sprintf("%s-%s", username, googleID[:min(6, len(googleID))])
				if err := s.DB.Create(&user).Error; err != nil {
					return Result{}, false, err
				}
			} else {
				return Result{}, false, err
			}
		}
		created = true
	case err != nil:
		return Result{}, false, err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return Result{}, false, err
	}

	return Ok(UserAuthPayload{Token: token, User: user}), created, nil
}

// GetProfile returns the stored profile of a user. The password digest is
// excluded by the model's JSON mapping.
func (s *UserService) GetProfile(userID uint) (Result, error) {
	var user model.User
	err := s.DB.Where("id = ?", userID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return FailField("user", "Profile not found"), nil
	case err != nil:
		return Result{}, err
	}

	return Ok(user), nil
}

// UpdateProfile merges the non-empty fields of in into the stored profile.
func (s *UserService) UpdateProfile(userID uint, in UpdateProfileInput) (Result, error) {
	var user model.User
	err := s.DB.Where("id = ?", userID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return FailField("user", "User not found"), nil
	case err != nil:
		return Result{}, err
	}

	if in.Username != "" {
		user.Username = in.Username
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = in.PhoneNumber
	}

	if err := s.DB.Save(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return FailField(uniqueUserField(err), "Already registered"), nil
		}
		return Result{}, err
	}

	return Ok(user), nil
}

// uniqueUserField maps a unique constraint violation on the users table back
// to the request field it belongs to.
func uniqueUserField(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "username"):
		return "username"
	case strings.Contains(msg, "phone"):
		return "phoneNumber"
	default:
		return "email"
	}
}
