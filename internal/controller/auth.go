package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/metrics"
	"jobportal-backend/internal/middleware"
	"jobportal-backend/internal/service"
)

// AuthController handles user registration, login and profile endpoints.
type AuthController struct {
	Users *service.UserService
}

// NewAuthController creates a new instance of AuthController with the provided user service.
func NewAuthController(users *service.UserService) *AuthController {
	return &AuthController{Users: users}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user account and returns it with a fresh token.
func (ac *AuthController) Register(c *gin.Context) {
	var in service.RegisterUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}

	if errs := service.ValidateRegisterUser(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	res, err := ac.Users.Register(in)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusCreated, http.StatusBadRequest)
}

// Login verifies user credentials and returns a token.
func (ac *AuthController) Login(c *gin.Context) {
	var in loginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}

	if errs := service.ValidateLogin(in.Email, in.Password); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	metrics.AuthAttemptsCounter.Inc()

	res, err := ac.Users.Login(in.Email, in.Password)
	if err != nil {
		serverError(c, err)
		return
	}
	if res.Success {
		metrics.AuthSuccessCounter.Inc()
	}

	writeResult(c, res, http.StatusOK, http.StatusUnauthorized)
}

// GetProfile returns the authenticated user's stored profile.
func (ac *AuthController) GetProfile(c *gin.Context) {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, service.FailField("authorization", err.Error()))
		return
	}

	res, err := ac.Users.GetProfile(principal.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	writeResult(c, res, http.StatusOK, http.StatusNotFound)
}

// UpdateProfile merges the supplied fields into the authenticated user's profile.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, service.FailField("authorization", err.Error()))
		return
	}

	var in service.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c, err)
		return
	}

	if errs := service.ValidateUpdateProfile(in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, service.Fail(errs...))
		return
	}

	res, err := ac.Users.UpdateProfile(principal.ID, in)
	if err != nil {
		serverError(c, err)
		return
	}

	// The account behind a still-valid token may have been removed.
	failStatus := http.StatusBadRequest
	if !res.Success && len(res.Errors) > 0 && res.Errors[0].Field == "user" {
		failStatus = http.StatusNotFound
	}
	writeResult(c, res, http.StatusOK, failStatus)
}
