package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"jobportal-backend/internal/service"
)

// GoogleUserInfo is the subset of Google's userinfo response the login flow
// needs.
type GoogleUserInfo struct {
	GID       string `json:"sub"`
	Email     string `json:"email"`
	FirstName string `json:"given_name"`
	LastName  string `json:"family_name"`
}

// GoogleLoginController exchanges a Google authorization code for an
// application token, creating the account on first login. The OAuth config
// and userinfo endpoint are injected so tests can point them at a stub.
type GoogleLoginController struct {
	Users            *service.UserService
	OauthConfig      *oauth2.Config
	UserInfoEndpoint string
}

// NewGoogleLoginController creates a new GoogleLoginController with the
// provided user service and OAuth configuration.
func NewGoogleLoginController(users *service.UserService, oauthConfig *oauth2.Config, userInfoEndpoint string) *GoogleLoginController {
	return &GoogleLoginController{
		Users:            users,
		OauthConfig:      oauthConfig,
		UserInfoEndpoint: userInfoEndpoint,
	}
}

// DefaultGoogleOauthConfig builds the production OAuth config from
// GOOGLE_AUTH_CLIENT, GOOGLE_AUTH_SECRET and GOOGLE_AUTH_REDIRECT_URL.
func DefaultGoogleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_AUTH_CLIENT"),
		ClientSecret: os.Getenv("GOOGLE_AUTH_SECRET"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint:    google.Endpoint,
		RedirectURL: os.Getenv("GOOGLE_AUTH_REDIRECT_URL"),
	}
}

// GoogleUserInfoEndpoint is Google's OpenID Connect userinfo endpoint.
const GoogleUserInfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"

func (gc *GoogleLoginController) getUserInfo(c *gin.Context) (GoogleUserInfo, error) {
	var uInfo GoogleUserInfo

	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, service.FailField("code", "No authorization code provided"))
		return uInfo, err
	}

	token, err := gc.OauthConfig.Exchange(context.Background(), body.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.FailField("code", fmt.Sprintf("Failed to receive token: %s", err.Error())))
		return uInfo, err
	}

	client := gc.OauthConfig.Client(context.Background(), token)
	resp, err := client.Get(gc.UserInfoEndpoint)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.FailField("code", fmt.Sprintf("Failed to fetch user information: %s", err.Error())))
		return uInfo, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadRequest, service.FailField("code", fmt.Sprintf("Failed to fetch user information: status=%d", resp.StatusCode)))
		return uInfo, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&uInfo); err != nil {
		c.JSON(http.StatusBadRequest, service.FailField("code", fmt.Sprintf("Failed to decode user info: %s", err.Error())))
		return uInfo, err
	}
	return uInfo, nil
}

// Login handles POST /api/auth/google. A first-time identity answers 201,
// a returning one 200; both carry the usual auth payload.
func (gc *GoogleLoginController) Login(c *gin.Context) {
	uInfo, err := gc.getUserInfo(c)
	if err != nil {
		return
	}

	name := uInfo.FirstName
	if uInfo.LastName != "" {
		name = uInfo.FirstName + " " + uInfo.LastName
	}

	res, created, err := gc.Users.LoginWithGoogle(uInfo.GID, uInfo.Email, name)
	if err != nil {
		serverError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeResult(c, res, status, http.StatusBadRequest)
}
