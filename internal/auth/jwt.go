// Package auth implements the credential service: signed, time-bound access
// tokens carrying the authenticated subject and its role.
package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

var secretKey = os.Getenv("SECRET_KEY")

// JwtIssuer is the issuer claim stamped on every token
const JwtIssuer = "jobportal-backend"

const tokenLifetime = 24 * time.Hour

// ErrInvalidToken is returned for every verification failure: expired,
// malformed, wrong issuer or bad signature. Callers are not told which.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by an access token.
type Claims struct {
	SubjectID uint   `json:"id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed access token for the given principal.
func GenerateToken(subjectID uint, role string) (string, error) {
	return generateTokenWithLifetime(subjectID, role, tokenLifetime)
}

func generateTokenWithLifetime(subjectID uint, role string, lifetime time.Duration) (string, error) {
	claims := Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    JwtIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken parses and verifies an access token and returns its claims.
// Every failure mode collapses into ErrInvalidToken.
func ValidateToken(encodedToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(encodedToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isValid := token.Method.(*jwt.SigningMethodHMAC); !isValid {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Issuer != JwtIssuer {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
