package token

import (
	"errors"
	"time"

	"eventsync/internal/shared/config"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Pair carries an access/refresh token pair
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Issue creates a signed access/refresh token pair for a subject.
// Subject is the user's CNIC or the organiser's id.
func Issue(cfg *config.Config, subject, email, role string) (*Pair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  role,
		"type":  "access",
		"iat":   now.Unix(),
		"exp":   now.Add(cfg.JWT.JWTExpiresIn).Unix(),
	}
	access, err := sign(cfg, accessClaims)
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.MapClaims{
		"sub":  subject,
		"type": "refresh",
		"iat":  now.Unix(),
		"exp":  now.Add(cfg.JWT.RefreshExpiresIn).Unix(),
	}
	refresh, err := sign(cfg, refreshClaims)
	if err != nil {
		return nil, err
	}

	return &Pair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(cfg.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func sign(cfg *config.Config, claims jwt.MapClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.JWT.Secret))
}

// Parse validates a token string and returns its claims
func Parse(cfg *config.Config, tokenString string) (jwt.MapClaims, error) {
	t, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
