package user

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"ips-data-svc/src/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const refreshTokenBytes = 64

// Claims are the access-token claims embedded in every signed JWT.
type Claims struct {
	UserID    string `json:"userId"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

type TokenResult struct {
	Token     string
	ExpiresAt time.Time
	ExpiresIn int
}

type TokenIssuer struct {
	cfg *config.SecuritySettings
}

func NewTokenIssuer(cfg *config.SecuritySettings) *TokenIssuer {
	return &TokenIssuer{cfg: cfg}
}

func (i *TokenIssuer) GenerateAccessToken(u *User) (*TokenResult, error) {
	expiration := time.Duration(i.cfg.JwtExpirationHours) * time.Hour
	now := time.Now().UTC()
	expiresAt := now.Add(expiration)

	claims := &Claims{
		UserID:    u.ID,
		FullName:  u.FullName,
		Phone:     u.Phone,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(i.cfg.JwtKey))
	if err != nil {
		return nil, err
	}

	return &TokenResult{
		Token:     signed,
		ExpiresAt: expiresAt,
		ExpiresIn: int(expiration.Seconds()),
	}, nil
}

// GenerateRefreshToken returns an opaque token with 64 bytes of entropy.
func (i *TokenIssuer) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
