package user

import "time"

type User struct {
	ID           string    `json:"id" bson:"_id"`
	Phone        string    `json:"phone" bson:"phone"`
	FullName     string    `json:"full_name" bson:"full_name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// RefreshToken is one link in a rotation chain. Rotation revokes the token and
// records its successor in the same transaction, so at most one token per
// chain is ever active.
type RefreshToken struct {
	Token           string     `bson:"_id"`
	UserID          string     `bson:"user_id"`
	ExpiresAt       time.Time  `bson:"expires_at"`
	IsRevoked       bool       `bson:"is_revoked"`
	RevokedAt       *time.Time `bson:"revoked_at,omitempty"`
	ReplacedByToken *string    `bson:"replaced_by_token,omitempty"`
	CreatedAt       time.Time  `bson:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

func (t *RefreshToken) IsActive(now time.Time) bool {
	return !t.IsRevoked && !t.IsExpired(now)
}

type SignupRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

type SignupResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       string    `json:"user_id"`
	FullName     string    `json:"full_name"`
	ExpiresAt    time.Time `json:"expires_at"`
	ExpiresIn    int       `json:"expires_in"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	ExpiresIn    int       `json:"expires_in"`
}

type ChangeVerificationRequest struct {
	Phone       string `json:"phone" binding:"required"`
	Status      *bool  `json:"status" binding:"required"`
	SecurityKey string `json:"security_key" binding:"required"`
}
