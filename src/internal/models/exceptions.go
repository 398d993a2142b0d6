package models

import "errors"

var (
	ErrSessionExists    = errors.New("session already exists")
	ErrInvalidSessionID = errors.New("session_id must be a valid UUID")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionClosed    = errors.New("session is already closed")
	ErrInvalidTimestamp = errors.New("end timestamp must be greater than start timestamp")
	ErrNotSessionOwner  = errors.New("you can only cancel your own sessions")
	ErrSessionTerminal  = errors.New("session is in a final state")
)

var (
	ErrEmptyBatch    = errors.New("data_points must contain at least 1 data point")
	ErrInvalidSample = errors.New("timestamp must be a positive number")
	ErrPublishFailed = errors.New("failed to publish batch to queue")
	ErrInvalidAction = errors.New("invalid button action")
)

var (
	ErrAppVersionNotFound = errors.New("app version not found")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
)

var (
	ErrInvalidCredentials    = errors.New("invalid phone number or password")
	ErrAccountNotVerified    = errors.New("account is not yet verified")
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")
	ErrTokenExpiredOrRevoked = errors.New("refresh token is expired or revoked")
	ErrAccountInactive       = errors.New("user account is not active")
	ErrPhoneRegistered       = errors.New("phone number already registered")
	ErrInvalidSecurityKey    = errors.New("invalid security key")
	ErrUserNotFound          = errors.New("user not found")
)

var (
	ErrDatabaseConnection = errors.New("database connection error")
	ErrDatabaseQuery      = errors.New("database query error")
	ErrDatabaseInsert     = errors.New("database insert error")
	ErrDatabaseUpdate     = errors.New("database update error")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDuplicateRecord    = errors.New("duplicate record")
)

var (
	ErrRedisConnection = errors.New("redis connection error")
	ErrRedisGet        = errors.New("redis get error")
	ErrRedisSet        = errors.New("redis set error")
)
