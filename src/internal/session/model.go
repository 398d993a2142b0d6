package session

import "time"

// Session statuses. A session starts in_progress and only ever moves forward:
// completed via close, rejected via cancel, approved via an external review job.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

type Session struct {
	SessionID      string     `json:"session_id" bson:"_id"`
	UserID         *string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	StartTimestamp int64      `json:"start_timestamp" bson:"start_timestamp"`
	EndTimestamp   *int64     `json:"end_timestamp,omitempty" bson:"end_timestamp,omitempty"`
	IsSynced       bool       `json:"is_synced" bson:"is_synced"`
	Status         string     `json:"status" bson:"status"`
	PaymentStatus  string     `json:"payment_status" bson:"payment_status"`
	Remarks        *string    `json:"remarks,omitempty" bson:"remarks,omitempty"`
	BonusAmount    *float64   `json:"bonus_amount,omitempty" bson:"bonus_amount,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}

// IsTerminal reports whether the session can no longer be mutated by the client.
func (s *Session) IsTerminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusApproved || s.Status == StatusRejected
}

type CreateSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Timestamp int64  `json:"timestamp" binding:"required"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	CreatedAt int64  `json:"created_at"`
}

type CloseSessionRequest struct {
	SessionID    string `json:"session_id" binding:"required"`
	EndTimestamp int64  `json:"end_timestamp" binding:"required"`
}

type CancelSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type ListItem struct {
	SessionID      string   `json:"session_id"`
	StartTimestamp int64    `json:"start_timestamp"`
	EndTimestamp   *int64   `json:"end_timestamp,omitempty"`
	IsSynced       bool     `json:"is_synced"`
	Status         string   `json:"status"`
	PaymentStatus  string   `json:"payment_status"`
	Remarks        *string  `json:"remarks,omitempty"`
	BonusAmount    *float64 `json:"bonus_amount,omitempty"`
}
