package bonus

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Bonus struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	SessionID *string            `bson:"session_id,omitempty" json:"session_id,omitempty"`
	Amount    float64            `bson:"amount" json:"amount"`
	Date      time.Time          `bson:"date" json:"date"`
	Remarks   *string            `bson:"remarks,omitempty" json:"remarks,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type ListResponse struct {
	Bonuses     []Bonus   `json:"bonuses"`
	TotalAmount float64   `json:"total_amount"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}
