package button

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action is a member of the closed navigation-event vocabulary. Clients ship
// the vocabulary too; an unknown value here means the client is out of date
// and must resync, which is why rejection is a distinct error kind.
type Action string

const (
	ActionEnteredRestaurantBuilding Action = "ENTERED_RESTAURANT_BUILDING"
	ActionEnteredElevator           Action = "ENTERED_ELEVATOR"
	ActionExitedElevator            Action = "EXITED_ELEVATOR"
	ActionClimbingStairs3Floors     Action = "CLIMBING_STAIRS_3_FLOORS"
	ActionGoingUp8FloorsInLift      Action = "GOING_UP_8_FLOORS_IN_LIFT"
	ActionReachedRestaurantCorridor Action = "REACHED_RESTAURANT_CORRIDOR"
	ActionReachedRestaurant         Action = "REACHED_RESTAURANT"
	ActionLeftRestaurant            Action = "LEFT_RESTAURANT"
	ActionComingDown3Floors         Action = "COMING_DOWN_3_FLOORS"
	ActionLeftRestaurantBuilding    Action = "LEFT_RESTAURANT_BUILDING"
	ActionEnteredDeliveryBuilding   Action = "ENTERED_DELIVERY_BUILDING"
	ActionReachedDeliveryCorridor   Action = "REACHED_DELIVERY_CORRIDOR"
	ActionReachedDoorstep           Action = "REACHED_DOORSTEP"
	ActionLeftDoorstep              Action = "LEFT_DOORSTEP"
	ActionGoingDown8FloorsInLift    Action = "GOING_DOWN_8_FLOORS_IN_LIFT"
	ActionLeftDeliveryBuilding      Action = "LEFT_DELIVERY_BUILDING"
)

var validActions = map[Action]struct{}{
	ActionEnteredRestaurantBuilding: {},
	ActionEnteredElevator:           {},
	ActionExitedElevator:            {},
	ActionClimbingStairs3Floors:     {},
	ActionGoingUp8FloorsInLift:      {},
	ActionReachedRestaurantCorridor: {},
	ActionReachedRestaurant:         {},
	ActionLeftRestaurant:            {},
	ActionComingDown3Floors:         {},
	ActionLeftRestaurantBuilding:    {},
	ActionEnteredDeliveryBuilding:   {},
	ActionReachedDeliveryCorridor:   {},
	ActionReachedDoorstep:           {},
	ActionLeftDoorstep:              {},
	ActionGoingDown8FloorsInLift:    {},
	ActionLeftDeliveryBuilding:      {},
}

func (a Action) IsValid() bool {
	_, ok := validActions[a]
	return ok
}

type ButtonPress struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	SessionID  string             `bson:"session_id"`
	UserID     *string            `bson:"user_id,omitempty"`
	Action     Action             `bson:"action"`
	Timestamp  int64              `bson:"timestamp"`
	FloorIndex *int               `bson:"floor_index,omitempty"`
	IsSynced   bool               `bson:"is_synced"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

type SubmitRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	Action     string `json:"action" binding:"required"`
	Timestamp  int64  `json:"timestamp" binding:"required"`
	FloorIndex *int   `json:"floor_index"`
}
