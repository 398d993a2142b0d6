package appversion

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppVersion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VersionName string             `bson:"version_name" json:"version_name"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type CheckRequest struct {
	VersionName string `json:"version_name" binding:"required"`
}

type CheckResponse struct {
	VersionName string `json:"version_name"`
	IsActive    bool   `json:"is_active"`
}
