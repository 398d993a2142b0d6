package user

import (
	"context"
	"errors"
	"time"

	"ips-data-svc/src/clients"
	"ips-data-svc/src/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	GetByPhone(ctx context.Context, phone string) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	Insert(ctx context.Context, u *User) error
	SetActive(ctx context.Context, phone string, active bool) error
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *clients.MongoDB, collectionName string) Repository {
	return &userRepository{collection: db.Database.Collection(collectionName)}
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*User, error) {
	var u User
	err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrUserNotFound
		}
		logrus.WithError(err).Error("Failed to get user by phone")
		return nil, models.ErrDatabaseQuery
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*User, error) {
	var u User
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to get user by id")
		return nil, models.ErrDatabaseQuery
	}
	return &u, nil
}

func (r *userRepository) Insert(ctx context.Context, u *User) error {
	_, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrPhoneRegistered
		}
		logrus.WithError(err).Error("Failed to insert user")
		return models.ErrDatabaseInsert
	}
	return nil
}

func (r *userRepository) SetActive(ctx context.Context, phone string, active bool) error {
	update := bson.M{
		"$set": bson.M{
			"is_active":  active,
			"updated_at": time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"phone": phone}, update)
	if err != nil {
		logrus.WithError(err).Error("Failed to update user verification status")
		return models.ErrDatabaseUpdate
	}
	if result.MatchedCount == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

type RefreshTokenRepository interface {
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Insert(ctx context.Context, token *RefreshToken) error
	Rotate(ctx context.Context, oldToken string, successor *RefreshToken) error
}

type refreshTokenRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewRefreshTokenRepository(db *clients.MongoDB, collectionName string) RefreshTokenRepository {
	return &refreshTokenRepository{
		client:     db.Client,
		collection: db.Database.Collection(collectionName),
	}
}

func (r *refreshTokenRepository) GetByToken(ctx context.Context, token string) (*RefreshToken, error) {
	var rt RefreshToken
	err := r.collection.FindOne(ctx, bson.M{"_id": token}).Decode(&rt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrInvalidRefreshToken
		}
		logrus.WithError(err).Error("Failed to get refresh token")
		return nil, models.ErrDatabaseQuery
	}
	return &rt, nil
}

func (r *refreshTokenRepository) Insert(ctx context.Context, token *RefreshToken) error {
	_, err := r.collection.InsertOne(ctx, token)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert refresh token")
		return models.ErrDatabaseInsert
	}
	return nil
}

// Rotate revokes oldToken and records successor in one transaction. The
// revocation filters on is_revoked=false, so of two concurrent rotations of
// the same token exactly one commits; the loser sees the token as revoked.
func (r *refreshTokenRepository) Rotate(ctx context.Context, oldToken string, successor *RefreshToken) error {
	session, err := r.client.StartSession()
	if err != nil {
		logrus.WithError(err).Error("Failed to start mongo session for token rotation")
		return models.ErrDatabaseUpdate
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now().UTC()
		update := bson.M{
			"$set": bson.M{
				"is_revoked":        true,
				"revoked_at":        now,
				"replaced_by_token": successor.Token,
				"updated_at":        now,
			},
		}

		result := r.collection.FindOneAndUpdate(sc, bson.M{"_id": oldToken, "is_revoked": false}, update)
		if err := result.Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, models.ErrTokenExpiredOrRevoked
			}
			return nil, err
		}

		if _, err := r.collection.InsertOne(sc, successor); err != nil {
			return nil, err
		}
		return nil, nil
	})

	if err != nil {
		if errors.Is(err, models.ErrTokenExpiredOrRevoked) {
			return models.ErrTokenExpiredOrRevoked
		}
		logrus.WithError(err).Error("Refresh token rotation failed")
		return models.ErrDatabaseUpdate
	}
	return nil
}
