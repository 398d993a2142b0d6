package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ips-data-svc/src/internal/config"
	"ips-data-svc/src/internal/models"
	"ips-data-svc/src/internal/session"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Service interface {
	GetSession(ctx context.Context, sessionID string) (*session.Session, error)
	CacheSession(ctx context.Context, s *session.Session) error
	GetAppVersionActive(ctx context.Context, versionName string) (*bool, error)
	CacheAppVersionActive(ctx context.Context, versionName string, active bool) error
}

type cacheService struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

func NewCacheService(client *redis.Client, cfg *config.Configuration) Service {
	return &cacheService{
		client: client,
		cfg:    &cfg.Cache,
	}
}

func (c *cacheService) sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", c.cfg.SessionKeyPrefix, sessionID)
}

func (c *cacheService) appVersionKey(versionName string) string {
	return fmt.Sprintf("%s:%s", c.cfg.AppVersionKeyPrefix, versionName)
}

// GetSession returns the cached session, or nil without error on a miss.
func (c *cacheService) GetSession(ctx context.Context, sessionID string) (*session.Session, error) {
	key := c.sessionKey(sessionID)

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logrus.WithError(err).WithField("key", key).Error("Failed to get session from cache")
		return nil, models.ErrRedisGet
	}

	var s session.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to unmarshal session from cache")
		return nil, models.ErrRedisGet
	}

	return &s, nil
}

func (c *cacheService) CacheSession(ctx context.Context, s *session.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		logrus.WithError(err).WithField("session_id", s.SessionID).Error("Failed to marshal session for cache")
		return models.ErrRedisSet
	}

	expiration := time.Duration(c.cfg.SessionExpirationMinutes) * time.Minute
	if err := c.client.Set(ctx, c.sessionKey(s.SessionID), data, expiration).Err(); err != nil {
		logrus.WithError(err).WithField("session_id", s.SessionID).Error("Failed to cache session")
		return models.ErrRedisSet
	}

	logrus.WithField("session_id", s.SessionID).Debug("Session cached")
	return nil
}

// GetAppVersionActive returns the cached active flag, or nil without error on a miss.
func (c *cacheService) GetAppVersionActive(ctx context.Context, versionName string) (*bool, error) {
	key := c.appVersionKey(versionName)

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logrus.WithError(err).WithField("key", key).Error("Failed to get app version from cache")
		return nil, models.ErrRedisGet
	}

	active, err := strconv.ParseBool(data)
	if err != nil {
		return nil, models.ErrRedisGet
	}
	return &active, nil
}

func (c *cacheService) CacheAppVersionActive(ctx context.Context, versionName string, active bool) error {
	expiration := time.Duration(c.cfg.AppVersionExpirationMinutes) * time.Minute
	if err := c.client.Set(ctx, c.appVersionKey(versionName), strconv.FormatBool(active), expiration).Err(); err != nil {
		logrus.WithError(err).WithField("version", versionName).Error("Failed to cache app version")
		return models.ErrRedisSet
	}
	return nil
}
