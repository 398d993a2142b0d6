package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"ips-data-svc/src/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// RabbitMQ is a lazily-connected publisher. The connection is established by
// the first publish that needs it and reused afterwards; a publish failure
// drops the connection so the next call re-dials.
type RabbitMQ struct {
	cfg *config.QueueConfig

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitMQ(cfg *config.QueueConfig) *RabbitMQ {
	return &RabbitMQ{cfg: cfg}
}

// channelLocked returns an open channel, dialing if needed. Callers must hold r.mu.
func (r *RabbitMQ) channelLocked() (*amqp.Channel, error) {
	if r.channel != nil && r.conn != nil && !r.conn.IsClosed() {
		return r.channel, nil
	}

	log.WithField("url", r.cfg.RabbitMQ.Url).Info("Connecting to RabbitMQ...")
	conn, err := amqp.Dial(r.cfg.RabbitMQ.Url)
	if err != nil {
		log.WithError(err).Error("Failed to connect to RabbitMQ")
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		log.WithError(err).Error("Failed to open a channel")
		conn.Close()
		return nil, err
	}

	log.Infof("Connected to RabbitMQ at %s", r.cfg.RabbitMQ.Url)

	r.conn = conn
	r.channel = channel
	return channel, nil
}

func (r *RabbitMQ) resetLocked() {
	if r.channel != nil {
		r.channel.Close()
		r.channel = nil
	}
	if r.conn != nil {
		r.conn.Close()
		r.conn = nil
	}
}

// PublishJSON declares queueName (idempotent) and publishes message as a
// single persistent JSON message. Publishes are serialized: amqp channels are
// not safe for concurrent use.
func (r *RabbitMQ) PublishJSON(ctx context.Context, queueName string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal queue message: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	channel, err := r.channelLocked()
	if err != nil {
		return fmt.Errorf("failed to acquire channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		queueName,
		r.cfg.RabbitMQ.Durable,
		r.cfg.RabbitMQ.AutoDelete,
		r.cfg.RabbitMQ.Exclusive,
		r.cfg.RabbitMQ.NoWait,
		nil,
	)
	if err != nil {
		r.resetLocked()
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	err = channel.Publish(
		"", // default exchange
		queueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		r.resetLocked()
		log.WithError(err).WithField("queue", queueName).Error("Failed to publish message")
		return fmt.Errorf("failed to publish to queue %s: %w", queueName, err)
	}

	log.WithFields(logrus.Fields{
		"queue": queueName,
		"bytes": len(body),
	}).Debug("Message published")

	return nil
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			log.WithError(err).Error("Failed to close RabbitMQ channel")
			return err
		}
		r.channel = nil
		log.Info("RabbitMQ channel closed")
	}

	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			log.WithError(err).Error("Failed to close RabbitMQ connection")
			return err
		}
		r.conn = nil
		log.Info("RabbitMQ connection closed")
	}

	return nil
}
