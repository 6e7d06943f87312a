// Package queue publishes crew scheduling requests to RabbitMQ.
// Publishing is best effort: errors are logged and returned so callers can
// ignore broker outages without failing the request that triggered them.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/crewstack/staffing-api/internal/config"
)

// ShiftScheduledMessage is the payload consumed by the crew scheduling worker
type ShiftScheduledMessage struct {
	ShiftID     uuid.UUID `json:"shiftId"`
	RequestedAt time.Time `json:"requestedAt"`
}

// Publisher holds a connection to the broker and the declared queue
type Publisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewPublisher connects to the broker and declares the crew schedule queue.
// The queue is durable so messages survive broker restarts.
func NewPublisher(cfg *config.QueueConfig, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		cfg.CrewScheduleQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logger.Info("connected to message broker",
		zap.String("queue", cfg.CrewScheduleQueue))

	return &Publisher{
		conn:      conn,
		channel:   channel,
		queueName: cfg.CrewScheduleQueue,
		timeout:   cfg.PublishTimeoutDuration(),
		logger:    logger,
	}, nil
}

// PublishShiftScheduled sends a scheduling request for the shift. Messages are
// persistent and published to the default exchange with the queue name as the
// routing key.
func (p *Publisher) PublishShiftScheduled(ctx context.Context, shiftID uuid.UUID) error {
	msg := ShiftScheduledMessage{
		ShiftID:     shiftID,
		RequestedAt: time.Now().UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		"",          // default exchange
		p.queueName, // routing key = queue name
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    msg.RequestedAt,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("crew schedule request published",
		zap.String("shift_id", shiftID.String()))
	return nil
}

// Close releases the channel and connection
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
