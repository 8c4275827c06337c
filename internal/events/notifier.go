// Package events publishes ledger events to RabbitMQ so downstream
// consumers (alerting, bookkeeping exports) can react to emergency-fund
// draws without polling the database.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripledger/internal/models"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// FundUsageMessage is the wire form of one emergency-fund draw event.
type FundUsageMessage struct {
	OperationID      string    `json:"operation_id"`
	TripID           string    `json:"trip_id"`
	UserID           string    `json:"user_id"`
	AmountFromTrip   float64   `json:"amount_from_trip"`
	AmountFromGlobal float64   `json:"amount_from_global"`
	TotalAmount      float64   `json:"total_amount"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// Notifier publishes persistent JSON messages to a durable direct exchange.
// A nil Notifier is valid and publishes nothing, so callers do not need to
// guard the disabled case.
type Notifier struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	queue    string
}

func NewNotifier(url, exchange, queue string) (*Notifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	n := &Notifier{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		queue:    queue,
	}

	if err := n.setup(); err != nil {
		n.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return n, nil
}

func (n *Notifier) setup() error {
	if err := n.channel.ExchangeDeclare(n.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := n.channel.QueueDeclare(n.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := n.channel.QueueBind(n.queue, n.queue, n.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

func (n *Notifier) PublishFundUsage(ctx context.Context, op *models.FinancialOperation) error {
	if n == nil {
		return nil
	}

	msg := FundUsageMessage{
		OperationID:      op.ID.String(),
		TripID:           op.TripID.String(),
		UserID:           op.UserID.String(),
		AmountFromTrip:   op.AmountFromTrip,
		AmountFromGlobal: op.AmountFromGlobal,
		TotalAmount:      op.TotalAmount,
		OccurredAt:       op.CreatedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		n.exchange,
		n.queue,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	return nil
}

func (n *Notifier) Close() {
	if n == nil {
		return
	}
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		n.conn.Close()
	}
}
