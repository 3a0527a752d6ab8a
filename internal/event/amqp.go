package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"vocab_learn/internal/middleware"

	amqp "github.com/rabbitmq/amqp091-go"
)

// envelope はブローカーに流すメッセージの形
type envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// AMQPPublisher は topic exchange に JSON を発行する
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPPublisher(amqpURL, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("amqp exchange declare %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func encode(routingKey string, payload any, now time.Time) ([]byte, error) {
	return json.Marshal(envelope{Type: routingKey, OccurredAt: now.UTC(), Payload: payload})
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := encode(routingKey, payload, time.Now())
	if err != nil {
		return err
	}

	// チャネルは1本を共有する
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("amqp publish %s: %w", routingKey, err)
	}
	middleware.GetLogger(ctx).Debug("Event published", "routing_key", routingKey, "exchange", p.exchange)
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
