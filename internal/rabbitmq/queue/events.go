package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/hire-notifier/internal/config"
)

// EventMessage is a portal event routed to the notification triggers.
type EventMessage struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	UserID     string          `json:"user_id"`
	Data       json.RawMessage `json:"data"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type EventQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
}

// NewEventQueue declares the exchange, the main queue and its dead letter
// queue, and binds them with the configured routing key.
func NewEventQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*EventQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.DLQ,
	}

	mainQ, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &EventQueue{Publisher: pub, Consumer: cons, routingKey: cfg.RoutingKey}, nil
}

func (q *EventQueue) Publish(msg EventMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes deliveries into out until ctx is done.
func (q *EventQueue) Consume(ctx context.Context, out chan<- EventMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func forward(ctx context.Context, in <-chan []byte, out chan<- EventMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}

			msg, err := Decode(m)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Decode parses a delivery body. Messages without a type are rejected.
func Decode(body []byte) (EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return EventMessage{}, err
	}
	if msg.Type == "" {
		return EventMessage{}, fmt.Errorf("event %s has no type", msg.ID)
	}
	return msg, nil
}
