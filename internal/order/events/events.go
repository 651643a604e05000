package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/fekuna/omnipos-restaurant-service/pkg/broker"
)

const (
	TypeOrderPlaced    = "order.placed"
	TypeOrderCompleted = "order.completed"
	TypeOrderPaid      = "order.paid"
)

// Envelope is the wire shape published to the orders topic. Downstream
// consumers (reporting, notifications) key off event_type.
type Envelope struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	OrderID       int64   `json:"order_id"`
	Status        string  `json:"status"`
	FinalAmount   float64 `json:"final_amount,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

// Publisher emits order lifecycle events after a workflow commit.
// Publishing is best-effort: a failure never affects committed state.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload OrderPayload) error
}

type KafkaPublisher struct {
	producer *broker.Producer
}

func NewKafkaPublisher(producer *broker.Producer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, payload OrderPayload) error {
	env := Envelope{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return p.producer.WriteMessage(ctx, []byte(eventType), body)
}
