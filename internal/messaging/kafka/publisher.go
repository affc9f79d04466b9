package kafka

import (
	"context"
	"time"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

// OrderEventPublisher отправляет события заказов в Kafka с ID заказа в качестве ключа.
type OrderEventPublisher struct {
	producer *Producer
	topic    string
	now      func() time.Time
}

// NewOrderEventPublisher создаёт publisher; пустой topic заменяется на TopicOrderEvents.
func NewOrderEventPublisher(producer *Producer, topic string) *OrderEventPublisher {
	if topic == "" {
		topic = TopicOrderEvents
	}
	return &OrderEventPublisher{producer: producer, topic: topic, now: time.Now}
}

// PublishOrderEvent реализует domain.EventPublisher.
func (p *OrderEventPublisher) PublishOrderEvent(ctx context.Context, eventType domain.OrderEventType, order domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	event := NewOrderEvent(eventType, order, p.now())
	return p.producer.PublishEvent(p.topic, order.ID, event, map[string]string{
		HeaderEventType: string(eventType),
	})
}

// NoopPublisher используется, когда Kafka не настроена.
type NoopPublisher struct{}

// PublishOrderEvent ничего не делает.
func (NoopPublisher) PublishOrderEvent(context.Context, domain.OrderEventType, domain.Order) error {
	return nil
}

var (
	_ domain.EventPublisher = (*OrderEventPublisher)(nil)
	_ domain.EventPublisher = NoopPublisher{}
)
