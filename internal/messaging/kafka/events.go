package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

// TopicOrderEvents — топик событий жизненного цикла заказов.
const TopicOrderEvents = "ts.order.events"

// HeaderEventType дублирует тип события в заголовке сообщения.
const HeaderEventType = "x-event-type"

// OrderEvent — сообщение о изменении заказа.
type OrderEvent struct {
	EventType   domain.OrderEventType `json:"event_type"`
	OrderID     string                `json:"order_id"`
	AccountID   string                `json:"account_id"`
	Status      domain.OrderStatus    `json:"status"`
	StatusName  string                `json:"status_name"`
	TrainNumber string                `json:"train_number"`
	TravelDate  string                `json:"travel_date"`
	Timestamp   time.Time             `json:"timestamp"`
	Order       domain.Order          `json:"order"`
}

// NewOrderEvent строит событие по снимку заказа.
func NewOrderEvent(eventType domain.OrderEventType, order domain.Order, at time.Time) *OrderEvent {
	return &OrderEvent{
		EventType:   eventType,
		OrderID:     order.ID,
		AccountID:   order.AccountID,
		Status:      order.Status,
		StatusName:  order.Status.String(),
		TrainNumber: order.TrainNumber,
		TravelDate:  order.TravelDate,
		Timestamp:   at.UTC(),
		Order:       order,
	}
}

// ParseOrderEvent декодирует значение сообщения из топика заказов.
func ParseOrderEvent(value []byte) (*OrderEvent, error) {
	var event OrderEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order event: %w", err)
	}
	return &event, nil
}
