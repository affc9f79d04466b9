package domain

import "context"

// OrderRepository — шлюз к коллекции заказов, без бизнес-логики.
//
// Отсутствие записи по идентификатору сигнализируется ErrOrderNotFound.
// Для списков nil-слайс означает "коллекция отсутствует" (null), а пустой
// не-nil слайс означает "найдено ноль записей"; реализации обязаны различать эти случаи.
type OrderRepository interface {
	// Get возвращает заказ по идентификатору.
	Get(ctx context.Context, id string) (Order, error)
	// ListByAccount возвращает все заказы аккаунта.
	ListByAccount(ctx context.Context, accountID string) ([]Order, error)
	// ListByTravelDateAndTrain возвращает заказы поезда на дату поездки (точное совпадение строки).
	ListByTravelDateAndTrain(ctx context.Context, travelDate, trainNumber string) ([]Order, error)
	// ListAll возвращает все заказы.
	ListAll(ctx context.Context) ([]Order, error)
	// Save вставляет заказ или полностью заменяет существующий.
	Save(ctx context.Context, order Order) (Order, error)
	// Delete удаляет заказ; отсутствие записи ошибкой не считается.
	Delete(ctx context.Context, id string) error
}

// StationResolver переводит идентификаторы станций в отображаемые имена.
// Ответ сохраняет порядок и длину входного списка.
type StationResolver interface {
	Resolve(ctx context.Context, ids []string) ([]string, error)
}

// OrderEventType — тип доменного события заказа.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventUpdated       OrderEventType = "order.updated"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventPaid          OrderEventType = "order.paid"
	OrderEventCanceled      OrderEventType = "order.canceled"
	OrderEventDeleted       OrderEventType = "order.deleted"
)

// EventPublisher публикует события жизненного цикла заказа наружу.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, eventType OrderEventType, order Order) error
}
