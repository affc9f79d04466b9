package domain

// OrderStatus — числовой код жизненного цикла заказа.
// Значения не проверяются при записи: движок сохраняет любой код, который прислал вызывающий.
type OrderStatus int

const (
	// OrderStatusNotPaid — заказ создан, оплата ещё не получена.
	OrderStatusNotPaid OrderStatus = 0
	// OrderStatusPaid — оплата подтверждена.
	OrderStatusPaid OrderStatus = 1
	// OrderStatusCollected — билет получен пассажиром.
	OrderStatusCollected OrderStatus = 2
	// OrderStatusCancelled — терминальное состояние, запись остаётся в хранилище.
	OrderStatusCancelled OrderStatus = 3
	// OrderStatusRefunded — деньги за заказ возвращены.
	OrderStatusRefunded OrderStatus = 4
)

// String возвращает человекочитаемое имя статуса для логов и событий.
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusNotPaid:
		return "not_paid"
	case OrderStatusPaid:
		return "paid"
	case OrderStatusCollected:
		return "collected"
	case OrderStatusCancelled:
		return "cancelled"
	case OrderStatusRefunded:
		return "refunded"
	default:
		return "unknown"
	}
}

// Known сообщает, относится ли код к перечисленным статусам.
func (s OrderStatus) Known() bool {
	return s >= OrderStatusNotPaid && s <= OrderStatusRefunded
}

// Order — запись о покупке билета.
type Order struct {
	ID                     string      `json:"id"`
	BoughtDate             string      `json:"boughtDate"`
	TravelDate             string      `json:"travelDate"`
	TravelTime             string      `json:"travelTime"`
	AccountID              string      `json:"accountId"`
	ContactsName           string      `json:"contactsName"`
	DocumentType           int         `json:"documentType"`
	ContactsDocumentNumber string      `json:"contactsDocumentNumber"`
	TrainNumber            string      `json:"trainNumber"`
	CoachNumber            int         `json:"coachNumber"`
	SeatClass              int         `json:"seatClass"`
	SeatNumber             string      `json:"seatNumber"`
	// From и To — идентификаторы станций; в ответах refresh-запроса заменяются именами.
	From   string      `json:"from"`
	To     string      `json:"to"`
	Status OrderStatus `json:"status"`
	// Price хранится строкой, так её присылают вызывающие сервисы.
	Price string `json:"price"`
}

// OrderAlterInfo описывает замену старого заказа новым.
type OrderAlterInfo struct {
	AccountID       string `json:"accountId"`
	PreviousOrderID string `json:"previousOrderId"`
	// LoginToken не проверяется сервисом заказов.
	LoginToken   string `json:"loginToken"`
	NewOrderInfo Order  `json:"newOrderInfo"`
}

// Seat — запрос на список проданных мест поезда на дату.
type Seat struct {
	TravelDate   string `json:"travelDate"`
	TrainNumber  string `json:"trainNumber"`
	StartStation string `json:"startStation"`
	DestStation  string `json:"destStation"`
	SeatType     int    `json:"seatType"`
}

// OrderSecurity — агрегат для антифрод-проверки аккаунта.
type OrderSecurity struct {
	// RecentOrders — число заказов, купленных внутри скользящего окна до текущего момента.
	RecentOrders int `json:"orderNumInLastOneHour"`
	// SameDayOrders — число заказов с датой поездки в тот же календарный день, что и опорная дата.
	SameDayOrders int `json:"orderNumOfSameTravelDay"`
}
