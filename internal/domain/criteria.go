package domain

import "time"

// OrderQueryCriteria задаёт фильтр выборки заказов аккаунта.
// Выключенные измерения не ограничивают результат; включённые объединяются через AND.
type OrderQueryCriteria struct {
	LoginID string `json:"loginId"`

	State            OrderStatus `json:"state"`
	EnableStateQuery bool        `json:"enableStateQuery"`

	BoughtDateStart       string `json:"boughtDateStart"`
	BoughtDateEnd         string `json:"boughtDateEnd"`
	EnableBoughtDateQuery bool   `json:"enableBoughtDateQuery"`

	TravelDateStart       string `json:"travelDateStart"`
	TravelDateEnd         string `json:"travelDateEnd"`
	EnableTravelDateQuery bool   `json:"enableTravelDateQuery"`
}

// DateRange — закрытый интервал [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains проверяет попадание момента в интервал включительно.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// OrderFilter — разобранная форма OrderQueryCriteria, готовая к применению.
type OrderFilter struct {
	state      *OrderStatus
	boughtDate *DateRange
	travelDate *DateRange
}

// Compile разбирает границы включённых диапазонов.
// Границы выключенных измерений не читаются, поэтому могут быть пустыми.
func (c OrderQueryCriteria) Compile() (OrderFilter, error) {
	var filter OrderFilter

	if c.EnableStateQuery {
		state := c.State
		filter.state = &state
	}
	if c.EnableBoughtDateQuery {
		r, err := parseRange("boughtDate", c.BoughtDateStart, c.BoughtDateEnd)
		if err != nil {
			return OrderFilter{}, err
		}
		filter.boughtDate = &r
	}
	if c.EnableTravelDateQuery {
		r, err := parseRange("travelDate", c.TravelDateStart, c.TravelDateEnd)
		if err != nil {
			return OrderFilter{}, err
		}
		filter.travelDate = &r
	}

	return filter, nil
}

// Match проверяет заказ по всем включённым измерениям.
// Невалидная дата в самой записи прерывает весь запрос.
func (f OrderFilter) Match(order Order) (bool, error) {
	if f.state != nil && order.Status != *f.state {
		return false, nil
	}
	if f.boughtDate != nil {
		bought, err := ParseDateTimeField("order.boughtDate", order.BoughtDate)
		if err != nil {
			return false, err
		}
		if !f.boughtDate.Contains(bought) {
			return false, nil
		}
	}
	if f.travelDate != nil {
		travel, err := ParseDateTimeField("order.travelDate", order.TravelDate)
		if err != nil {
			return false, err
		}
		if !f.travelDate.Contains(travel) {
			return false, nil
		}
	}
	return true, nil
}

// Apply возвращает заказы, прошедшие фильтр, сохраняя исходный порядок.
func (f OrderFilter) Apply(orders []Order) ([]Order, error) {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		ok, err := f.Match(order)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, order)
		}
	}
	return result, nil
}

func parseRange(field, start, end string) (DateRange, error) {
	from, err := ParseDateTimeField(field+"Start", start)
	if err != nil {
		return DateRange{}, err
	}
	to, err := ParseDateTimeField(field+"End", end)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: from, End: to}, nil
}
