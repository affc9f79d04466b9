package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// ListByAccount возвращает заказы аккаунта, отсортированные по дате покупки.
func (r *orderRepositoryInMemory) ListByAccount(_ context.Context, accountID string) ([]domain.Order, error) {
	return r.filter(func(o domain.Order) bool { return o.AccountID == accountID }), nil
}

// ListByTravelDateAndTrain возвращает заказы поезда на дату поездки.
func (r *orderRepositoryInMemory) ListByTravelDateAndTrain(_ context.Context, travelDate, trainNumber string) ([]domain.Order, error) {
	return r.filter(func(o domain.Order) bool {
		return o.TravelDate == travelDate && o.TrainNumber == trainNumber
	}), nil
}

// ListAll возвращает все заказы; пустое хранилище даёт пустой, но не nil слайс.
func (r *orderRepositoryInMemory) ListAll(_ context.Context) ([]domain.Order, error) {
	return r.filter(func(domain.Order) bool { return true }), nil
}

// Save вставляет или перезаписывает заказ целиком.
func (r *orderRepositoryInMemory) Save(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[order.ID] = order
	return order, nil
}

// Delete удаляет заказ, если он есть.
func (r *orderRepositoryInMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *orderRepositoryInMemory) filter(keep func(domain.Order) bool) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if keep(order) {
			result = append(result, order)
		}
	}

	// Порядок обхода map не определён.
	sort.Slice(result, func(i, j int) bool {
		if result[i].BoughtDate != result[j].BoughtDate {
			return result[i].BoughtDate < result[j].BoughtDate
		}
		return result[i].ID < result[j].ID
	})

	return result
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
