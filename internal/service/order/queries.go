package order

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

// orderPriceMissing — маркер цены отсутствующего заказа.
const orderPriceMissing = "-1.0"

// FindOrderByID возвращает заказ по идентификатору.
func (s *Service) FindOrderByID(ctx context.Context, orderID string) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("FindOrderByID")
	defer func() { done(resp.Status, err) }()

	return s.byID(ctx, orderID, "No Content by this id", "Success")
}

// GetOrderByID возвращает заказ по идентификатору для внешних сервисов.
func (s *Service) GetOrderByID(ctx context.Context, orderID string) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("GetOrderByID")
	defer func() { done(resp.Status, err) }()

	return s.byID(ctx, orderID, "Order Not Found", "Success.")
}

func (s *Service) byID(ctx context.Context, orderID, missingMsg, successMsg string) (domain.Response[*domain.Order], error) {
	order, found, err := s.lookup(ctx, orderID)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}
	if !found {
		return domain.Failure[*domain.Order](missingMsg), nil
	}
	return domain.Success(successMsg, &order), nil
}

// GetOrderPrice возвращает цену заказа. Для отсутствующего заказа в Data лежит "-1.0".
func (s *Service) GetOrderPrice(ctx context.Context, orderID string) (resp domain.Response[string], err error) {
	done := s.begin("GetOrderPrice")
	defer func() { done(resp.Status, err) }()

	order, found, err := s.lookup(ctx, orderID)
	if err != nil {
		return domain.Response[string]{}, err
	}
	if !found {
		return domain.Response[string]{
			Status: domain.StatusFailure,
			Msg:    "Order Not Found",
			Data:   orderPriceMissing,
		}, nil
	}
	return domain.Success("Success", order.Price), nil
}

// GetAllOrders возвращает все заказы. Отсутствующая коллекция даёт отказ, пустая считается успехом.
func (s *Service) GetAllOrders(ctx context.Context) (resp domain.Response[[]domain.Order], err error) {
	done := s.begin("GetAllOrders")
	defer func() { done(resp.Status, err) }()

	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return domain.Response[[]domain.Order]{}, fmt.Errorf("list all orders: %w", err)
	}
	if orders == nil {
		return domain.Failure[[]domain.Order]("No Content."), nil
	}
	return domain.Success("Success.", orders), nil
}

// GetSoldTickets возвращает заказы поезда на дату поездки из запроса места.
func (s *Service) GetSoldTickets(ctx context.Context, seat domain.Seat) (resp domain.Response[[]domain.Order], err error) {
	done := s.begin("GetSoldTickets")
	defer func() { done(resp.Status, err) }()

	orders, err := s.soldOrders(ctx, seat.TravelDate, seat.TrainNumber)
	if err != nil {
		return domain.Response[[]domain.Order]{}, err
	}
	if orders == nil {
		return domain.Failure[[]domain.Order]("Order is Null."), nil
	}
	return domain.Success("Success", orders), nil
}

// QueryAlreadySoldOrders возвращает заказы поезда на дату; пустой результат тоже успех.
func (s *Service) QueryAlreadySoldOrders(ctx context.Context, travelDate, trainNumber string) (resp domain.Response[[]domain.Order], err error) {
	done := s.begin("QueryAlreadySoldOrders")
	defer func() { done(resp.Status, err) }()

	orders, err := s.soldOrders(ctx, travelDate, trainNumber)
	if err != nil {
		return domain.Response[[]domain.Order]{}, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return domain.Success("Success", orders), nil
}

func (s *Service) soldOrders(ctx context.Context, travelDate, trainNumber string) ([]domain.Order, error) {
	orders, err := s.orders.ListByTravelDateAndTrain(ctx, travelDate, trainNumber)
	if err != nil {
		return nil, fmt.Errorf("list orders of train %q on %q: %w", trainNumber, travelDate, err)
	}
	return orders, nil
}

// QueryOrders фильтрует заказы аккаунта по включённым измерениям критерия.
// Пустой accountID заменяется на criteria.LoginID.
func (s *Service) QueryOrders(ctx context.Context, criteria domain.OrderQueryCriteria, accountID string) (resp domain.Response[[]domain.Order], err error) {
	done := s.begin("QueryOrders")
	defer func() { done(resp.Status, err) }()

	orders, err := s.query(ctx, criteria, accountID)
	if err != nil {
		return domain.Response[[]domain.Order]{}, err
	}
	return domain.Success("Get order num", orders), nil
}

// QueryOrdersForRefresh фильтрует заказы как QueryOrders и подставляет имена станций.
// Имена разрешаются одним вызовом на весь результат.
func (s *Service) QueryOrdersForRefresh(ctx context.Context, criteria domain.OrderQueryCriteria, accountID string) (resp domain.Response[[]domain.Order], err error) {
	done := s.begin("QueryOrdersForRefresh")
	defer func() { done(resp.Status, err) }()

	orders, err := s.query(ctx, criteria, accountID)
	if err != nil {
		return domain.Response[[]domain.Order]{}, err
	}
	if len(orders) == 0 {
		return domain.Success("Query Orders For Refresh Success", orders), nil
	}

	ids := make([]string, 0, 2*len(orders))
	for _, order := range orders {
		ids = append(ids, order.From, order.To)
	}
	names, err := s.resolveStations(ctx, ids)
	if err != nil {
		return domain.Response[[]domain.Order]{}, err
	}
	if len(names) != len(ids) {
		return domain.Response[[]domain.Order]{}, fmt.Errorf("%w: requested %d, got %d", domain.ErrStationNamesMismatch, len(ids), len(names))
	}

	for i := range orders {
		orders[i].From = names[2*i]
		orders[i].To = names[2*i+1]
	}
	return domain.Success("Query Orders For Refresh Success", orders), nil
}

func (s *Service) query(ctx context.Context, criteria domain.OrderQueryCriteria, accountID string) ([]domain.Order, error) {
	if accountID == "" {
		accountID = criteria.LoginID
	}
	if accountID == "" {
		return nil, domain.ErrAccountRequired
	}

	filter, err := criteria.Compile()
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list orders of account %q: %w", accountID, err)
	}
	return filter.Apply(orders)
}

// QueryForStationID возвращает имена станций в порядке идентификаторов.
func (s *Service) QueryForStationID(ctx context.Context, ids []string) (resp domain.Response[[]string], err error) {
	done := s.begin("QueryForStationID")
	defer func() { done(resp.Status, err) }()

	names, err := s.resolveStations(ctx, ids)
	if err != nil {
		return domain.Response[[]string]{}, err
	}
	return domain.Success("Success", names), nil
}

// CheckSecurityAboutOrder считает недавние покупки аккаунта и заказы на день checkDate.
func (s *Service) CheckSecurityAboutOrder(ctx context.Context, checkDate, accountID string) (resp domain.Response[domain.OrderSecurity], err error) {
	done := s.begin("CheckSecurityAboutOrder")
	defer func() { done(resp.Status, err) }()

	reference, err := domain.ParseDateTimeField("checkDate", checkDate)
	if err != nil {
		return domain.Response[domain.OrderSecurity]{}, err
	}

	orders, err := s.orders.ListByAccount(ctx, accountID)
	if err != nil {
		return domain.Response[domain.OrderSecurity]{}, fmt.Errorf("list orders of account %q: %w", accountID, err)
	}

	now := s.now()
	recent := domain.DateRange{Start: now.Add(-s.securityWindow), End: now}

	var security domain.OrderSecurity
	for _, order := range orders {
		bought, err := domain.ParseDateTimeField("order.boughtDate", order.BoughtDate)
		if err != nil {
			return domain.Response[domain.OrderSecurity]{}, err
		}
		travel, err := domain.ParseDateTimeField("order.travelDate", order.TravelDate)
		if err != nil {
			return domain.Response[domain.OrderSecurity]{}, err
		}
		if !countsForSecurity(order.Status) {
			continue
		}
		if recent.Contains(bought) {
			security.RecentOrders++
		}
		if domain.SameDay(travel, reference) {
			security.SameDayOrders++
		}
	}

	return domain.Success("Check Security Success . ", security), nil
}

// countsForSecurity оставляет в проверке только действующие заказы: неоплаченные и оплаченные.
func countsForSecurity(status domain.OrderStatus) bool {
	return status == domain.OrderStatusNotPaid || status == domain.OrderStatusPaid
}
