package order

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

// Create сохраняет новый заказ, если у аккаунта ещё нет ни одного заказа.
func (s *Service) Create(ctx context.Context, order domain.Order) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("Create")
	defer func() { done(resp.Status, err) }()

	return s.create(ctx, order, "Success")
}

// AddNewOrder — административная точка входа с контрактом Create.
func (s *Service) AddNewOrder(ctx context.Context, order domain.Order) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("AddNewOrder")
	defer func() { done(resp.Status, err) }()

	return s.create(ctx, order, "Add new Order Success")
}

func (s *Service) create(ctx context.Context, order domain.Order, successMsg string) (domain.Response[*domain.Order], error) {
	existing, err := s.orders.ListByAccount(ctx, order.AccountID)
	if err != nil {
		return domain.Response[*domain.Order]{}, fmt.Errorf("list orders of account %q: %w", order.AccountID, err)
	}
	if len(existing) > 0 {
		s.logger.WithField("account_id", order.AccountID).Debug("order already exists for account")
		return domain.Failure[*domain.Order]("Order already exist"), nil
	}

	if order.ID == "" {
		order.ID = s.newID()
	}
	saved, err := s.save(ctx, order)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}

	s.publish(ctx, domain.OrderEventCreated, saved)
	return domain.Success(successMsg, &saved), nil
}

// InitOrder сохраняет заказ только если записи с таким идентификатором ещё нет.
// Повторный вызов ничего не пишет и возвращает существующую запись.
func (s *Service) InitOrder(ctx context.Context, order domain.Order) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("InitOrder")
	defer func() { done(resp.Status, err) }()

	if order.ID == "" {
		order.ID = s.newID()
	}

	existing, found, err := s.lookup(ctx, order.ID)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}
	if found {
		return domain.Success("Order Already Initialized", &existing), nil
	}

	saved, err := s.save(ctx, order)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}

	s.publish(ctx, domain.OrderEventCreated, saved)
	return domain.Success("Init Order Success", &saved), nil
}

// AlterOrder отменяет старый заказ и создаёт новый по правилам Create.
func (s *Service) AlterOrder(ctx context.Context, info domain.OrderAlterInfo) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("AlterOrder")
	defer func() { done(resp.Status, err) }()

	previous, found, err := s.lookup(ctx, info.PreviousOrderID)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}
	if !found {
		return domain.Failure[*domain.Order]("Old Order Does Not Exists"), nil
	}

	previous.Status = domain.OrderStatusCancelled
	cancelled, err := s.save(ctx, previous)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}
	s.publish(ctx, domain.OrderEventCanceled, cancelled)

	replacement := info.NewOrderInfo
	replacement.ID = ""
	return s.create(ctx, replacement, "Success")
}

// SaveChanges полностью перезаписывает существующий заказ.
func (s *Service) SaveChanges(ctx context.Context, order domain.Order) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("SaveChanges")
	defer func() { done(resp.Status, err) }()

	return s.overwrite(ctx, order, "Order Not Found", "Success")
}

// UpdateOrder — административная перезапись заказа.
func (s *Service) UpdateOrder(ctx context.Context, order domain.Order) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("UpdateOrder")
	defer func() { done(resp.Status, err) }()

	return s.overwrite(ctx, order, "Order Not Found, Can't update", "Admin Update Order Success")
}

func (s *Service) overwrite(ctx context.Context, order domain.Order, missingMsg, successMsg string) (domain.Response[*domain.Order], error) {
	_, found, err := s.lookup(ctx, order.ID)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}
	if !found {
		return domain.Failure[*domain.Order](missingMsg), nil
	}

	saved, err := s.save(ctx, order)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}

	s.publish(ctx, domain.OrderEventUpdated, saved)
	return domain.Success(successMsg, &saved), nil
}

// ModifyOrder выставляет заказу произвольный статус без проверки перехода.
func (s *Service) ModifyOrder(ctx context.Context, orderID string, status domain.OrderStatus) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("ModifyOrder")
	defer func() { done(resp.Status, err) }()

	if !status.Known() {
		s.logger.WithFields(log.Fields{
			"order_id": orderID,
			"status":   int(status),
		}).Warn("order status set to unknown code")
	}

	return s.transition(ctx, orderID, status, domain.OrderEventStatusChanged, "Order Not Found", "Modify Order Success")
}

// PayOrder переводит заказ в статус Paid.
func (s *Service) PayOrder(ctx context.Context, orderID string) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("PayOrder")
	defer func() { done(resp.Status, err) }()

	return s.transition(ctx, orderID, domain.OrderStatusPaid, domain.OrderEventPaid, "Order Not Found", "Pay Order Success.")
}

// CancelOrder переводит заказ в терминальный статус Cancelled.
// Владелец заказа не проверяется: несовпадение accountID только логируется.
func (s *Service) CancelOrder(ctx context.Context, orderID, accountID string) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("CancelOrder")
	defer func() { done(resp.Status, err) }()

	order, found, err := s.lookup(ctx, orderID)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}
	if !found {
		return domain.Failure[*domain.Order]("Order Not Found"), nil
	}
	if accountID != "" && accountID != order.AccountID {
		s.logger.WithFields(log.Fields{
			"order_id":      orderID,
			"account_id":    accountID,
			"order_account": order.AccountID,
		}).Warn("order canceled by non-owner account")
	}

	order.Status = domain.OrderStatusCancelled
	saved, err := s.save(ctx, order)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}

	s.publish(ctx, domain.OrderEventCanceled, saved)
	return domain.Success("Success", &saved), nil
}

func (s *Service) transition(
	ctx context.Context,
	orderID string,
	status domain.OrderStatus,
	eventType domain.OrderEventType,
	missingMsg, successMsg string,
) (domain.Response[*domain.Order], error) {
	order, found, err := s.lookup(ctx, orderID)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}
	if !found {
		return domain.Failure[*domain.Order](missingMsg), nil
	}

	order.Status = status
	saved, err := s.save(ctx, order)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}

	s.publish(ctx, eventType, saved)
	return domain.Success(successMsg, &saved), nil
}

// DeleteOrder удаляет заказ и возвращает его состояние до удаления.
func (s *Service) DeleteOrder(ctx context.Context, orderID string) (resp domain.Response[*domain.Order], err error) {
	done := s.begin("DeleteOrder")
	defer func() { done(resp.Status, err) }()

	snapshot, found, err := s.lookup(ctx, orderID)
	if err != nil {
		return domain.Response[*domain.Order]{}, err
	}
	if !found {
		return domain.Failure[*domain.Order]("Order Not Exist."), nil
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		return domain.Response[*domain.Order]{}, fmt.Errorf("delete order %q: %w", orderID, err)
	}

	s.publish(ctx, domain.OrderEventDeleted, snapshot)
	return domain.Success("Delete Order Success", &snapshot), nil
}
