// Package order реализует жизненный цикл заказа на билет и выборки по заказам.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
	"github.com/vladislavdragonenkov/ticketorder/internal/metrics"
)

// DefaultSecurityWindow — окно "недавних" покупок для проверки безопасности.
const DefaultSecurityWindow = time.Hour

// Service — движок операций над заказами. Состояния между запросами не хранит.
type Service struct {
	orders         domain.OrderRepository
	stations       domain.StationResolver
	events         domain.EventPublisher
	metrics        *metrics.OrderMetrics
	logger         *log.Entry
	now            func() time.Time
	newID          func() string
	securityWindow time.Duration
}

// Option настраивает Service.
type Option func(*Service)

// WithEventPublisher подключает публикацию событий жизненного цикла.
func WithEventPublisher(publisher domain.EventPublisher) Option {
	return func(s *Service) { s.events = publisher }
}

// WithMetrics подключает prometheus-метрики операций.
func WithMetrics(m *metrics.OrderMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator подменяет генератор идентификаторов новых заказов.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithSecurityWindow задаёт окно подсчёта недавних покупок.
func WithSecurityWindow(window time.Duration) Option {
	return func(s *Service) {
		if window > 0 {
			s.securityWindow = window
		}
	}
}

// NewService создаёт сервис заказов.
func NewService(orders domain.OrderRepository, stations domain.StationResolver, opts ...Option) *Service {
	s := &Service{
		orders:         orders,
		stations:       stations,
		logger:         log.New().WithField("component", "order-service"),
		now:            time.Now,
		newID:          uuid.NewString,
		securityWindow: DefaultSecurityWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// begin запускает учёт операции; возвращённая функция фиксирует её исход.
func (s *Service) begin(operation string) func(status int, err error) {
	finish := s.metrics.Begin(operation)
	return func(status int, err error) {
		switch {
		case err != nil:
			finish(metrics.ResultError)
			s.logger.WithError(err).WithField("operation", operation).Error("order operation failed")
		case status != domain.StatusSuccess:
			finish(metrics.ResultFailure)
		default:
			finish(metrics.ResultSuccess)
		}
	}
}

// lookup возвращает заказ и признак его наличия; ошибка означает сбой хранилища.
func (s *Service) lookup(ctx context.Context, id string) (domain.Order, bool, error) {
	order, err := s.orders.Get(ctx, id)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("get order %q: %w", id, err)
	}
	return order, true, nil
}

func (s *Service) save(ctx context.Context, order domain.Order) (domain.Order, error) {
	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("save order %q: %w", order.ID, err)
	}
	return saved, nil
}

// publish отправляет событие; сбой публикации на результат операции не влияет.
func (s *Service) publish(ctx context.Context, eventType domain.OrderEventType, order domain.Order) {
	if s.events == nil {
		return
	}
	err := s.events.PublishOrderEvent(ctx, eventType, order)
	s.metrics.RecordEventPublished(string(eventType), err)
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"event_type": eventType,
			"order_id":   order.ID,
		}).Warn("failed to publish order event")
	}
}

func (s *Service) resolveStations(ctx context.Context, ids []string) ([]string, error) {
	if s.stations == nil {
		return nil, fmt.Errorf("%w: resolver is not configured", domain.ErrStationResolve)
	}
	names, err := s.stations.Resolve(ctx, ids)
	s.metrics.RecordStationResolve(err)
	if err != nil {
		return nil, fmt.Errorf("resolve %d stations: %w", len(ids), err)
	}
	return names, nil
}
