// Package http публикует операции сервиса заказов как JSON API на go-chi.
package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

// BasePath — префикс всех маршрутов API заказов.
const BasePath = "/api/v1/orderservice"

// OrderService — операции, которые обслуживает HTTP-слой.
type OrderService interface {
	Create(ctx context.Context, order domain.Order) (domain.Response[*domain.Order], error)
	AddNewOrder(ctx context.Context, order domain.Order) (domain.Response[*domain.Order], error)
	InitOrder(ctx context.Context, order domain.Order) (domain.Response[*domain.Order], error)
	AlterOrder(ctx context.Context, info domain.OrderAlterInfo) (domain.Response[*domain.Order], error)
	SaveChanges(ctx context.Context, order domain.Order) (domain.Response[*domain.Order], error)
	UpdateOrder(ctx context.Context, order domain.Order) (domain.Response[*domain.Order], error)
	ModifyOrder(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Response[*domain.Order], error)
	PayOrder(ctx context.Context, orderID string) (domain.Response[*domain.Order], error)
	CancelOrder(ctx context.Context, orderID, accountID string) (domain.Response[*domain.Order], error)
	DeleteOrder(ctx context.Context, orderID string) (domain.Response[*domain.Order], error)
	FindOrderByID(ctx context.Context, orderID string) (domain.Response[*domain.Order], error)
	GetOrderByID(ctx context.Context, orderID string) (domain.Response[*domain.Order], error)
	GetOrderPrice(ctx context.Context, orderID string) (domain.Response[string], error)
	GetAllOrders(ctx context.Context) (domain.Response[[]domain.Order], error)
	GetSoldTickets(ctx context.Context, seat domain.Seat) (domain.Response[[]domain.Order], error)
	QueryAlreadySoldOrders(ctx context.Context, travelDate, trainNumber string) (domain.Response[[]domain.Order], error)
	QueryOrders(ctx context.Context, criteria domain.OrderQueryCriteria, accountID string) (domain.Response[[]domain.Order], error)
	QueryOrdersForRefresh(ctx context.Context, criteria domain.OrderQueryCriteria, accountID string) (domain.Response[[]domain.Order], error)
	QueryForStationID(ctx context.Context, ids []string) (domain.Response[[]string], error)
	CheckSecurityAboutOrder(ctx context.Context, checkDate, accountID string) (domain.Response[domain.OrderSecurity], error)
}

// Handler держит сервис заказов и логгер транспортного слоя.
type Handler struct {
	orders OrderService
	logger *log.Entry
}

// NewRouter собирает chi-роутер API заказов.
func NewRouter(orders OrderService, logger *log.Entry) http.Handler {
	if logger == nil {
		logger = log.WithField("component", "http")
	}
	h := &Handler{orders: orders, logger: logger}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(logger),
		middleware.Recoverer,
	)

	r.Route(BasePath, func(r chi.Router) {
		r.Get("/welcome", h.welcome)

		r.Route("/order", func(r chi.Router) {
			r.Post("/", h.create)
			r.Get("/", h.getAllOrders)
			r.Put("/", h.saveChanges)

			r.Post("/admin", h.addNewOrder)
			r.Put("/admin", h.updateOrder)
			r.Post("/init", h.initOrder)
			r.Post("/alter", h.alterOrder)

			r.Post("/tickets", h.getSoldTickets)
			r.Post("/query", h.queryOrders)
			r.Post("/refresh", h.queryOrdersForRefresh)
			r.Post("/station/names", h.queryForStationID)

			r.Get("/find/{orderId}", h.findOrderByID)
			r.Get("/price/{orderId}", h.getOrderPrice)
			r.Get("/orderPay/{orderId}", h.payOrder)
			r.Get("/status/{orderId}/{status}", h.modifyOrder)
			r.Get("/security/{checkDate}/{accountId}", h.checkSecurityAboutOrder)
			r.Get("/sold/{travelDate}/{trainNumber}", h.queryAlreadySoldOrders)
			r.Put("/cancel/{orderId}/{accountId}", h.cancelOrder)

			r.Get("/{orderId}", h.getOrderByID)
			r.Delete("/{orderId}", h.deleteOrder)
		})
	})

	return r
}
