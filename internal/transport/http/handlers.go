package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
)

func (h *Handler) welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Welcome to [ Order Service ] !"))
}

// withOrder разбирает заказ из тела запроса и передаёт его операции.
func (h *Handler) withOrder(w http.ResponseWriter, r *http.Request, op func(context.Context, domain.Order) (domain.Response[*domain.Order], error)) {
	var order domain.Order
	if err := decode(r, &order); err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := op(r.Context(), order)
	reply(h, w, r, resp, err)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	h.withOrder(w, r, h.orders.Create)
}

func (h *Handler) addNewOrder(w http.ResponseWriter, r *http.Request) {
	h.withOrder(w, r, h.orders.AddNewOrder)
}

func (h *Handler) initOrder(w http.ResponseWriter, r *http.Request) {
	h.withOrder(w, r, h.orders.InitOrder)
}

func (h *Handler) saveChanges(w http.ResponseWriter, r *http.Request) {
	h.withOrder(w, r, h.orders.SaveChanges)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	h.withOrder(w, r, h.orders.UpdateOrder)
}

func (h *Handler) alterOrder(w http.ResponseWriter, r *http.Request) {
	var info domain.OrderAlterInfo
	if err := decode(r, &info); err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := h.orders.AlterOrder(r.Context(), info)
	reply(h, w, r, resp, err)
}

func (h *Handler) getSoldTickets(w http.ResponseWriter, r *http.Request) {
	var seat domain.Seat
	if err := decode(r, &seat); err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := h.orders.GetSoldTickets(r.Context(), seat)
	reply(h, w, r, resp, err)
}

func (h *Handler) queryOrders(w http.ResponseWriter, r *http.Request) {
	var criteria domain.OrderQueryCriteria
	if err := decode(r, &criteria); err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := h.orders.QueryOrders(r.Context(), criteria, criteria.LoginID)
	reply(h, w, r, resp, err)
}

func (h *Handler) queryOrdersForRefresh(w http.ResponseWriter, r *http.Request) {
	var criteria domain.OrderQueryCriteria
	if err := decode(r, &criteria); err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := h.orders.QueryOrdersForRefresh(r.Context(), criteria, criteria.LoginID)
	reply(h, w, r, resp, err)
}

func (h *Handler) queryForStationID(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if err := decode(r, &ids); err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := h.orders.QueryForStationID(r.Context(), ids)
	reply(h, w, r, resp, err)
}

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orders.GetAllOrders(r.Context())
	reply(h, w, r, resp, err)
}

func (h *Handler) getOrderByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orders.GetOrderByID(r.Context(), chi.URLParam(r, "orderId"))
	reply(h, w, r, resp, err)
}

func (h *Handler) findOrderByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orders.FindOrderByID(r.Context(), chi.URLParam(r, "orderId"))
	reply(h, w, r, resp, err)
}

func (h *Handler) getOrderPrice(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orders.GetOrderPrice(r.Context(), chi.URLParam(r, "orderId"))
	reply(h, w, r, resp, err)
}

func (h *Handler) payOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orders.PayOrder(r.Context(), chi.URLParam(r, "orderId"))
	reply(h, w, r, resp, err)
}

func (h *Handler) modifyOrder(w http.ResponseWriter, r *http.Request) {
	status, err := strconv.Atoi(chi.URLParam(r, "status"))
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: status must be an integer", errBadRequest))
		return
	}
	resp, err := h.orders.ModifyOrder(r.Context(), chi.URLParam(r, "orderId"), domain.OrderStatus(status))
	reply(h, w, r, resp, err)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orders.CancelOrder(r.Context(), chi.URLParam(r, "orderId"), chi.URLParam(r, "accountId"))
	reply(h, w, r, resp, err)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orders.DeleteOrder(r.Context(), chi.URLParam(r, "orderId"))
	reply(h, w, r, resp, err)
}

func (h *Handler) checkSecurityAboutOrder(w http.ResponseWriter, r *http.Request) {
	checkDate := pathDateTime(chi.URLParam(r, "checkDate"))
	resp, err := h.orders.CheckSecurityAboutOrder(r.Context(), checkDate, chi.URLParam(r, "accountId"))
	reply(h, w, r, resp, err)
}

func (h *Handler) queryAlreadySoldOrders(w http.ResponseWriter, r *http.Request) {
	travelDate := pathDateTime(chi.URLParam(r, "travelDate"))
	resp, err := h.orders.QueryAlreadySoldOrders(r.Context(), travelDate, chi.URLParam(r, "trainNumber"))
	reply(h, w, r, resp, err)
}

// pathDateTime дополняет дату без времени из пути до полного формата.
func pathDateTime(value string) string {
	if len(value) == len(domain.DateLayout) {
		return value + " 00:00:00"
	}
	return value
}
