package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/chronoluxe/app/requests"
	"github.com/shashiranjanraj/chronoluxe/app/services"
	"github.com/shashiranjanraj/chronoluxe/pkg/bind"
	"github.com/shashiranjanraj/chronoluxe/pkg/response"
)

// OrderController exposes order placement, lifecycle, and statistics
// endpoints.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var req requests.CreateOrder
	if err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	order, err := c.service.Place(req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, order, "Order created successfully")
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	order, err := c.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, order)
}

func (c *OrderController) ListByUser(w http.ResponseWriter, r *http.Request) {
	orders := c.service.ListByUser(chi.URLParam(r, "userId"))
	response.List(w, orders, len(orders))
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders := c.service.List(services.OrderFilters{
		Status:        q.Get("status"),
		PaymentStatus: q.Get("paymentStatus"),
	})
	response.List(w, orders, len(orders))
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req requests.UpdateOrderStatus
	if err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	order, err := c.service.UpdateStatus(chi.URLParam(r, "id"), req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OKMessage(w, order, "Order status updated to "+req.Status)
}

func (c *OrderController) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req requests.UpdatePaymentStatus
	if err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	order, err := c.service.UpdatePayment(chi.URLParam(r, "id"), req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OKMessage(w, order, "Payment status updated to "+req.PaymentStatus)
}

func (c *OrderController) Cancel(w http.ResponseWriter, r *http.Request) {
	var req requests.CancelOrder
	if err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if err := requests.Validate(req); err != nil {
		response.FromError(w, err)
		return
	}

	order, err := c.service.Cancel(chi.URLParam(r, "id"), req.UserID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OKMessage(w, order, "Order cancelled successfully")
}

func (c *OrderController) Statistics(w http.ResponseWriter, r *http.Request) {
	response.OK(w, c.service.GetStatistics())
}
