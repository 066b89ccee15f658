package orders

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ressit/ressit-pos-api/app/respond"
	"github.com/ressit/ressit-pos-api/models"
)

type OrderProvider interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id int) (*models.Order, error)
	UpdateOrder(ctx context.Context, id int, order *models.Order) error
	DeleteOrder(ctx context.Context, id int) error
}

type OrderHandler struct {
	repo OrderProvider
	log  *zap.Logger
}

func NewOrderHandler(r OrderProvider, log *zap.Logger) *OrderHandler {
	return &OrderHandler{repo: r, log: log}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/createOrder", h.HandleCreate)
	r.Get("/getAllOrders", h.HandleGetAll)
	r.Get("/getOrder/{id}", h.HandleGet)
	r.Put("/updateOrder/{id}", h.HandleUpdate)
	r.Delete("/deleteOrder/{id}", h.HandleDelete)
}

func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := respond.Decode(r, &order); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.CreateOrder(r.Context(), &order); err != nil {
		h.fail(w, "create order", err)
		return
	}

	h.log.Debug("order created",
		zap.Int("order_id", order.ID),
		zap.String("category", order.CategoryName),
		zap.Stringer("total", order.TotalPrice),
	)
	w.Header().Set("Location", "/getOrder/"+strconv.Itoa(order.ID))
	respond.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.GetAllOrders(r.Context())
	if err != nil {
		h.log.Error("list orders", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}
	respond.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.repo.GetOrder(r.Context(), id)
	if err != nil {
		h.fail(w, "get order", err)
		return
	}
	respond.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var order models.Order
	if err := respond.Decode(r, &order); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.UpdateOrder(r.Context(), id, &order); err != nil {
		h.fail(w, "update order", err)
		return
	}
	respond.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := h.repo.DeleteOrder(r.Context(), id); err != nil {
		h.fail(w, "delete order", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *OrderHandler) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidOrderDate):
		respond.Error(w, http.StatusBadRequest, "orderDateString must look like 2024-05-17 / 13:45")
	case errors.Is(err, models.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Order not found")
	default:
		h.log.Error(op, zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to "+op)
	}
}
