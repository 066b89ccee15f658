package models

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOrderDate is returned when OrderDateString does not match
// OrderDateLayout.
var ErrInvalidOrderDate = errors.New("invalid order date")

type OrdersRepository struct {
	store    Store
	records  records[Order, *Order]
	location *time.Location
}

// NewOrdersRepository interprets order date strings in loc.
func NewOrdersRepository(store Store, attempts int, loc *time.Location) *OrdersRepository {
	if loc == nil {
		loc = time.Local
	}
	return &OrdersRepository{
		store:    store,
		records:  records[Order, *Order]{coll: store.Orders(), attempts: attempts, name: "order"},
		location: loc,
	}
}

func (r *OrdersRepository) parseOrderDate(order *Order) error {
	t, err := time.ParseInLocation(OrderDateLayout, order.OrderDateString, r.location)
	if err != nil {
		return fmt.Errorf("%w: %q does not match %q", ErrInvalidOrderDate, order.OrderDateString, OrderDateLayout)
	}
	order.OrderDate = t
	return nil
}

// CreateOrder parses the order date and numbers the variations before the
// order is stored. Nothing is written when the date is malformed.
func (r *OrdersRepository) CreateOrder(ctx context.Context, order *Order) error {
	if err := r.parseOrderDate(order); err != nil {
		return err
	}
	if order.HasVariations && order.Variations != nil {
		NumberVariations(order.Variations)
	}
	return r.records.create(ctx, order)
}

func (r *OrdersRepository) GetAllOrders(ctx context.Context) ([]Order, error) {
	return r.records.all(ctx)
}

func (r *OrdersRepository) GetOrder(ctx context.Context, id int) (*Order, error) {
	return r.records.get(ctx, id)
}

func (r *OrdersRepository) UpdateOrder(ctx context.Context, id int, order *Order) error {
	if err := r.parseOrderDate(order); err != nil {
		return err
	}
	return r.records.replace(ctx, id, order)
}

func (r *OrdersRepository) DeleteOrder(ctx context.Context, id int) error {
	return r.records.delete(ctx, id)
}

// GetOrdersBetween returns every order dated within [start, end].
func (r *OrdersRepository) GetOrdersBetween(ctx context.Context, start, end time.Time) ([]Order, error) {
	orders, err := r.store.FindOrdersBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("find orders between %s and %s: %w", start, end, err)
	}
	return orders, nil
}
