package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// IOrdersUseCase reads submitted orders and applies the admin-side status
// transitions of the order lifecycle.

type IOrdersUseCase interface {
	ListAll(ctx context.Context) ([]entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Timeline(ctx context.Context, id string) ([]entities.TimelineEntry, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrdersUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IOrdersUseCase = (*OrdersUseCase)(nil)

func NewOrdersUseCase(orders interfaces.IOrderRepository) *OrdersUseCase {
	return &OrdersUseCase{orders: orders}
}

func (u *OrdersUseCase) ListAll(ctx context.Context) ([]entities.Order, error) {
	return u.orders.GetAll(ctx)
}

func (u *OrdersUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

func (u *OrdersUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrdersUseCase) Timeline(ctx context.Context, id string) ([]entities.TimelineEntry, error) {
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return order.Timeline(), nil
}

// UpdateStatus applies one lifecycle step, stamping the matching timestamp.
// Transitions outside the state machine fail with
// ErrInvalidStatusTransition.
func (u *OrdersUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.Status.CanTransition(status) {
		return entities.Order{}, ErrInvalidStatusTransition
	}

	now := time.Now()
	order.Status = status
	order.UpdatedAt = now
	switch status {
	case entities.OrderStatusConfirmed:
		order.ConfirmedAt = &now
	case entities.OrderStatusPreparing:
		order.PreparingAt = &now
	case entities.OrderStatusReady:
		order.ReadyAt = &now
	case entities.OrderStatusDelivered:
		order.DeliveredAt = &now
	case entities.OrderStatusCancelled:
		order.CancelledAt = &now
	}

	updated, err := u.orders.Update(ctx, id, order)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}
