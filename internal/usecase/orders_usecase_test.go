package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	mock_interfaces "github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrdersUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrdersUseCase(repo)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusPending}, nil)
	order, err := uc.GetByID(ctx, "ORD-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "ORD-1" {
		t.Fatalf("unexpected order: %+v", order)
	}

	repo.EXPECT().GetByID(ctx, "missing").Return(entities.Order{}, nil)
	if _, err := uc.GetByID(ctx, "missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrdersUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("valid transition stamps the timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrdersUseCase(repo)

		repo.EXPECT().GetByID(ctx, "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusPending}, nil)
		repo.EXPECT().Update(ctx, "ORD-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusConfirmed {
					t.Fatalf("expected confirmed status, got %s", o.Status)
				}
				if o.ConfirmedAt == nil || time.Since(*o.ConfirmedAt) > time.Minute {
					t.Fatalf("expected fresh ConfirmedAt, got %v", o.ConfirmedAt)
				}
				return o, nil
			})

		order, err := uc.UpdateStatus(ctx, "ORD-1", entities.OrderStatusConfirmed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.OrderStatusConfirmed {
			t.Fatalf("unexpected order: %+v", order)
		}
	})

	t.Run("skipping lifecycle steps is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrdersUseCase(repo)

		repo.EXPECT().GetByID(ctx, "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusPending}, nil)
		if _, err := uc.UpdateStatus(ctx, "ORD-1", entities.OrderStatusReady); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrdersUseCase(repo)

		repo.EXPECT().GetByID(ctx, "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusDelivered}, nil)
		if _, err := uc.UpdateStatus(ctx, "ORD-1", entities.OrderStatusPending); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("cancellation from any active state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrdersUseCase(repo)

		repo.EXPECT().GetByID(ctx, "ORD-1").Return(entities.Order{ID: "ORD-1", Status: entities.OrderStatusPreparing}, nil)
		repo.EXPECT().Update(ctx, "ORD-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, o entities.Order) (entities.Order, error) {
				return o, nil
			})

		order, err := uc.UpdateStatus(ctx, "ORD-1", entities.OrderStatusCancelled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.CancelledAt == nil {
			t.Fatalf("expected CancelledAt stamp, got %+v", order)
		}
	})
}

func TestOrdersUseCase_Timeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrdersUseCase(repo)
	ctx := context.Background()

	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	submitted := created.Add(5 * time.Minute)
	confirmed := created.Add(10 * time.Minute)
	repo.EXPECT().GetByID(ctx, "ORD-1").Return(entities.Order{
		ID:          "ORD-1",
		Status:      entities.OrderStatusConfirmed,
		CreatedAt:   created,
		SubmittedAt: &submitted,
		ConfirmedAt: &confirmed,
	}, nil)

	entries, err := uc.Timeline(ctx, "ORD-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 timeline entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.Before(entries[i-1].Date) {
			t.Fatalf("timeline out of order: %+v", entries)
		}
	}
}
