package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rezaesmaeili3562-spec/login.b/internal/adapter/persistence/repository"
	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/infrastructure/storage"
	mock_interfaces "github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newDraftFixture(t *testing.T) (*OrderDraftUseCase, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	if err := repository.InitializeSampleData(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := NewOrderDraftUseCase(
		repository.NewDraftStore(store),
		repository.NewServiceStoreRepository(store),
		repository.NewOrderStoreRepository(store),
	)
	return uc, store
}

func TestOrderDraftUseCase_FreshDraft(t *testing.T) {
	uc, _ := newDraftFixture(t)
	order, err := uc.CurrentOrder(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Fatalf("unexpected order id: %q", order.ID)
	}
	if order.Status != entities.OrderStatusDraft || len(order.Items) != 0 || order.TotalAmount != 0 {
		t.Fatalf("unexpected fresh draft: %+v", order)
	}
}

func TestOrderDraftUseCase_AddItemPricing(t *testing.T) {
	uc, _ := newDraftFixture(t)
	ctx := context.Background()

	// Service 1 (25000) with size -> index 2 (+10000) and milk -> index 1 (+3000).
	item, err := uc.AddItem(ctx, 1, []entities.SelectedOption{
		{OptionID: 1, ValueIndex: 2},
		{OptionID: 2, ValueIndex: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.TotalPrice != 38000 {
		t.Fatalf("expected item total 38000, got %d", item.TotalPrice)
	}
	if item.Quantity != 1 || item.UnitPrice != 25000 || item.ServiceTitle == "" {
		t.Fatalf("unexpected item: %+v", item)
	}

	// Service 2 (15000) without options.
	if _, err := uc.AddItem(ctx, 2, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, err := uc.CurrentOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.TotalAmount != 53000 {
		t.Fatalf("expected order total 53000, got %d", order.TotalAmount)
	}

	// Removing the second item folds the total back down.
	if err := uc.RemoveItem(ctx, order.Items[1].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, _ = uc.CurrentOrder(ctx)
	if order.TotalAmount != 38000 {
		t.Fatalf("expected order total 38000, got %d", order.TotalAmount)
	}
}

func TestOrderDraftUseCase_AddItemValidation(t *testing.T) {
	uc, _ := newDraftFixture(t)
	ctx := context.Background()

	if _, err := uc.AddItem(ctx, 99, nil); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
	if _, err := uc.AddItem(ctx, 1, []entities.SelectedOption{{OptionID: 9, ValueIndex: 0}}); !errors.Is(err, ErrInvalidOptionSelection) {
		t.Fatalf("expected ErrInvalidOptionSelection for unknown option, got %v", err)
	}
	if _, err := uc.AddItem(ctx, 1, []entities.SelectedOption{{OptionID: 1, ValueIndex: 5}}); !errors.Is(err, ErrInvalidOptionSelection) {
		t.Fatalf("expected ErrInvalidOptionSelection for out-of-range index, got %v", err)
	}

	// Failed additions must not leave partial items behind.
	order, _ := uc.CurrentOrder(ctx)
	if len(order.Items) != 0 || order.TotalAmount != 0 {
		t.Fatalf("expected untouched draft, got %+v", order)
	}
}

func TestOrderDraftUseCase_QuantityAndTotals(t *testing.T) {
	uc, _ := newDraftFixture(t)
	ctx := context.Background()

	item, err := uc.AddItem(ctx, 1, []entities.SelectedOption{{OptionID: 1, ValueIndex: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.UpdateQuantity(ctx, item.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for zero, got %v", err)
	}
	if err := uc.UpdateQuantity(ctx, "missing", 2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for absent item, got %v", err)
	}

	if err := uc.UpdateQuantity(ctx, item.ID, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, _ := uc.CurrentOrder(ctx)
	// 25000*3 + 5000 option delta.
	if order.Items[0].TotalPrice != 80000 || order.TotalAmount != 80000 {
		t.Fatalf("unexpected totals: item=%d order=%d", order.Items[0].TotalPrice, order.TotalAmount)
	}

	// Removing an absent id is a no-op, not an error.
	if err := uc.RemoveItem(ctx, "missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, _ = uc.CurrentOrder(ctx)
	if len(order.Items) != 1 {
		t.Fatalf("expected item kept, got %d", len(order.Items))
	}
}

func TestOrderDraftUseCase_NotesAndAttachments(t *testing.T) {
	uc, _ := newDraftFixture(t)
	ctx := context.Background()

	if err := uc.UpdateNotes(ctx, "بدون شکر"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	att, err := uc.AddAttachment(ctx, AttachmentInput{Filename: "design.pdf", Size: 4096, MimeType: "application/pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, _ := uc.CurrentOrder(ctx)
	if order.Notes != "بدون شکر" || len(order.Attachments) != 1 {
		t.Fatalf("unexpected draft: %+v", order)
	}

	if err := uc.RemoveAttachment(ctx, "missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.RemoveAttachment(ctx, att.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, _ = uc.CurrentOrder(ctx)
	if len(order.Attachments) != 0 {
		t.Fatalf("expected attachment removed, got %+v", order.Attachments)
	}
}

func TestOrderDraftUseCase_DraftSurvivesRestart(t *testing.T) {
	uc, store := newDraftFixture(t)
	ctx := context.Background()

	if _, err := uc.AddItem(ctx, 2, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, _ := uc.CurrentOrder(ctx)

	// A new manager over the same store restores the persisted draft.
	restarted := NewOrderDraftUseCase(
		repository.NewDraftStore(store),
		repository.NewServiceStoreRepository(store),
		repository.NewOrderStoreRepository(store),
	)
	after, err := restarted.CurrentOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.ID != before.ID || len(after.Items) != 1 || after.TotalAmount != 15000 {
		t.Fatalf("expected restored draft, got %+v", after)
	}
}

func TestOrderDraftUseCase_SubmitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart", func(t *testing.T) {
		uc, _ := newDraftFixture(t)
		if _, err := uc.SubmitOrder(ctx, nil); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
		order, _ := uc.CurrentOrder(ctx)
		if order.Status != entities.OrderStatusDraft {
			t.Fatalf("expected draft unchanged, got %+v", order)
		}
	})

	t.Run("moves exactly one order and resets the draft", func(t *testing.T) {
		uc, store := newDraftFixture(t)
		if _, err := uc.AddItem(ctx, 1, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		draftBefore, _ := uc.CurrentOrder(ctx)

		customer := &entities.CustomerInfo{ID: "u-1", Name: "علی", Phone: "09120000000"}
		submitted, err := uc.SubmitOrder(ctx, customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if submitted.Status != entities.OrderStatusPending || submitted.SubmittedAt == nil {
			t.Fatalf("unexpected submitted order: %+v", submitted)
		}
		if submitted.CustomerID != "u-1" || submitted.CustomerInfo == nil {
			t.Fatalf("expected customer snapshot, got %+v", submitted)
		}

		orders, err := repository.NewOrderStoreRepository(store).GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 || orders[0].ID != draftBefore.ID {
			t.Fatalf("expected exactly one submitted order, got %+v", orders)
		}

		fresh, _ := uc.CurrentOrder(ctx)
		if fresh.ID == draftBefore.ID || len(fresh.Items) != 0 || fresh.Status != entities.OrderStatusDraft {
			t.Fatalf("expected fresh draft with new id, got %+v", fresh)
		}
	})

	t.Run("failed append keeps the draft for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := storage.NewMemoryStore()
		if err := repository.InitializeSampleData(ctx, store); err != nil {
			t.Fatalf("seed: %v", err)
		}
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderDraftUseCase(
			repository.NewDraftStore(store),
			repository.NewServiceStoreRepository(store),
			orders,
		)
		if _, err := uc.AddItem(ctx, 1, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before, _ := uc.CurrentOrder(ctx)

		orders.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("quota exhausted"))
		if _, err := uc.SubmitOrder(ctx, nil); !errors.Is(err, ErrSubmissionFailed) {
			t.Fatalf("expected ErrSubmissionFailed, got %v", err)
		}

		after, _ := uc.CurrentOrder(ctx)
		if after.ID != before.ID || len(after.Items) != 1 || after.Status != entities.OrderStatusDraft {
			t.Fatalf("expected draft preserved for retry, got %+v", after)
		}

		// The retry succeeds without data loss.
		orders.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
		if _, err := uc.SubmitOrder(ctx, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
