package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrInvalidOptionSelection = errors.New("invalid option selection")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrSubmissionFailed       = errors.New("order submission failed")
)

// AttachmentInput is the metadata recorded for an uploaded file. The file
// bytes are never persisted.

type AttachmentInput struct {
	Filename string
	Size     int64
	MimeType string
}

// IOrderDraftUseCase builds the single in-progress draft order: line items
// with computed pricing, attachments and notes, with the total recomputed
// and the draft persisted after every mutation.

type IOrderDraftUseCase interface {
	CurrentOrder(ctx context.Context) (entities.Order, error)
	AddItem(ctx context.Context, serviceID int, selections []entities.SelectedOption) (entities.OrderItem, error)
	RemoveItem(ctx context.Context, itemID string) error
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error
	UpdateNotes(ctx context.Context, notes string) error
	AddAttachment(ctx context.Context, in AttachmentInput) (entities.Attachment, error)
	RemoveAttachment(ctx context.Context, attachmentID string) error
	SubmitOrder(ctx context.Context, customer *entities.CustomerInfo) (entities.Order, error)
}

// OrderDraftUseCase exclusively owns the in-memory draft; the draft store is
// the durable backing, read once and rewritten after every mutating call
// (write-through, no batching).
//
// All mutations are serialized behind the mutex, so the submit sequence
// (append to orders, then clear the draft) cannot interleave with another
// mutation in this process. Cross-process writers remain last-write-wins
// per the store contract.

type OrderDraftUseCase struct {
	drafts   interfaces.IDraftStore
	services interfaces.IServiceRepository
	orders   interfaces.IOrderRepository

	mu      sync.Mutex
	current *entities.Order
}

var _ IOrderDraftUseCase = (*OrderDraftUseCase)(nil)

func NewOrderDraftUseCase(drafts interfaces.IDraftStore, services interfaces.IServiceRepository, orders interfaces.IOrderRepository) *OrderDraftUseCase {
	return &OrderDraftUseCase{drafts: drafts, services: services, orders: orders}
}

// newOrderID keeps the storefront's id format: ORD-<timestamp>-<4 digits>.
func newOrderID() string {
	return fmt.Sprintf("ORD-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}

func freshDraft() entities.Order {
	now := time.Now()
	return entities.Order{
		ID:          newOrderID(),
		Items:       []entities.OrderItem{},
		TotalAmount: 0,
		Status:      entities.OrderStatusDraft,
		Attachments: []entities.Attachment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ensureDraft restores the persisted draft or creates a fresh one.
// Callers must hold the mutex.
func (u *OrderDraftUseCase) ensureDraft(ctx context.Context) (*entities.Order, error) {
	if u.current != nil {
		return u.current, nil
	}
	draft, found, err := u.drafts.LoadDraft(ctx)
	if err != nil {
		return nil, err
	}
	if !found || draft.ID == "" {
		draft = freshDraft()
	}
	if draft.Items == nil {
		draft.Items = []entities.OrderItem{}
	}
	if draft.Attachments == nil {
		draft.Attachments = []entities.Attachment{}
	}
	u.current = &draft
	return u.current, nil
}

// persist recomputes the derived total as a full fold over the items and
// writes the draft through. Recomputation, not incremental adjustment, is
// the contract; a running counter would drift on partial updates.
func (u *OrderDraftUseCase) persist(ctx context.Context, draft *entities.Order) error {
	draft.RecomputeTotal()
	draft.UpdatedAt = time.Now()
	if err := u.drafts.SaveDraft(ctx, *draft); err != nil {
		logger.Error().Err(err).Str("order_id", draft.ID).Msg("failed persisting draft order")
		return err
	}
	return nil
}

func (u *OrderDraftUseCase) CurrentOrder(ctx context.Context) (entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	draft, err := u.ensureDraft(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	return *draft, nil
}

// itemTotal applies the pricing formula: unit price times quantity plus the
// sum of the selected option deltas.
func itemTotal(unitPrice int64, quantity int, optionsPrice int64) int64 {
	return unitPrice*int64(quantity) + optionsPrice
}

// AddItem resolves the service, validates every option selection against the
// catalog and appends a new line item with quantity 1. An unknown option id
// or an out-of-range value index fails with ErrInvalidOptionSelection
// instead of being silently skipped.
func (u *OrderDraftUseCase) AddItem(ctx context.Context, serviceID int, selections []entities.SelectedOption) (entities.OrderItem, error) {
	service, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if service.ID == 0 {
		return entities.OrderItem{}, ErrServiceNotFound
	}

	var optionsPrice int64
	for _, sel := range selections {
		opt, ok := service.OptionByID(sel.OptionID)
		if !ok {
			return entities.OrderItem{}, fmt.Errorf("%w: option %d", ErrInvalidOptionSelection, sel.OptionID)
		}
		delta, ok := opt.DeltaAt(sel.ValueIndex)
		if !ok {
			return entities.OrderItem{}, fmt.Errorf("%w: option %d value index %d", ErrInvalidOptionSelection, sel.OptionID, sel.ValueIndex)
		}
		optionsPrice += delta
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	draft, err := u.ensureDraft(ctx)
	if err != nil {
		return entities.OrderItem{}, err
	}

	item := entities.OrderItem{
		ID:           uuid.NewString(),
		ServiceID:    service.ID,
		ServiceTitle: service.Title,
		Quantity:     1,
		UnitPrice:    service.Price,
		OptionsPrice: optionsPrice,
		TotalPrice:   itemTotal(service.Price, 1, optionsPrice),
		Options:      selections,
		CreatedAt:    time.Now(),
	}
	draft.Items = append(draft.Items, item)
	if err := u.persist(ctx, draft); err != nil {
		return entities.OrderItem{}, err
	}
	return item, nil
}

// RemoveItem drops the item with the given id. An absent id is a no-op, not
// an error: filtering an already-absent id yields the same list.
func (u *OrderDraftUseCase) RemoveItem(ctx context.Context, itemID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	draft, err := u.ensureDraft(ctx)
	if err != nil {
		return err
	}

	kept := draft.Items[:0]
	for _, it := range draft.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	draft.Items = kept
	return u.persist(ctx, draft)
}

// UpdateQuantity sets the quantity of an existing item and recomputes its
// total. A non-positive quantity or an absent item id fails with
// ErrInvalidQuantity.
func (u *OrderDraftUseCase) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	draft, err := u.ensureDraft(ctx)
	if err != nil {
		return err
	}

	for i := range draft.Items {
		if draft.Items[i].ID == itemID {
			draft.Items[i].Quantity = quantity
			draft.Items[i].TotalPrice = itemTotal(draft.Items[i].UnitPrice, quantity, draft.Items[i].OptionsPrice)
			return u.persist(ctx, draft)
		}
	}
	return ErrInvalidQuantity
}

func (u *OrderDraftUseCase) UpdateNotes(ctx context.Context, notes string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	draft, err := u.ensureDraft(ctx)
	if err != nil {
		return err
	}
	draft.Notes = notes
	return u.persist(ctx, draft)
}

func (u *OrderDraftUseCase) AddAttachment(ctx context.Context, in AttachmentInput) (entities.Attachment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	draft, err := u.ensureDraft(ctx)
	if err != nil {
		return entities.Attachment{}, err
	}

	att := entities.Attachment{
		ID:         uuid.NewString(),
		Filename:   in.Filename,
		Size:       in.Size,
		MimeType:   in.MimeType,
		UploadedAt: time.Now(),
	}
	draft.Attachments = append(draft.Attachments, att)
	if err := u.persist(ctx, draft); err != nil {
		return entities.Attachment{}, err
	}
	return att, nil
}

// RemoveAttachment drops the attachment with the given id; absent ids are a
// no-op like RemoveItem.
func (u *OrderDraftUseCase) RemoveAttachment(ctx context.Context, attachmentID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	draft, err := u.ensureDraft(ctx)
	if err != nil {
		return err
	}

	kept := draft.Attachments[:0]
	for _, att := range draft.Attachments {
		if att.ID != attachmentID {
			kept = append(kept, att)
		}
	}
	draft.Attachments = kept
	return u.persist(ctx, draft)
}

// SubmitOrder finalizes the draft: stamps the customer snapshot, moves the
// status to pending and appends the order to the durable collection. The
// draft is cleared only after a successful append; on failure it is kept
// untouched so the caller can retry without losing the cart.
func (u *OrderDraftUseCase) SubmitOrder(ctx context.Context, customer *entities.CustomerInfo) (entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	draft, err := u.ensureDraft(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	if len(draft.Items) == 0 {
		return entities.Order{}, ErrEmptyCart
	}

	final := *draft
	if customer != nil {
		final.CustomerID = customer.ID
		snapshot := *customer
		final.CustomerInfo = &snapshot
	}
	now := time.Now()
	final.Status = entities.OrderStatusPending
	final.SubmittedAt = &now
	final.UpdatedAt = now
	final.RecomputeTotal()

	if err := u.orders.Add(ctx, final); err != nil {
		logger.Error().Err(err).Str("order_id", final.ID).Msg("failed appending submitted order")
		return entities.Order{}, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	if err := u.drafts.ClearDraft(ctx); err != nil {
		// The order is already durable; losing the stale draft key is the
		// lesser problem. Reset memory regardless.
		logger.Error().Err(err).Str("order_id", final.ID).Msg("failed clearing submitted draft")
	}
	next := freshDraft()
	u.current = &next

	return final, nil
}
