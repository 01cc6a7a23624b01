package entities

import "time"

// OrderStatus is the order lifecycle:
//
//	draft -> pending -> confirmed -> preparing -> ready -> delivered
//
// with cancelled reachable from any non-terminal state. The storefront core
// only drives draft -> pending (submission); later transitions are applied
// by the admin panel.

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusLabels keeps the storefront's fixed locale (Persian), as baked into
// the sample data.
var statusLabels = map[OrderStatus]string{
	OrderStatusDraft:     "پیش‌نویس",
	OrderStatusPending:   "در انتظار بررسی",
	OrderStatusConfirmed: "تایید شده",
	OrderStatusPreparing: "در حال آماده‌سازی",
	OrderStatusReady:     "آماده تحویل",
	OrderStatusDelivered: "تحویل داده شده",
	OrderStatusCancelled: "لغو شده",
}

// Label returns the display text for the status, falling back to the raw
// status value for unknown entries.
func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// nextStatus maps each state to its single forward successor.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusDraft:     OrderStatusPending,
	OrderStatusPending:   OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusDelivered,
}

// CanTransition reports whether moving from s to target is a legal step in
// the lifecycle. Cancellation is allowed from every non-terminal state.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	if target == OrderStatusCancelled {
		return !s.Terminal()
	}
	return nextStatus[s] == target
}

// SelectedOption records one customization choice on an order item:
// the option id and the index of the chosen value.

type SelectedOption struct {
	OptionID   int `json:"option_id"`
	ValueIndex int `json:"value_index"`
}

// OrderItem is a line item. ServiceTitle and UnitPrice are snapshots taken
// at add time so later catalog edits do not rewrite order history.
//
// Invariant: TotalPrice always equals
// UnitPrice * Quantity + the sum of the selected option deltas after every
// mutation. The draft manager recomputes it from scratch, never adjusts it
// incrementally.

type OrderItem struct {
	ID           string           `json:"id"`
	ServiceID    int              `json:"service_id"`
	ServiceTitle string           `json:"service_title"`
	Quantity     int              `json:"quantity"`
	UnitPrice    int64            `json:"unit_price"`
	OptionsPrice int64            `json:"options_price"`
	TotalPrice   int64            `json:"total_price"`
	Options      []SelectedOption `json:"options"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Attachment is file metadata attached to an order. The bytes themselves are
// never persisted by this core.

type Attachment struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// CustomerInfo is the customer snapshot stamped on submission.

type CustomerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Order is both the single in-progress draft (status draft, stored under
// `draft_order`) and a finalized entry in the `orders` collection.
//
// TotalAmount is derived, never authoritative: it is recomputed as a full
// fold over the items after every mutation.

type Order struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customer_id,omitempty"`
	CustomerInfo *CustomerInfo `json:"customer_info,omitempty"`
	Items        []OrderItem   `json:"items"`
	TotalAmount  int64         `json:"total_amount"`
	Status       OrderStatus   `json:"status"`
	Notes        string        `json:"notes"`
	Attachments  []Attachment  `json:"attachments"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	SubmittedAt  *time.Time    `json:"submitted_at,omitempty"`
	ConfirmedAt  *time.Time    `json:"confirmed_at,omitempty"`
	PreparingAt  *time.Time    `json:"preparing_at,omitempty"`
	ReadyAt      *time.Time    `json:"ready_at,omitempty"`
	DeliveredAt  *time.Time    `json:"delivered_at,omitempty"`
	CancelledAt  *time.Time    `json:"cancelled_at,omitempty"`
}

// RecomputeTotal folds the item totals into TotalAmount.
func (o *Order) RecomputeTotal() {
	var total int64
	for _, it := range o.Items {
		total += it.TotalPrice
	}
	o.TotalAmount = total
}

// TimelineEntry is one row of the order history view.

type TimelineEntry struct {
	Status OrderStatus `json:"status"`
	Label  string      `json:"label"`
	Date   time.Time   `json:"date"`
}

// Timeline builds the ordered status history for display. Creation and
// submission rows are always present; later rows appear once their
// timestamps are stamped by status updates.
func (o Order) Timeline() []TimelineEntry {
	submitted := o.CreatedAt
	if o.SubmittedAt != nil {
		submitted = *o.SubmittedAt
	}
	tl := []TimelineEntry{
		{Status: OrderStatusDraft, Label: "ایجاد سفارش", Date: o.CreatedAt},
		{Status: OrderStatusPending, Label: "ثبت سفارش", Date: submitted},
	}
	if o.ConfirmedAt != nil {
		tl = append(tl, TimelineEntry{Status: OrderStatusConfirmed, Label: "تایید سفارش", Date: *o.ConfirmedAt})
	}
	if o.PreparingAt != nil {
		tl = append(tl, TimelineEntry{Status: OrderStatusPreparing, Label: "شروع آماده‌سازی", Date: *o.PreparingAt})
	}
	if o.ReadyAt != nil {
		tl = append(tl, TimelineEntry{Status: OrderStatusReady, Label: "آماده تحویل", Date: *o.ReadyAt})
	}
	if o.DeliveredAt != nil {
		tl = append(tl, TimelineEntry{Status: OrderStatusDelivered, Label: "تحویل داده شده", Date: *o.DeliveredAt})
	}
	if o.CancelledAt != nil {
		tl = append(tl, TimelineEntry{Status: OrderStatusCancelled, Label: "لغو سفارش", Date: *o.CancelledAt})
	}
	return tl
}
