package response

import (
	"time"

	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
)

type SelectedOptionResponse struct {
	OptionID   int `json:"option_id"`
	ValueIndex int `json:"value_index"`
}

type OrderItemResponse struct {
	ID           string                   `json:"id"`
	ServiceID    int                      `json:"service_id"`
	ServiceTitle string                   `json:"service_title"`
	Quantity     int                      `json:"quantity"`
	UnitPrice    int64                    `json:"unit_price"`
	TotalPrice   int64                    `json:"total_price"`
	Options      []SelectedOptionResponse `json:"options"`
}

type AttachmentResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type OrderResponse struct {
	ID          string               `json:"id"`
	CustomerID  string               `json:"customer_id,omitempty"`
	Items       []OrderItemResponse  `json:"items"`
	TotalAmount int64                `json:"total_amount"`
	Status      string               `json:"status"`
	StatusLabel string               `json:"status_label"`
	Notes       string               `json:"notes"`
	Attachments []AttachmentResponse `json:"attachments"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	SubmittedAt *time.Time           `json:"submitted_at,omitempty"`
}

type TimelineEntryResponse struct {
	Status string    `json:"status"`
	Label  string    `json:"label"`
	Date   time.Time `json:"date"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		options := make([]SelectedOptionResponse, 0, len(it.Options))
		for _, sel := range it.Options {
			options = append(options, SelectedOptionResponse{OptionID: sel.OptionID, ValueIndex: sel.ValueIndex})
		}
		items = append(items, OrderItemResponse{
			ID:           it.ID,
			ServiceID:    it.ServiceID,
			ServiceTitle: it.ServiceTitle,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TotalPrice:   it.TotalPrice,
			Options:      options,
		})
	}
	attachments := make([]AttachmentResponse, 0, len(o.Attachments))
	for _, att := range o.Attachments {
		attachments = append(attachments, AttachmentResponse{
			ID:         att.ID,
			Filename:   att.Filename,
			Size:       att.Size,
			MimeType:   att.MimeType,
			UploadedAt: att.UploadedAt,
		})
	}
	return OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		Notes:       o.Notes,
		Attachments: attachments,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		SubmittedAt: o.SubmittedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromTimeline(entries []entities.TimelineEntry) []TimelineEntryResponse {
	out := make([]TimelineEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, TimelineEntryResponse{
			Status: string(e.Status),
			Label:  e.Label,
			Date:   e.Date,
		})
	}
	return out
}
