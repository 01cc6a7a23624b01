package request

import (
	"github.com/rezaesmaeili3562-spec/login.b/internal/domain/entities"
)

type SelectedOptionRequest struct {
	OptionID   int `json:"option_id" binding:"required"`
	ValueIndex int `json:"value_index"`
}

type AddItemRequest struct {
	ServiceID int                     `json:"service_id" binding:"required"`
	Options   []SelectedOptionRequest `json:"options"`
}

// ToSelections maps the payload onto the domain selection type.
func (r AddItemRequest) ToSelections() []entities.SelectedOption {
	selections := make([]entities.SelectedOption, 0, len(r.Options))
	for _, o := range r.Options {
		selections = append(selections, entities.SelectedOption{
			OptionID:   o.OptionID,
			ValueIndex: o.ValueIndex,
		})
	}
	return selections
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type AddAttachmentRequest struct {
	Filename string `json:"filename" binding:"required"`
	Size     int64  `json:"size"`
	MimeType string `json:"type"`
}
