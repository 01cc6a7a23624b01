package entities

// Category groups services in the catalog.

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ServiceOption is one named axis of customization for a service
// (e.g. size). Values and Prices are aligned by index: Prices[i] is the
// price delta applied when Values[i] is selected. An out-of-range index
// is a defined validation error, never undefined behavior.

type ServiceOption struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
	Prices []int64  `json:"prices"`
}

// DeltaAt returns the price delta for the value at index i.
func (o ServiceOption) DeltaAt(i int) (int64, bool) {
	if i < 0 || i >= len(o.Prices) || i >= len(o.Values) {
		return 0, false
	}
	return o.Prices[i], true
}

// Service is a catalog entry. Price is the base price in the smallest
// currency unit (toman); option deltas are added on top per selection.

type Service struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       int64           `json:"price"`
	CategoryID  int             `json:"category_id"`
	Image       string          `json:"image"`
	Options     []ServiceOption `json:"options"`
}

// OptionByID resolves one of the service's options.
func (s Service) OptionByID(id int) (ServiceOption, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return ServiceOption{}, false
}
