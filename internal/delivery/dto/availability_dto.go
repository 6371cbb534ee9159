package dto

// ServiceResponse is one entry of the fixed service catalog.
type ServiceResponse struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
}

// AvailabilityResponse feeds the public booking calendar: dates the widget
// must grey out plus the weekend flags so it can pre-disable weekends.
type AvailabilityResponse struct {
	UnavailableDates []string          `json:"unavailable_dates"`
	BlockSaturdays   bool              `json:"block_saturdays"`
	BlockSundays     bool              `json:"block_sundays"`
	Services         []ServiceResponse `json:"services"`
}
