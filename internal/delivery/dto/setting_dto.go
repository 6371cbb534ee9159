package dto

// UpdateSettingsRequest is the whole-batch settings form. Limits and Prices
// are keyed by weekday name (lunes..sabado) and service key respectively;
// an empty limit falls back to the unlimited default.
type UpdateSettingsRequest struct {
	BlockSaturdays bool              `json:"block_saturdays"`
	BlockSundays   bool              `json:"block_sundays"`
	Limits         map[string]string `json:"limits" validate:"omitempty,dive,keys,oneof=lunes martes miercoles jueves viernes sabado,endkeys"`
	Prices         map[string]string `json:"prices" validate:"omitempty,dive,keys,oneof=ginecologica mama post biopsia resultados,endkeys"`
}

type SettingsResponse struct {
	BlockSaturdays bool              `json:"block_saturdays"`
	BlockSundays   bool              `json:"block_sundays"`
	Limits         map[string]string `json:"limits"`
	Prices         map[string]string `json:"prices"`
}
