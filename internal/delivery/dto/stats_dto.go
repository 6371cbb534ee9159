package dto

// StatsResponse aggregates appointment volume over a date range.
type StatsResponse struct {
	From      string         `json:"from"`
	To        string         `json:"to"`
	Total     int            `json:"total"`
	ByReason  map[string]int `json:"by_reason"`
	ByMonth   map[string]int `json:"by_month"`
	ByWeekday map[string]int `json:"by_weekday"`
}
