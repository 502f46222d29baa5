package dto

type CurrencyTotalDTO struct {
	Currency string  `json:"currency" example:"GEL"`
	Total    float64 `json:"total" example:"1250.5"`
}

type CarStatusCountDTO struct {
	Status string `json:"status" example:"active"`
	Count  int    `json:"count" example:"3"`
}

type DashboardResponseDTO struct {
	Income        []CurrencyTotalDTO  `json:"income"`
	Expenses      []CurrencyTotalDTO  `json:"expenses"`
	Cars          []CarStatusCountDTO `json:"cars"`
	ActiveRentals int                 `json:"activeRentals" example:"2"`
}
