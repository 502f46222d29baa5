package dto

import "time"

type CreateRentalRequestDTO struct {
	CarID       int     `json:"car_id" example:"1"`
	ClientName  string  `json:"client_name" validate:"required"`
	ClientPhone string  `json:"client_phone,omitempty"`
	StartDate   string  `json:"start_date" example:"2024-01-10"`
	EndDate     string  `json:"end_date" example:"2024-01-12"`
	DailyPrice  float64 `json:"daily_price" example:"100"`
	Currency    string  `json:"currency" example:"GEL"`
}

type RentalResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	CarID       int        `json:"car_id" example:"1"`
	ClientName  string     `json:"client_name" example:"Giorgi"`
	ClientPhone string     `json:"client_phone,omitempty"`
	StartDate   string     `json:"start_date" example:"2024-01-10"`
	EndDate     string     `json:"end_date" example:"2024-01-12"`
	DailyPrice  float64    `json:"daily_price" example:"100"`
	Currency    string     `json:"currency" example:"GEL"`
	TotalAmount float64    `json:"total_amount" example:"300"`
	Status      string     `json:"status" example:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CarBrand    string     `json:"brand,omitempty" example:"Toyota"`
	CarModel    string     `json:"model,omitempty" example:"Prius"`
	CarYear     int        `json:"year,omitempty" example:"2015"`
}

type CompleteRentalResponseDTO struct {
	Rental      RentalResponseDTO      `json:"rental"`
	Transaction TransactionResponseDTO `json:"transaction"`
}
