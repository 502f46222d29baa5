package dto

import "time"

type CreateCarRequestDTO struct {
	Brand    string  `json:"brand" validate:"required"`
	Model    string  `json:"model" validate:"required"`
	Year     int     `json:"year,omitempty" example:"2015"`
	VIN      string  `json:"vin,omitempty" example:"WVWZZZ1JZXW000001"`
	Price    float64 `json:"price" example:"7500"`
	Currency string  `json:"currency" example:"GEL"`
}

type CarResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Brand     string    `json:"brand" example:"Toyota"`
	Model     string    `json:"model" example:"Prius"`
	Year      int       `json:"year,omitempty" example:"2015"`
	VIN       string    `json:"vin,omitempty"`
	Price     float64   `json:"price" example:"7500"`
	Currency  string    `json:"currency" example:"GEL"`
	Status    string    `json:"status" example:"active"`
	UserID    int       `json:"user_id" example:"1"`
	CreatedAt time.Time `json:"created_at"`
}

type AddExpenseRequestDTO struct {
	Amount      float64 `json:"amount" example:"100"`
	Currency    string  `json:"currency" example:"GEL"`
	Category    string  `json:"category" example:"repair"`
	Description string  `json:"description,omitempty"`
}

type TransactionResponseDTO struct {
	ID          int       `json:"id" example:"1"`
	CarID       int       `json:"car_id" example:"1"`
	Type        string    `json:"type" example:"expense"`
	Amount      float64   `json:"amount" example:"100"`
	Currency    string    `json:"currency" example:"GEL"`
	Category    string    `json:"category,omitempty" example:"repair"`
	Description string    `json:"description,omitempty"`
	RentalID    *int      `json:"rental_id,omitempty"`
	PartID      *int      `json:"part_id,omitempty"`
	Date        time.Time `json:"date"`
}

type ProfitabilityDTO struct {
	Currency      string  `json:"currency" example:"GEL"`
	TotalIncome   float64 `json:"total_income" example:"250"`
	TotalExpenses float64 `json:"total_expenses" example:"100"`
}

type CarDetailsResponseDTO struct {
	Car           CarResponseDTO           `json:"car"`
	Transactions  []TransactionResponseDTO `json:"transactions"`
	Rentals       []RentalResponseDTO      `json:"rentals"`
	Parts         []PartResponseDTO        `json:"parts"`
	Profitability []ProfitabilityDTO       `json:"profitability"`
}
