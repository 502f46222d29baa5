package dto

import "time"

type CreatePartRequestDTO struct {
	CarID           int     `json:"car_id" example:"1"`
	Name            string  `json:"name" validate:"required"`
	EstimatedPrice  float64 `json:"estimated_price,omitempty" example:"150"`
	Currency        string  `json:"currency,omitempty" example:"GEL"`
	StorageLocation string  `json:"storage_location,omitempty" example:"Shelf A3"`
}

type SellPartRequestDTO struct {
	SalePrice    float64 `json:"sale_price" example:"120"`
	SaleCurrency string  `json:"sale_currency" example:"GEL"`
	Buyer        string  `json:"buyer,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

type PartResponseDTO struct {
	ID              int        `json:"id" example:"1"`
	CarID           int        `json:"car_id" example:"1"`
	Name            string     `json:"name" example:"Alternator"`
	EstimatedPrice  float64    `json:"estimated_price,omitempty" example:"150"`
	Currency        string     `json:"currency,omitempty" example:"GEL"`
	Status          string     `json:"status" example:"available"`
	StorageLocation string     `json:"storage_location,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	SoldAt          *time.Time `json:"sold_at,omitempty"`
	SalePrice       float64    `json:"sale_price,omitempty"`
	SaleCurrency    string     `json:"sale_currency,omitempty"`
	Buyer           string     `json:"buyer,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CarBrand        string     `json:"brand,omitempty" example:"Toyota"`
	CarModel        string     `json:"model,omitempty" example:"Prius"`
	CarYear         int        `json:"year,omitempty" example:"2015"`
}

type SellPartResponseDTO struct {
	Part        PartResponseDTO        `json:"part"`
	Transaction TransactionResponseDTO `json:"transaction"`
}
