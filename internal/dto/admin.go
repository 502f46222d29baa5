package dto

import "time"

type AdminUserResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Email     string    `json:"email" example:"user@example.com"`
	Role      string    `json:"role" example:"USER"`
	Active    bool      `json:"active" example:"true"`
	CreatedAt time.Time `json:"created_at"`
}
