package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"user@example.com"`
	Role  string `json:"role" example:"USER"`
}

type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
