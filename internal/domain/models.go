package domain

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
}

type Car struct {
	ID        int       `db:"id"`
	Brand     string    `db:"brand"`
	Model     string    `db:"model"`
	Year      int       `db:"year"`
	VIN       string    `db:"vin"`
	Price     float64   `db:"price"`
	Currency  string    `db:"currency"`
	Status    CarStatus `db:"status"`
	UserID    int       `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Transaction struct {
	ID          int             `db:"id"`
	CarID       int             `db:"car_id"`
	UserID      int             `db:"user_id"`
	Type        TransactionType `db:"type"`
	Amount      float64         `db:"amount"`
	Currency    string          `db:"currency"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	RentalID    *int            `db:"rental_id"`
	PartID      *int            `db:"part_id"`
	Date        time.Time       `db:"date"`
}

type Rental struct {
	ID          int          `db:"id"`
	CarID       int          `db:"car_id"`
	UserID      int          `db:"user_id"`
	ClientName  string       `db:"client_name"`
	ClientPhone string       `db:"client_phone"`
	StartDate   time.Time    `db:"start_date"`
	EndDate     time.Time    `db:"end_date"`
	DailyPrice  float64      `db:"daily_price"`
	Currency    string       `db:"currency"`
	TotalAmount float64      `db:"total_amount"`
	Status      RentalStatus `db:"status"`
	CreatedAt   time.Time    `db:"created_at"`
	CompletedAt *time.Time   `db:"completed_at"`
}

type Part struct {
	ID              int        `db:"id"`
	CarID           int        `db:"car_id"`
	UserID          int        `db:"user_id"`
	Name            string     `db:"name"`
	EstimatedPrice  float64    `db:"estimated_price"`
	Currency        string     `db:"currency"`
	Status          PartStatus `db:"status"`
	StorageLocation string     `db:"storage_location"`
	CreatedAt       time.Time  `db:"created_at"`
	SoldAt          *time.Time `db:"sold_at"`
	SalePrice       float64    `db:"sale_price"`
	SaleCurrency    string     `db:"sale_currency"`
	Buyer           string     `db:"buyer"`
	Notes           string     `db:"notes"`
}

// RentalWithCar is a rental row joined with the identifying car columns,
// used by the rentals list and the calendar view.
type RentalWithCar struct {
	Rental
	CarBrand string `db:"brand"`
	CarModel string `db:"model"`
	CarYear  int    `db:"year"`
}

// PartWithCar is a part row joined with the donor car columns.
type PartWithCar struct {
	Part
	CarBrand string `db:"brand"`
	CarModel string `db:"model"`
	CarYear  int    `db:"year"`
}

// CurrencyTotal is one row of a per-currency aggregate. Amounts are never
// summed across currencies.
type CurrencyTotal struct {
	Currency string  `db:"currency"`
	Total    float64 `db:"total"`
}

// Profitability is the per-currency income/expense summary of one car.
// Net profit is income minus expenses and is computed by the caller.
type Profitability struct {
	Currency      string  `db:"currency"`
	TotalIncome   float64 `db:"total_income"`
	TotalExpenses float64 `db:"total_expenses"`
}

type CarStatusCount struct {
	Status CarStatus `db:"status"`
	Count  int       `db:"count"`
}

type CarDetails struct {
	Car           *Car
	Transactions  []Transaction
	Rentals       []Rental
	Parts         []Part
	Profitability []Profitability
}

type Dashboard struct {
	Income        []CurrencyTotal
	Expenses      []CurrencyTotal
	Cars          []CarStatusCount
	ActiveRentals int
}
