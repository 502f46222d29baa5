package dto

import "github.com/wgauto/crm/internal/domain"

// DateLayout is the wire format for rental start and end dates.
const DateLayout = "2006-01-02"

func NewUserDTO(user *domain.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

func NewCarResponse(car *domain.Car) CarResponseDTO {
	return CarResponseDTO{
		ID:        car.ID,
		Brand:     car.Brand,
		Model:     car.Model,
		Year:      car.Year,
		VIN:       car.VIN,
		Price:     car.Price,
		Currency:  car.Currency,
		Status:    string(car.Status),
		UserID:    car.UserID,
		CreatedAt: car.CreatedAt,
	}
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID,
		CarID:       t.CarID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Currency:    t.Currency,
		Category:    t.Category,
		Description: t.Description,
		RentalID:    t.RentalID,
		PartID:      t.PartID,
		Date:        t.Date,
	}
}

func NewRentalResponse(r *domain.Rental) RentalResponseDTO {
	return RentalResponseDTO{
		ID:          r.ID,
		CarID:       r.CarID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		StartDate:   r.StartDate.Format(DateLayout),
		EndDate:     r.EndDate.Format(DateLayout),
		DailyPrice:  r.DailyPrice,
		Currency:    r.Currency,
		TotalAmount: r.TotalAmount,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
}

func NewRentalWithCarResponse(r *domain.RentalWithCar) RentalResponseDTO {
	resp := NewRentalResponse(&r.Rental)
	resp.CarBrand = r.CarBrand
	resp.CarModel = r.CarModel
	resp.CarYear = r.CarYear
	return resp
}

func NewPartResponse(p *domain.Part) PartResponseDTO {
	return PartResponseDTO{
		ID:              p.ID,
		CarID:           p.CarID,
		Name:            p.Name,
		EstimatedPrice:  p.EstimatedPrice,
		Currency:        p.Currency,
		Status:          string(p.Status),
		StorageLocation: p.StorageLocation,
		CreatedAt:       p.CreatedAt,
		SoldAt:          p.SoldAt,
		SalePrice:       p.SalePrice,
		SaleCurrency:    p.SaleCurrency,
		Buyer:           p.Buyer,
		Notes:           p.Notes,
	}
}

func NewPartWithCarResponse(p *domain.PartWithCar) PartResponseDTO {
	resp := NewPartResponse(&p.Part)
	resp.CarBrand = p.CarBrand
	resp.CarModel = p.CarModel
	resp.CarYear = p.CarYear
	return resp
}

func NewCarDetailsResponse(d *domain.CarDetails) CarDetailsResponseDTO {
	resp := CarDetailsResponseDTO{
		Car:           NewCarResponse(d.Car),
		Transactions:  make([]TransactionResponseDTO, 0, len(d.Transactions)),
		Rentals:       make([]RentalResponseDTO, 0, len(d.Rentals)),
		Parts:         make([]PartResponseDTO, 0, len(d.Parts)),
		Profitability: make([]ProfitabilityDTO, 0, len(d.Profitability)),
	}
	for i := range d.Transactions {
		resp.Transactions = append(resp.Transactions, NewTransactionResponse(&d.Transactions[i]))
	}
	for i := range d.Rentals {
		resp.Rentals = append(resp.Rentals, NewRentalResponse(&d.Rentals[i]))
	}
	for i := range d.Parts {
		resp.Parts = append(resp.Parts, NewPartResponse(&d.Parts[i]))
	}
	for _, p := range d.Profitability {
		resp.Profitability = append(resp.Profitability, ProfitabilityDTO{
			Currency:      p.Currency,
			TotalIncome:   p.TotalIncome,
			TotalExpenses: p.TotalExpenses,
		})
	}
	return resp
}

func NewDashboardResponse(d *domain.Dashboard) DashboardResponseDTO {
	resp := DashboardResponseDTO{
		Income:        make([]CurrencyTotalDTO, 0, len(d.Income)),
		Expenses:      make([]CurrencyTotalDTO, 0, len(d.Expenses)),
		Cars:          make([]CarStatusCountDTO, 0, len(d.Cars)),
		ActiveRentals: d.ActiveRentals,
	}
	for _, t := range d.Income {
		resp.Income = append(resp.Income, CurrencyTotalDTO{Currency: t.Currency, Total: t.Total})
	}
	for _, t := range d.Expenses {
		resp.Expenses = append(resp.Expenses, CurrencyTotalDTO{Currency: t.Currency, Total: t.Total})
	}
	for _, c := range d.Cars {
		resp.Cars = append(resp.Cars, CarStatusCountDTO{Status: string(c.Status), Count: c.Count})
	}
	return resp
}

func NewAdminUserResponse(user *domain.User) AdminUserResponseDTO {
	return AdminUserResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}
