package domain

type CarStatus string

const (
	// CarStatusActive the car is on the lot and may be rented or dismantled.
	CarStatusActive CarStatus = "active"
	// CarStatusRented the car is out on an active rental.
	CarStatusRented CarStatus = "rented"
	// CarStatusDismantled the car has been taken apart for parts. Terminal.
	CarStatusDismantled CarStatus = "dismantled"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
)

type PartStatus string

const (
	PartStatusAvailable PartStatus = "available"
	PartStatusSold      PartStatus = "sold"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Allowed status transitions per entity. A status missing a target is a
// terminal state. Dismantling a rented car is not an edge: the rental has
// to be completed first.
var carTransitions = map[CarStatus][]CarStatus{
	CarStatusActive:     {CarStatusRented, CarStatusDismantled},
	CarStatusRented:     {CarStatusActive},
	CarStatusDismantled: {},
}

var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusActive:    {RentalStatusCompleted},
	RentalStatusCompleted: {},
}

var partTransitions = map[PartStatus][]PartStatus{
	PartStatusAvailable: {PartStatusSold},
	PartStatusSold:      {},
}

// CanTransition reports whether a car may move from its current status to
// the given one.
func (s CarStatus) CanTransition(to CarStatus) bool {
	for _, allowed := range carTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s RentalStatus) CanTransition(to RentalStatus) bool {
	for _, allowed := range rentalTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s PartStatus) CanTransition(to PartStatus) bool {
	for _, allowed := range partTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Fixed set of expense categories; income categories are free-form.
var expenseCategories = map[string]struct{}{
	"repair":      {},
	"fuel":        {},
	"insurance":   {},
	"maintenance": {},
	"parking":     {},
	"wash":        {},
	"parts":       {},
	"other":       {},
}

func ValidExpenseCategory(category string) bool {
	_, ok := expenseCategories[category]
	return ok
}
