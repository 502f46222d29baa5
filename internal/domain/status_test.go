package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarStatusCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    CarStatus
		to      CarStatus
		allowed bool
	}{
		{"Active car can be rented", CarStatusActive, CarStatusRented, true},
		{"Active car can be dismantled", CarStatusActive, CarStatusDismantled, true},
		{"Rented car returns to active", CarStatusRented, CarStatusActive, true},
		{"Rented car cannot be dismantled", CarStatusRented, CarStatusDismantled, false},
		{"Rented car cannot be rented again", CarStatusRented, CarStatusRented, false},
		{"Dismantled is terminal", CarStatusDismantled, CarStatusActive, false},
		{"Dismantled cannot be rented", CarStatusDismantled, CarStatusRented, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestRentalStatusCanTransition(t *testing.T) {
	assert.True(t, RentalStatusActive.CanTransition(RentalStatusCompleted))
	assert.False(t, RentalStatusCompleted.CanTransition(RentalStatusActive))
	assert.False(t, RentalStatusCompleted.CanTransition(RentalStatusCompleted))
}

func TestPartStatusCanTransition(t *testing.T) {
	assert.True(t, PartStatusAvailable.CanTransition(PartStatusSold))
	assert.False(t, PartStatusSold.CanTransition(PartStatusAvailable))
	assert.False(t, PartStatusSold.CanTransition(PartStatusSold))
}

func TestValidExpenseCategory(t *testing.T) {
	for _, category := range []string{"repair", "fuel", "insurance", "maintenance", "parking", "wash", "parts", "other"} {
		assert.True(t, ValidExpenseCategory(category), category)
	}
	assert.False(t, ValidExpenseCategory("rental"))
	assert.False(t, ValidExpenseCategory(""))
	assert.False(t, ValidExpenseCategory("Repair"))
}
