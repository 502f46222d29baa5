package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wgauto/crm/internal/domain"
)

func TestForUser(t *testing.T) {
	tests := []struct {
		name     string
		userID   int
		role     domain.Role
		expected Scope
	}{
		{"Admin sees everything", 7, domain.RoleAdmin, Scope{All: true}},
		{"Regular user sees own rows", 7, domain.RoleUser, Scope{OwnerID: 7}},
		{"Unknown role is treated as regular user", 7, domain.Role("SUPPORT"), Scope{OwnerID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForUser(tt.userID, tt.role))
		})
	}
}

func TestFilter(t *testing.T) {
	t.Run("Admin scope renders to nothing", func(t *testing.T) {
		clause, args := Scope{All: true}.Filter("user_id", []any{"GEL"})
		assert.Equal(t, "", clause)
		assert.Equal(t, []any{"GEL"}, args)
	})

	t.Run("Owner scope appends predicate and arg", func(t *testing.T) {
		clause, args := Scope{OwnerID: 3}.Filter("user_id", nil)
		assert.Equal(t, " AND user_id = $1", clause)
		assert.Equal(t, []any{3}, args)
	})

	t.Run("Placeholder index follows existing args", func(t *testing.T) {
		clause, args := Scope{OwnerID: 3}.Filter("r.user_id", []any{1, "active"})
		assert.Equal(t, " AND r.user_id = $3", clause)
		assert.Equal(t, []any{1, "active", 3}, args)
	})
}
