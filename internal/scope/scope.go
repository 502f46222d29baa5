// Package scope resolves a caller's identity into the row-visibility
// filter applied to every car, rental, part and transaction query.
package scope

import (
	"fmt"

	"github.com/wgauto/crm/internal/domain"
)

// Scope restricts queries to rows owned by OwnerID unless All is set.
// Admins get an unrestricted scope.
type Scope struct {
	All     bool
	OwnerID int
}

func ForUser(userID int, role domain.Role) Scope {
	if role == domain.RoleAdmin {
		return Scope{All: true}
	}
	return Scope{OwnerID: userID}
}

// Filter renders the scope as an AND-able SQL fragment for the given
// owner column, appending the owner id to args. An admin scope renders
// to nothing.
func (s Scope) Filter(column string, args []any) (string, []any) {
	if s.All {
		return "", args
	}
	args = append(args, s.OwnerID)
	return fmt.Sprintf(" AND %s = $%d", column, len(args)), args
}
