package entity

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	RoleOwner     UserRole = "owner"
	RoleCaregiver UserRole = "caregiver"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RoleCaregiver, RoleAdmin:
		return true
	}
	return false
}

// RoleAssignment is the single role row per identity. An identity carries
// exactly one role, assigned at signup and immutable afterwards.
type RoleAssignment struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Role   UserRole  `db:"role"`
}
