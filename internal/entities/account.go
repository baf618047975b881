package entities

import "strings"

type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
	RoleBoth   Role = "BOTH"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleBoth:
		return true
	}
	return false
}

// Account is loaded at login and never mutated by the storefront.
type Account struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	Role      Role
}

func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	Role      Role
}
