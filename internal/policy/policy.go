// Package policy derives what an account may do from its role.
package policy

import "github.com/SergeyBogomolovv/techmarket/internal/entities"

type Capabilities struct {
	CanBuy  bool
	CanSell bool
}

var table = map[entities.Role]Capabilities{
	entities.RoleBuyer:  {CanBuy: true},
	entities.RoleSeller: {CanSell: true},
	entities.RoleBoth:   {CanBuy: true, CanSell: true},
}

// For returns the capabilities of account. No account, or an account with a role
// outside the known set, grants nothing.
func For(account *entities.Account) Capabilities {
	if account == nil {
		return Capabilities{}
	}
	return table[account.Role]
}

// RequireBuy fails with ErrUnauthenticated without an account and ErrUnauthorized
// when the account cannot buy.
func RequireBuy(account *entities.Account) error {
	if account == nil {
		return entities.ErrUnauthenticated
	}
	if !For(account).CanBuy {
		return entities.ErrUnauthorized
	}
	return nil
}

// RequireSell is RequireBuy for the sell capability.
func RequireSell(account *entities.Account) error {
	if account == nil {
		return entities.ErrUnauthenticated
	}
	if !For(account).CanSell {
		return entities.ErrUnauthorized
	}
	return nil
}
