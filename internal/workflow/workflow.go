// Package workflow is the order fulfillment state machine.
package workflow

import (
	"github.com/SergeyBogomolovv/techmarket/internal/entities"
	"github.com/SergeyBogomolovv/techmarket/internal/policy"
)

type Action string

const (
	Approve  Action = "approve"
	Reject   Action = "reject"
	Dispatch Action = "dispatch"
	Complete Action = "complete"
)

// Step is one permitted edge of the state machine.
type Step struct {
	Action Action
	From   entities.OrderStatus
	To     entities.OrderStatus
}

var steps = []Step{
	{Action: Approve, From: entities.StatusPending, To: entities.StatusConfirmed},
	{Action: Reject, From: entities.StatusPending, To: entities.StatusCancelled},
	{Action: Dispatch, From: entities.StatusConfirmed, To: entities.StatusShipped},
	{Action: Complete, From: entities.StatusShipped, To: entities.StatusDelivered},
}

// Transition validates a move between two states and returns the matching step.
func Transition(from, to entities.OrderStatus) (Step, error) {
	for _, s := range steps {
		if s.From == from && s.To == to {
			return s, nil
		}
	}
	return Step{}, entities.ErrInvalidTransition
}

// Apply returns the state reached by performing action on an order in state from.
func Apply(from entities.OrderStatus, action Action) (entities.OrderStatus, error) {
	for _, s := range steps {
		if s.From == from && s.Action == action {
			return s.To, nil
		}
	}
	return from, entities.ErrInvalidTransition
}

// Available lists the steps a seller may offer for an order in state from.
func Available(from entities.OrderStatus) []Step {
	var out []Step
	for _, s := range steps {
		if s.From == from {
			out = append(out, s)
		}
	}
	return out
}

// Authorize checks that actor can sell and owns every product of the order.
func Authorize(actor *entities.Account, order entities.Order) error {
	if err := policy.RequireSell(actor); err != nil {
		return err
	}
	if len(order.Items) == 0 {
		return entities.ErrNotOwner
	}
	for _, it := range order.Items {
		if it.SellerID != actor.ID {
			return entities.ErrNotOwner
		}
	}
	return nil
}

// Request validates that actor may move order to the target state. It does not
// touch the order.
func Request(actor *entities.Account, order entities.Order, to entities.OrderStatus) (Step, error) {
	if err := Authorize(actor, order); err != nil {
		return Step{}, err
	}
	return Transition(order.Status, to)
}
