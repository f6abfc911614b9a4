// Package rule implements the predicate engine that gates account
// operations. Rules are named, pure predicates over a transaction and a
// read-only account snapshot; the engine composes them by logical AND.
package rule

import (
	"time"

	"github.com/shopspring/decimal"

	"bankcore/model"
)

// Snapshot is the read-only account view handed to predicates. Predicates
// must not mutate anything; they see state, never own it.
type Snapshot struct {
	AccountID  string
	Owner      string
	Balance    decimal.Decimal
	HistoryLen int
}

// Predicate reports whether the transaction is acceptable against the
// account snapshot. Predicates must be pure: the engine short-circuits, so
// a side-effecting predicate would observe the evaluation order.
type Predicate func(tx model.Transaction, snap Snapshot) bool

// Rule pairs a predicate with a name so a rejection can say which
// constraint failed.
type Rule struct {
	Name   string
	Accept Predicate
}

// Engine holds an ordered collection of rules. An explicit slice, invoked
// in registration order — no hidden chaining.
type Engine struct {
	rules []Rule
}

// Add appends a rule to the chain. Previously added rules are preserved;
// the composed result is the AND of every rule ever added.
func (e *Engine) Add(r Rule) {
	e.rules = append(e.rules, r)
}

// Len returns the number of registered rules.
func (e *Engine) Len() int { return len(e.rules) }

// Evaluate returns true iff every rule accepts the transaction. Evaluation
// short-circuits: on the first rejection it stops and returns that rule's
// name.
func (e *Engine) Evaluate(tx model.Transaction, snap Snapshot) (bool, string) {
	for _, r := range e.rules {
		if !r.Accept(tx, snap) {
			return false, r.Name
		}
	}
	return true, ""
}

// MinAmount accepts transactions of at least threshold.
func MinAmount(threshold decimal.Decimal) Rule {
	return Rule{
		Name: "min-amount " + threshold.String(),
		Accept: func(tx model.Transaction, _ Snapshot) bool {
			return tx.Amount().GreaterThanOrEqual(threshold)
		},
	}
}

// MaxAmount accepts transactions of at most threshold.
func MaxAmount(threshold decimal.Decimal) Rule {
	return Rule{
		Name: "max-amount " + threshold.String(),
		Accept: func(tx model.Transaction, _ Snapshot) bool {
			return tx.Amount().LessThanOrEqual(threshold)
		},
	}
}

// NotOnWeekend rejects transactions whose timestamp falls on a Saturday or
// Sunday.
func NotOnWeekend() Rule {
	return Rule{
		Name: "not-on-weekend",
		Accept: func(tx model.Transaction, _ Snapshot) bool {
			wd := tx.Timestamp().Weekday()
			return wd != time.Saturday && wd != time.Sunday
		},
	}
}

// Refine returns a rule that accepts iff the captured base rule accepts and
// the extra condition holds. This is chaining by closure capture: the base
// rule keeps working unchanged inside the refinement.
func Refine(base Rule, name string, extra Predicate) Rule {
	return Rule{
		Name: name,
		Accept: func(tx model.Transaction, snap Snapshot) bool {
			return base.Accept(tx, snap) && extra(tx, snap)
		},
	}
}
