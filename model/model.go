// Package model defines the transaction value types used in the banking core.
//
// Why "github.com/shopspring/decimal"?
// Floating-point numbers cannot accurately represent most decimal values
// (0.1 + 0.2 != 0.3 in float64), and those rounding errors accumulate into
// corrupted balances. All monetary amounts therefore use decimal.Decimal.
package model

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies the concrete transaction variant.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindTransfer   Kind = "transfer"
)

// DescriptionInterest marks deposits posted by interest accrual rather
// than by a customer, so statements and the classifier can tell them apart.
const DescriptionInterest = "interest accrual"

// Transaction is an immutable record of a single monetary event.
// The only way to obtain one is through the New* constructors, which
// validate their inputs; after that the value never changes.
//
// The amount is always positive — direction is implied by the kind,
// not by the sign.
type Transaction struct {
	id           uuid.UUID
	kind         Kind
	amount       decimal.Decimal
	description  string
	timestamp    time.Time
	counterparty string // transfer only
}

// NewDeposit creates a deposit of amount into an account at the given time.
func NewDeposit(amount decimal.Decimal, description string, at time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, &ValidationError{Kind: KindDeposit, Field: "amount", Reason: "must be positive"}
	}
	return Transaction{
		id:          uuid.New(),
		kind:        KindDeposit,
		amount:      amount,
		description: description,
		timestamp:   at,
	}, nil
}

// NewWithdrawal creates a withdrawal of amount from an account at the given
// time. The amount is the positive size of the decrease.
func NewWithdrawal(amount decimal.Decimal, description string, at time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, &ValidationError{Kind: KindWithdrawal, Field: "amount", Reason: "must be positive"}
	}
	return Transaction{
		id:          uuid.New(),
		kind:        KindWithdrawal,
		amount:      amount,
		description: description,
		timestamp:   at,
	}, nil
}

// NewTransfer creates an outgoing transfer of amount to the account
// identified by counterpartyID.
func NewTransfer(amount decimal.Decimal, description string, at time.Time, counterpartyID string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, &ValidationError{Kind: KindTransfer, Field: "amount", Reason: "must be positive"}
	}
	if strings.TrimSpace(counterpartyID) == "" {
		return Transaction{}, &ValidationError{Kind: KindTransfer, Field: "counterparty", Reason: "must be non-empty"}
	}
	return Transaction{
		id:           uuid.New(),
		kind:         KindTransfer,
		amount:       amount,
		description:  description,
		timestamp:    at,
		counterparty: counterpartyID,
	}, nil
}

// ID returns the unique identifier assigned at construction.
func (t Transaction) ID() uuid.UUID { return t.id }

// Kind returns the transaction variant.
func (t Transaction) Kind() Kind { return t.kind }

// Amount returns the positive magnitude of the transaction.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Description returns the free-text description.
func (t Transaction) Description() string { return t.description }

// Timestamp returns the time the transaction was created for.
func (t Transaction) Timestamp() time.Time { return t.timestamp }

// Counterparty returns the destination account ID for transfers and the
// empty string for every other kind.
func (t Transaction) Counterparty() string { return t.counterparty }

// Decompose exposes the three base fields for positional matching.
func (t Transaction) Decompose() (Kind, decimal.Decimal, string) {
	return t.kind, t.amount, t.description
}

// DecomposeTransfer exposes the four transfer fields. The counterparty is
// the empty string when called on a non-transfer.
func (t Transaction) DecomposeTransfer() (Kind, decimal.Decimal, string, string) {
	return t.kind, t.amount, t.description, t.counterparty
}

// SignedEffect returns the transaction's effect on the owning account's
// balance: +amount for a deposit, -amount for a withdrawal or an outgoing
// transfer.
func (t Transaction) SignedEffect() decimal.Decimal {
	if t.kind == KindDeposit {
		return t.amount
	}
	return t.amount.Neg()
}

// Equal reports whether two transactions match on every field.
func (t Transaction) Equal(o Transaction) bool {
	return t.id == o.id &&
		t.kind == o.kind &&
		t.amount.Equal(o.amount) &&
		t.description == o.description &&
		t.timestamp.Equal(o.timestamp) &&
		t.counterparty == o.counterparty
}

// Less orders transactions by timestamp ascending, then by ID string
// ascending as a deterministic tie-break.
func (t Transaction) Less(o Transaction) bool {
	if !t.timestamp.Equal(o.timestamp) {
		return t.timestamp.Before(o.timestamp)
	}
	return t.id.String() < o.id.String()
}

// SortTransactions sorts in place by (timestamp, id).
func SortTransactions(txs []Transaction) {
	sort.Slice(txs, func(i, j int) bool { return txs[i].Less(txs[j]) })
}

// String renders a compact single-line form used by statements and logs.
func (t Transaction) String() string {
	if t.kind == KindTransfer {
		return fmt.Sprintf("%s %s -> %s (%s)", t.kind, t.amount, t.counterparty, t.description)
	}
	return fmt.Sprintf("%s %s (%s)", t.kind, t.amount, t.description)
}
