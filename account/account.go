// Package account implements the account variants (savings, checking,
// business) behind a shared capability interface. Every mutating operation
// follows the same shape: validate against the rule engine and the
// variant's own funds checks with zero mutation, then commit the balance
// change and history entry, then notify observers. A rejected operation
// leaves the account untouched.
package account

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankcore/audit"
	"bankcore/model"
	"bankcore/rule"
)

// Account is the capability set shared by every variant. Narrower
// capabilities (Auditable, Transferer) are obtained by type assertion,
// never implicitly through this view.
type Account interface {
	ID() string
	Owner() string
	Kind() string
	Balance() decimal.Decimal
	OpeningBalance() decimal.Decimal

	Deposit(tx model.Transaction) Result
	Withdraw(tx model.Transaction) Result

	AddRule(r rule.Rule)
	Subscribe(o Observer) int
	Unsubscribe(token int) bool

	History() []model.Transaction
	Statement() iter.Seq[StatementEntry]
	EntryAt(i int) (StatementEntry, bool)
	EntryFromEnd(i int) (StatementEntry, bool)
	EntryRange(from, to int) []StatementEntry
}

// Auditable is the narrower capability view over accounts that keep an
// audit trail (savings and business). Reachable only via an explicit type
// assertion on Account.
type Auditable interface {
	Log(event string)
	AttachAuditSink(s audit.Sink)
	GenerateReport() audit.Report
}

// Transferer is the capability view over accounts that can send transfers
// (checking and business).
type Transferer interface {
	Account
	// Transfer atomically withdraws from this account and deposits into
	// the counterparty. The returned error is non-nil only when the
	// transfer transaction itself cannot be constructed (malformed
	// amount); every business rejection comes back in the Result.
	Transfer(amount decimal.Decimal, description string, at time.Time, to Account) (Result, error)
}

// Observer receives a BalanceChange after every committed mutation.
type Observer func(model.BalanceChange)

type observerReg struct {
	token int
	fn    Observer
}

// base carries the state and behavior common to all variants. Variants
// embed it and add their own funds checks on top.
type base struct {
	id        string
	owner     string
	kind      string
	opening   decimal.Decimal
	balance   decimal.Decimal
	history   []model.Transaction
	engine    rule.Engine
	observers []observerReg
	nextToken int
}

func newBase(owner, kind string, opening decimal.Decimal) base {
	return base{
		id:      uuid.New().String(),
		owner:   owner,
		kind:    kind,
		opening: opening,
		balance: opening,
	}
}

func (b *base) ID() string                      { return b.id }
func (b *base) Owner() string                   { return b.owner }
func (b *base) Kind() string                    { return b.kind }
func (b *base) Balance() decimal.Decimal        { return b.balance }
func (b *base) OpeningBalance() decimal.Decimal { return b.opening }

// AddRule appends a predicate to the account's rule engine. Rules are added
// at configuration time and never removed.
func (b *base) AddRule(r rule.Rule) { b.engine.Add(r) }

// Subscribe registers an observer for balance changes and returns a token
// for Unsubscribe. Observers fire in registration order.
func (b *base) Subscribe(o Observer) int {
	b.nextToken++
	b.observers = append(b.observers, observerReg{token: b.nextToken, fn: o})
	return b.nextToken
}

// Unsubscribe removes the observer registered under token. It reports
// whether anything was removed.
func (b *base) Unsubscribe(token int) bool {
	for i, reg := range b.observers {
		if reg.token == token {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return true
		}
	}
	return false
}

// History returns a copy of the recorded transactions in acceptance order.
func (b *base) History() []model.Transaction {
	out := make([]model.Transaction, len(b.history))
	copy(out, b.history)
	return out
}

func (b *base) snapshot() rule.Snapshot {
	return rule.Snapshot{
		AccountID:  b.id,
		Owner:      b.owner,
		Balance:    b.balance,
		HistoryLen: len(b.history),
	}
}

// checkKind rejects transactions whose kind does not match the operation.
func (b *base) checkKind(tx model.Transaction, want ...model.Kind) *Result {
	for _, k := range want {
		if tx.Kind() == k {
			return nil
		}
	}
	r := rejected(ReasonWrongKind, "", fmt.Sprintf("%s transaction not valid here", tx.Kind()))
	return &r
}

// checkRules runs the rule engine against the current snapshot.
func (b *base) checkRules(tx model.Transaction) *Result {
	if ok, failed := b.engine.Evaluate(tx, b.snapshot()); !ok {
		r := rejected(ReasonRuleRejected, failed, "")
		return &r
	}
	return nil
}

// commit applies the transaction: mutate the balance by its signed effect,
// append it to the history, and notify observers. Callers must have
// finished all validation before commit — nothing here can fail.
func (b *base) commit(tx model.Transaction) model.BalanceChange {
	prev := b.balance
	b.balance = b.balance.Add(tx.SignedEffect())
	b.history = append(b.history, tx)
	ev := model.BalanceChange{Previous: prev, New: b.balance, Transaction: tx}
	b.notify(ev)
	return ev
}

// notify dispatches the event to every observer in registration order,
// synchronously. Observer invocation is best-effort: a panicking observer
// cannot unwind the already-committed mutation, and the remaining observers
// still run.
func (b *base) notify(ev model.BalanceChange) {
	for _, reg := range b.observers {
		func() {
			defer func() { _ = recover() }()
			reg.fn(ev)
		}()
	}
}

// deposit is the inflow path shared by all variants: kind check, rule
// engine, commit.
func (b *base) deposit(tx model.Transaction) Result {
	if res := b.checkKind(tx, model.KindDeposit); res != nil {
		return *res
	}
	if res := b.checkRules(tx); res != nil {
		return *res
	}
	b.commit(tx)
	return accepted()
}
