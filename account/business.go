package account

import (
	"time"

	"github.com/shopspring/decimal"

	"bankcore/model"
)

// Business has no overdraft but enforces a daily aggregate cap across
// withdrawals and outgoing transfers. The cap window is the calendar date
// of the transaction timestamp: it resets at midnight in the timestamp's
// location, not on a rolling 24h basis. Business accounts are auditable and
// can send transfers.
type Business struct {
	base
	auditTrail
	dailyCap   decimal.Decimal
	spentByDay map[string]decimal.Decimal
}

var (
	_ Account    = (*Business)(nil)
	_ Auditable  = (*Business)(nil)
	_ Transferer = (*Business)(nil)
)

// NewBusiness creates a business account with a daily outflow cap.
func NewBusiness(owner string, opening, dailyCap decimal.Decimal) *Business {
	b := &Business{
		base:       newBase(owner, "business", opening),
		dailyCap:   dailyCap,
		spentByDay: make(map[string]decimal.Decimal),
	}
	b.auditTrail.accountID = b.id
	return b
}

// DailyCap returns the configured aggregate outflow limit per calendar day.
func (b *Business) DailyCap() decimal.Decimal { return b.dailyCap }

// SpentOn returns the aggregate outflow already committed on the calendar
// day of at. Missing days read as zero.
func (b *Business) SpentOn(at time.Time) decimal.Decimal {
	return b.spentByDay[dayKey(at)]
}

func dayKey(at time.Time) string { return at.Format("2006-01-02") }

// Deposit validates and applies an inflow transaction.
func (b *Business) Deposit(tx model.Transaction) Result {
	res := b.deposit(tx)
	b.recordOp("deposit", tx, res)
	return res
}

// Withdraw validates and applies an outflow, counting it against the daily
// cap.
func (b *Business) Withdraw(tx model.Transaction) Result {
	res := b.validateOutflow(tx, model.KindWithdrawal)
	if res.Accepted {
		b.commitOutflow(tx)
	}
	b.recordOp("withdraw", tx, res)
	return res
}

func (b *Business) validateOutflow(tx model.Transaction, want model.Kind) Result {
	if res := b.checkKind(tx, want); res != nil {
		return *res
	}
	if res := b.checkRules(tx); res != nil {
		return *res
	}
	if tx.Amount().GreaterThan(b.balance) {
		return rejected(ReasonInsufficientFunds, "", "amount exceeds balance")
	}
	day := dayKey(tx.Timestamp())
	if b.spentByDay[day].Add(tx.Amount()).GreaterThan(b.dailyCap) {
		return rejected(ReasonLimitExceeded, "", "daily outflow cap exceeded")
	}
	return accepted()
}

func (b *Business) commitOutflow(tx model.Transaction) {
	day := dayKey(tx.Timestamp())
	b.spentByDay[day] = b.spentByDay[day].Add(tx.Amount())
	b.commit(tx)
}

// Transfer atomically moves amount to the counterparty, counting the
// outgoing leg against the daily cap. Validation of both legs happens
// before either account mutates.
func (b *Business) Transfer(amount decimal.Decimal, description string, at time.Time, to Account) (Result, error) {
	out, in, err := transferLegs(&b.base, amount, description, at, to)
	if err != nil {
		return Result{}, err
	}
	res := b.validateOutflow(out, model.KindTransfer)
	if res.Rejected() {
		b.recordOp("transfer", out, res)
		return res, nil
	}
	if depRes := to.Deposit(in); depRes.Rejected() {
		res = rejected(depRes.Reason, depRes.Rule, "counterparty rejected deposit leg")
		b.recordOp("transfer", out, res)
		return res, nil
	}
	b.commitOutflow(out)
	b.recordOp("transfer", out, accepted())
	return accepted(), nil
}
