package account

import (
	"time"

	"github.com/shopspring/decimal"

	"bankcore/model"
)

// Savings is the plain variant: no overdraft, no transfer capability, and
// an interest accrual operation that bypasses the rule engine. Savings
// accounts are auditable.
type Savings struct {
	base
	auditTrail
	interestRate decimal.Decimal
}

var (
	_ Account   = (*Savings)(nil)
	_ Auditable = (*Savings)(nil)
)

// NewSavings creates a savings account with the given opening balance and
// per-accrual interest rate (e.g. 0.015 for 1.5%).
func NewSavings(owner string, opening, interestRate decimal.Decimal) *Savings {
	s := &Savings{
		base:         newBase(owner, "savings", opening),
		interestRate: interestRate,
	}
	s.auditTrail.accountID = s.id
	return s
}

// Deposit validates and applies an inflow transaction.
func (s *Savings) Deposit(tx model.Transaction) Result {
	res := s.deposit(tx)
	s.recordOp("deposit", tx, res)
	return res
}

// Withdraw validates and applies an outflow. A savings account never goes
// negative: any amount above the current balance is insufficient funds.
func (s *Savings) Withdraw(tx model.Transaction) Result {
	res := s.validateWithdraw(tx)
	if res.Accepted {
		s.commit(tx)
	}
	s.recordOp("withdraw", tx, res)
	return res
}

func (s *Savings) validateWithdraw(tx model.Transaction) Result {
	if res := s.checkKind(tx, model.KindWithdrawal); res != nil {
		return *res
	}
	if res := s.checkRules(tx); res != nil {
		return *res
	}
	if tx.Amount().GreaterThan(s.balance) {
		return rejected(ReasonInsufficientFunds, "", "amount exceeds balance")
	}
	return accepted()
}

// AccrueInterest applies one interest period to the current balance,
// recording the accrued amount as a deposit in the history. The rule engine
// is deliberately not consulted: interest is the bank's own posting, not a
// customer transaction. Returns false when nothing accrued (zero or
// negative balance, or zero rate).
func (s *Savings) AccrueInterest(at time.Time) (model.BalanceChange, bool) {
	interest := s.balance.Mul(s.interestRate).Round(2)
	if !interest.IsPositive() {
		return model.BalanceChange{}, false
	}
	tx, err := model.NewDeposit(interest, model.DescriptionInterest, at)
	if err != nil {
		return model.BalanceChange{}, false
	}
	ev := s.commit(tx)
	s.recordOp("interest", tx, accepted())
	return ev, true
}
