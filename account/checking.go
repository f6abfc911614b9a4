package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bankcore/model"
)

// Checking is the everyday variant: it may go negative down to the
// configured overdraft limit and it can send transfers.
type Checking struct {
	base
	overdraftLimit decimal.Decimal
}

var (
	_ Account    = (*Checking)(nil)
	_ Transferer = (*Checking)(nil)
)

// NewChecking creates a checking account. overdraftLimit is the positive
// size of the permitted overdraft; the balance may fall to -overdraftLimit
// but no further.
func NewChecking(owner string, opening, overdraftLimit decimal.Decimal) *Checking {
	return &Checking{
		base:           newBase(owner, "checking", opening),
		overdraftLimit: overdraftLimit,
	}
}

// OverdraftLimit returns the configured overdraft allowance.
func (c *Checking) OverdraftLimit() decimal.Decimal { return c.overdraftLimit }

// Deposit validates and applies an inflow transaction.
func (c *Checking) Deposit(tx model.Transaction) Result {
	return c.deposit(tx)
}

// Withdraw validates and applies an outflow. The resulting balance may be
// negative as long as it stays within the overdraft limit.
func (c *Checking) Withdraw(tx model.Transaction) Result {
	res := c.validateOutflow(tx, model.KindWithdrawal)
	if res.Accepted {
		c.commit(tx)
	}
	return res
}

func (c *Checking) validateOutflow(tx model.Transaction, want model.Kind) Result {
	if res := c.checkKind(tx, want); res != nil {
		return *res
	}
	if res := c.checkRules(tx); res != nil {
		return *res
	}
	if c.balance.Sub(tx.Amount()).LessThan(c.overdraftLimit.Neg()) {
		return rejected(ReasonInsufficientFunds, "", "would exceed overdraft limit")
	}
	return accepted()
}

// Transfer atomically moves amount from this account to the counterparty.
// The source leg is validated first without mutating anything; only once
// the counterparty has accepted the deposit leg does the source leg commit,
// so a rejection on either side leaves both balances unchanged.
func (c *Checking) Transfer(amount decimal.Decimal, description string, at time.Time, to Account) (Result, error) {
	out, in, err := transferLegs(&c.base, amount, description, at, to)
	if err != nil {
		return Result{}, err
	}
	if res := c.validateOutflow(out, model.KindTransfer); res.Rejected() {
		return res, nil
	}
	if res := to.Deposit(in); res.Rejected() {
		return rejected(res.Reason, res.Rule, "counterparty rejected deposit leg"), nil
	}
	c.commit(out)
	return accepted(), nil
}

// transferLegs builds the two transactions of a transfer: the outgoing
// transfer recorded on the source and the matching deposit recorded on the
// counterparty. Construction is where malformed transfers fail hard.
func transferLegs(src *base, amount decimal.Decimal, description string, at time.Time, to Account) (out, in model.Transaction, err error) {
	if to == nil || to.ID() == src.id {
		return out, in, &model.ValidationError{Kind: model.KindTransfer, Field: "counterparty", Reason: "must be a distinct account"}
	}
	out, err = model.NewTransfer(amount, description, at, to.ID())
	if err != nil {
		return out, in, err
	}
	in, err = model.NewDeposit(amount, fmt.Sprintf("transfer from %s", src.owner), at)
	return out, in, err
}
