package model

import "github.com/shopspring/decimal"

// BalanceChange describes one committed balance mutation. A fresh value is
// constructed per mutation, handed to each observer by value, and never
// retained by the account after dispatch.
type BalanceChange struct {
	Previous    decimal.Decimal
	New         decimal.Decimal
	Transaction Transaction
}

// Delta returns the signed change (New - Previous).
func (e BalanceChange) Delta() decimal.Decimal {
	return e.New.Sub(e.Previous)
}
