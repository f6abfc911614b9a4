package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

// TestConstructorValidation checks that construction is the only gate:
// positive amounts always succeed, non-positive amounts always fail.
func TestConstructorValidation(t *testing.T) {
	t.Run("deposit with positive amount succeeds", func(t *testing.T) {
		tx, err := NewDeposit(decimal.NewFromInt(50), "payroll", testTime)
		require.NoError(t, err)
		assert.Equal(t, KindDeposit, tx.Kind())
		assert.True(t, tx.Amount().Equal(decimal.NewFromInt(50)))
		assert.NotEqual(t, "", tx.ID().String())
	})

	t.Run("zero and negative amounts fail for all kinds", func(t *testing.T) {
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := NewDeposit(amount, "x", testTime)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "amount", verr.Field)

			_, err = NewWithdrawal(amount, "x", testTime)
			require.ErrorAs(t, err, &verr)

			_, err = NewTransfer(amount, "x", testTime, "acct-2")
			require.ErrorAs(t, err, &verr)
		}
	})

	t.Run("transfer requires a counterparty", func(t *testing.T) {
		_, err := NewTransfer(decimal.NewFromInt(10), "x", testTime, "  ")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "counterparty", verr.Field)
	})
}

func TestDecompose(t *testing.T) {
	t.Run("base transactions expose three fields", func(t *testing.T) {
		tx, err := NewWithdrawal(decimal.NewFromInt(25), "groceries", testTime)
		require.NoError(t, err)

		kind, amount, desc := tx.Decompose()
		assert.Equal(t, KindWithdrawal, kind)
		assert.True(t, amount.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, "groceries", desc)
	})

	t.Run("transfers expose four fields", func(t *testing.T) {
		tx, err := NewTransfer(decimal.NewFromInt(100), "rent", testTime, "acct-2")
		require.NoError(t, err)

		kind, amount, desc, counterparty := tx.DecomposeTransfer()
		assert.Equal(t, KindTransfer, kind)
		assert.True(t, amount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, "rent", desc)
		assert.Equal(t, "acct-2", counterparty)
	})
}

func TestSignedEffect(t *testing.T) {
	dep, _ := NewDeposit(decimal.NewFromInt(10), "", testTime)
	wd, _ := NewWithdrawal(decimal.NewFromInt(10), "", testTime)
	tr, _ := NewTransfer(decimal.NewFromInt(10), "", testTime, "acct-2")

	assert.True(t, dep.SignedEffect().Equal(decimal.NewFromInt(10)))
	assert.True(t, wd.SignedEffect().Equal(decimal.NewFromInt(-10)))
	assert.True(t, tr.SignedEffect().Equal(decimal.NewFromInt(-10)))
}

func TestEqual(t *testing.T) {
	tx, err := NewDeposit(decimal.NewFromInt(10), "a", testTime)
	require.NoError(t, err)

	assert.True(t, tx.Equal(tx), "a transaction equals itself")

	other, err := NewDeposit(decimal.NewFromInt(10), "a", testTime)
	require.NoError(t, err)
	assert.False(t, tx.Equal(other), "same fields but a fresh id are not equal")
}

// TestOrdering checks timestamp-then-id ordering and the sort helper.
func TestOrdering(t *testing.T) {
	early, _ := NewDeposit(decimal.NewFromInt(1), "early", testTime)
	late, _ := NewDeposit(decimal.NewFromInt(1), "late", testTime.Add(time.Hour))

	assert.True(t, early.Less(late))
	assert.False(t, late.Less(early))

	t.Run("id breaks timestamp ties deterministically", func(t *testing.T) {
		a, _ := NewDeposit(decimal.NewFromInt(1), "a", testTime)
		b, _ := NewDeposit(decimal.NewFromInt(1), "b", testTime)
		// Exactly one direction holds.
		assert.NotEqual(t, a.Less(b), b.Less(a))
	})

	t.Run("SortTransactions orders by timestamp", func(t *testing.T) {
		txs := []Transaction{late, early}
		SortTransactions(txs)
		assert.Equal(t, "early", txs[0].Description())
		assert.Equal(t, "late", txs[1].Description())
	})
}

func TestBalanceChangeDelta(t *testing.T) {
	tx, _ := NewDeposit(decimal.NewFromInt(50), "", testTime)
	ev := BalanceChange{
		Previous:    decimal.NewFromInt(1000),
		New:         decimal.NewFromInt(1050),
		Transaction: tx,
	}
	assert.True(t, ev.Delta().Equal(decimal.NewFromInt(50)))
}
