package account

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankcore/model"
)

// seededChecking returns an account with three dated transactions:
// +100, -30, +50 on consecutive hours, opening balance 1000.
func seededChecking(t *testing.T) *Checking {
	t.Helper()
	c := NewChecking("bob", decimal.NewFromInt(1000), decimal.Zero)
	require.True(t, c.Deposit(deposit(t, "100", monday)).Accepted)
	require.True(t, c.Withdraw(withdrawal(t, "30", monday.Add(time.Hour))).Accepted)
	require.True(t, c.Deposit(deposit(t, "50", monday.Add(2*time.Hour))).Accepted)
	return c
}

func TestStatementRunningBalance(t *testing.T) {
	c := seededChecking(t)

	var entries []StatementEntry
	for e := range c.Statement() {
		entries = append(entries, e)
	}

	require.Len(t, entries, 3)
	assert.True(t, entries[0].RunningBalance.Equal(decimal.NewFromInt(1100)))
	assert.True(t, entries[1].RunningBalance.Equal(decimal.NewFromInt(1070)))
	assert.True(t, entries[2].RunningBalance.Equal(decimal.NewFromInt(1120)))
	assert.True(t, entries[2].RunningBalance.Equal(c.Balance()),
		"the last statement line matches the live balance")
}

// TestStatementIsRestartable ranges twice over the same sequence value and
// also checks early termination is safe.
func TestStatementIsRestartable(t *testing.T) {
	c := seededChecking(t)
	stmt := c.Statement()

	count := 0
	for range stmt {
		count++
		break // stop after the first entry
	}
	require.Equal(t, 1, count)

	// A second range starts over from the beginning.
	var positions []int
	for e := range stmt {
		positions = append(positions, e.Position)
	}
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestStatementOrdersByTimestamp(t *testing.T) {
	c := NewChecking("bob", decimal.NewFromInt(1000), decimal.Zero)
	// Accepted out of timestamp order; the statement re-orders.
	require.True(t, c.Deposit(deposit(t, "50", monday.Add(2*time.Hour))).Accepted)
	require.True(t, c.Deposit(deposit(t, "100", monday)).Accepted)

	first, ok := c.EntryAt(0)
	require.True(t, ok)
	assert.True(t, first.Transaction.Amount().Equal(decimal.NewFromInt(100)))
	assert.True(t, first.RunningBalance.Equal(decimal.NewFromInt(1100)))
}

func TestIndexedAccess(t *testing.T) {
	c := seededChecking(t)

	t.Run("EntryAt", func(t *testing.T) {
		e, ok := c.EntryAt(1)
		require.True(t, ok)
		assert.Equal(t, model.KindWithdrawal, e.Transaction.Kind())
		assert.True(t, e.RunningBalance.Equal(decimal.NewFromInt(1070)))

		_, ok = c.EntryAt(3)
		assert.False(t, ok)
		_, ok = c.EntryAt(-1)
		assert.False(t, ok)
	})

	t.Run("out of range yields the zero entry with a zero balance", func(t *testing.T) {
		e, ok := c.EntryAt(99)
		require.False(t, ok)
		assert.True(t, e.RunningBalance.Equal(decimal.Zero))
	})

	t.Run("EntryFromEnd", func(t *testing.T) {
		last, ok := c.EntryFromEnd(0)
		require.True(t, ok)
		assert.Equal(t, 2, last.Position)
		assert.True(t, last.RunningBalance.Equal(c.Balance()))

		first, ok := c.EntryFromEnd(2)
		require.True(t, ok)
		assert.Equal(t, 0, first.Position)

		_, ok = c.EntryFromEnd(3)
		assert.False(t, ok)
	})

	t.Run("EntryRange is half-open and clamped", func(t *testing.T) {
		mid := c.EntryRange(1, 3)
		require.Len(t, mid, 2)
		assert.Equal(t, 1, mid[0].Position)
		assert.Equal(t, 2, mid[1].Position)
		assert.True(t, mid[0].RunningBalance.Equal(decimal.NewFromInt(1070)))

		assert.Empty(t, c.EntryRange(2, 2))
		assert.Len(t, c.EntryRange(-5, 99), 3)
		assert.Empty(t, c.EntryRange(3, 1))
	})

	t.Run("access does not mutate the history", func(t *testing.T) {
		before := c.History()
		c.EntryRange(0, 3)
		c.EntryAt(0)
		for e := range c.Statement() {
			_ = e
		}
		after := c.History()
		require.Len(t, after, len(before))
		for i := range before {
			assert.True(t, before[i].Equal(after[i]))
		}
	})
}
