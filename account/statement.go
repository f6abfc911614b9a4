package account

import (
	"iter"

	"github.com/shopspring/decimal"

	"bankcore/model"
)

// StatementEntry is one line of a printed statement: the transaction plus
// the balance after applying it, folded from the opening balance in
// (timestamp, id) order.
type StatementEntry struct {
	Position       int
	Transaction    model.Transaction
	RunningBalance decimal.Decimal
}

// ordered returns the history sorted by (timestamp, id) without mutating
// the account's own slice.
func (b *base) ordered() []model.Transaction {
	txs := b.History()
	model.SortTransactions(txs)
	return txs
}

// Statement returns a lazy, restartable sequence over the ordered history
// with running balances. Each range over the sequence re-reads the history,
// so a statement taken before new transactions were accepted stays cheap to
// retake afterwards.
func (b *base) Statement() iter.Seq[StatementEntry] {
	return func(yield func(StatementEntry) bool) {
		running := b.opening
		for i, tx := range b.ordered() {
			running = running.Add(tx.SignedEffect())
			if !yield(StatementEntry{Position: i, Transaction: tx, RunningBalance: running}) {
				return
			}
		}
	}
}

// EntryAt returns the statement entry at absolute position i, or a zero
// entry (zero balance) and false when i is out of range.
func (b *base) EntryAt(i int) (StatementEntry, bool) {
	txs := b.ordered()
	if i < 0 || i >= len(txs) {
		return StatementEntry{}, false
	}
	running := b.opening
	for j := 0; j <= i; j++ {
		running = running.Add(txs[j].SignedEffect())
	}
	return StatementEntry{Position: i, Transaction: txs[i], RunningBalance: running}, true
}

// EntryFromEnd returns the i-th entry counting back from the most recent,
// so EntryFromEnd(0) is the last statement line.
func (b *base) EntryFromEnd(i int) (StatementEntry, bool) {
	n := len(b.history)
	return b.EntryAt(n - 1 - i)
}

// EntryRange returns the contiguous half-open sub-range [from, to) of the
// statement. Bounds are clamped to the history; an empty range yields an
// empty slice.
func (b *base) EntryRange(from, to int) []StatementEntry {
	n := len(b.history)
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from >= to {
		return []StatementEntry{}
	}
	txs := b.ordered()
	running := b.opening
	out := make([]StatementEntry, 0, to-from)
	for i := 0; i < to; i++ {
		running = running.Add(txs[i].SignedEffect())
		if i >= from {
			out = append(out, StatementEntry{Position: i, Transaction: txs[i], RunningBalance: running})
		}
	}
	return out
}
