// Package classify assigns reporting labels to transactions. All three
// functions are pure and total: every valid transaction maps to exactly one
// category, one risk level, and one amount band.
package classify

import (
	"time"

	"github.com/shopspring/decimal"

	"bankcore/model"
)

// Category is the reporting bucket for a transaction.
type Category string

const (
	CategoryCashIn   Category = "cash-in"
	CategoryCashOut  Category = "cash-out"
	CategoryTransfer Category = "transfer"
	CategoryInterest Category = "interest"
)

// RiskLevel grades a transaction for review purposes.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Band groups transactions by magnitude using half-open ranges.
type Band string

const (
	BandSmall  Band = "small"  // (0, 1000)
	BandMedium Band = "medium" // [1000, 10000)
	BandLarge  Band = "large"  // [10000, inf)
)

// Thresholds. Boundary ownership is explicit: a value sitting exactly on a
// threshold belongs to the band the threshold opens.
var (
	bandMediumFloor = decimal.NewFromInt(1_000)
	bandLargeFloor  = decimal.NewFromInt(10_000)

	highValueThreshold      = decimal.NewFromInt(10_000)
	mediumTransferThreshold = decimal.NewFromInt(1_000)
)

// Classify maps a transaction to its category. Dispatch is kind-first, with
// one guard: interest postings are deposits but report separately.
func Classify(tx model.Transaction) Category {
	switch tx.Kind() {
	case model.KindDeposit:
		if tx.Description() == model.DescriptionInterest {
			return CategoryInterest
		}
		return CategoryCashIn
	case model.KindWithdrawal:
		return CategoryCashOut
	default:
		return CategoryTransfer
	}
}

// Risk grades a transaction. A high-value amount is high risk regardless of
// kind or timing; transfers at or above the medium threshold and any
// weekend transaction are medium; everything else is low.
func Risk(tx model.Transaction) RiskLevel {
	if tx.Amount().GreaterThanOrEqual(highValueThreshold) {
		return RiskHigh
	}
	if tx.Kind() == model.KindTransfer && tx.Amount().GreaterThanOrEqual(mediumTransferThreshold) {
		return RiskMedium
	}
	if wd := tx.Timestamp().Weekday(); wd == time.Saturday || wd == time.Sunday {
		return RiskMedium
	}
	return RiskLow
}

// AmountBand places a transaction in its magnitude band: (0, 1000) small,
// [1000, 10000) medium, [10000, inf) large.
func AmountBand(tx model.Transaction) Band {
	amount := tx.Amount()
	switch {
	case amount.GreaterThanOrEqual(bandLargeFloor):
		return BandLarge
	case amount.GreaterThanOrEqual(bandMediumFloor):
		return BandMedium
	default:
		return BandSmall
	}
}
