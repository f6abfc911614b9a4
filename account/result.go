package account

import "fmt"

// Reason classifies why an operation was rejected. Rejections are ordinary
// return values: business-rule failures are expected control flow, not
// panics or errors.
type Reason string

const (
	// ReasonRuleRejected means a registered rule-engine predicate said no.
	ReasonRuleRejected Reason = "rule-rejected"
	// ReasonInsufficientFunds means the variant's funds check failed
	// (including overdraft limits).
	ReasonInsufficientFunds Reason = "insufficient-funds"
	// ReasonLimitExceeded means a variant aggregate limit (the business
	// daily cap) would be exceeded.
	ReasonLimitExceeded Reason = "limit-exceeded"
	// ReasonWrongKind means the transaction kind does not match the
	// operation (e.g. a withdrawal passed to Deposit).
	ReasonWrongKind Reason = "wrong-kind"
)

// Result reports the outcome of a mutating operation. When Accepted is
// false, Reason says why and Rule names the failing predicate for
// rule-engine rejections.
type Result struct {
	Accepted bool
	Reason   Reason
	Rule     string
	Detail   string
}

// Rejected reports whether the operation was refused.
func (r Result) Rejected() bool { return !r.Accepted }

func (r Result) String() string {
	if r.Accepted {
		return "accepted"
	}
	if r.Rule != "" {
		return fmt.Sprintf("rejected: %s (%s)", r.Reason, r.Rule)
	}
	if r.Detail != "" {
		return fmt.Sprintf("rejected: %s (%s)", r.Reason, r.Detail)
	}
	return fmt.Sprintf("rejected: %s", r.Reason)
}

func accepted() Result { return Result{Accepted: true} }

func rejected(reason Reason, ruleName, detail string) Result {
	return Result{Reason: reason, Rule: ruleName, Detail: detail}
}
