package account

import (
	"fmt"
	"time"

	"bankcore/audit"
	"bankcore/model"
)

// auditTrail is embedded by the variants that carry the Auditable
// capability (savings, business). It satisfies the Auditable interface on
// their behalf.
type auditTrail struct {
	accountID string
	trail     audit.Trail
}

// Log records an ad-hoc event on the audit trail, stamped with the current
// time.
func (a *auditTrail) Log(event string) {
	a.trail.Record(audit.Entry{At: time.Now(), AccountID: a.accountID, Event: event})
}

// AttachAuditSink registers a logging action; every subsequent entry is
// dispatched to it in registration order.
func (a *auditTrail) AttachAuditSink(s audit.Sink) {
	a.trail.Attach(s)
}

// GenerateReport aggregates the logged history into a summary view.
func (a *auditTrail) GenerateReport() audit.Report {
	return a.trail.Report()
}

// recordOp logs the outcome of a mutating operation, stamped with the
// transaction's own timestamp so reports line up with statements.
func (a *auditTrail) recordOp(op string, tx model.Transaction, res Result) {
	a.trail.Record(audit.Entry{
		At:        tx.Timestamp(),
		AccountID: a.accountID,
		Event:     fmt.Sprintf("%s %s: %s", op, tx.Amount(), res),
	})
}
