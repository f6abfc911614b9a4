// Package audit collects significant account events and multicasts them to
// registered sinks. The trail is an in-memory log; reports are built on
// demand from the full history.
package audit

import "time"

// Sink receives one entry. Sinks are invoked synchronously, in registration
// order, within the call that recorded the entry.
type Sink func(Entry)

// Entry is a single audited event.
type Entry struct {
	At        time.Time
	AccountID string
	Event     string
}

// Trail owns the ordered entry log and the sink chain for one account.
// The zero value is ready to use.
type Trail struct {
	sinks   []Sink
	entries []Entry
}

// Attach registers a sink. A sink attached after entries were recorded only
// sees entries recorded from now on.
func (t *Trail) Attach(s Sink) {
	t.sinks = append(t.sinks, s)
}

// Record appends the entry to the log and dispatches it to every sink in
// registration order.
func (t *Trail) Record(e Entry) {
	t.entries = append(t.entries, e)
	for _, s := range t.sinks {
		s(e)
	}
}

// Entries returns a copy of the full log.
func (t *Trail) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Report summarizes an account's audit history.
type Report struct {
	AccountID string
	Count     int
	First     time.Time
	Last      time.Time
	Events    []string
}

// Report aggregates the full logged history into a summary. It is computed
// fresh on every call; nothing is cached.
func (t *Trail) Report() Report {
	r := Report{Count: len(t.entries)}
	if r.Count == 0 {
		return r
	}
	r.AccountID = t.entries[0].AccountID
	r.First = t.entries[0].At
	r.Last = t.entries[r.Count-1].At
	r.Events = make([]string, 0, r.Count)
	for _, e := range t.entries {
		r.Events = append(r.Events, e.Event)
	}
	return r
}
