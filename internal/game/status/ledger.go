package status

import "fmt"

// Permanent marks a status that never expires on its own.
const Permanent = -1

// Status is one applied condition.
type Status struct {
	Kind Kind
	// Elapsed counts the turns the status has been advanced.
	Elapsed int
	// Duration is the number of turns the status lasts; Permanent never expires.
	Duration int
}

// IsPermanent reports whether s never expires.
func (s Status) IsPermanent() bool {
	return s.Duration < 0
}

// Remaining returns the turns left before s expires, or Permanent.
func (s Status) Remaining() int {
	if s.IsPermanent() {
		return Permanent
	}
	return max(s.Duration-s.Elapsed, 0)
}

// Expired reports whether s has run its full duration.
func (s Status) Expired() bool {
	return !s.IsPermanent() && s.Elapsed >= s.Duration
}

// Ledger is the ordered set of statuses on one character.
// It is not safe for concurrent use; the caller must serialise access.
type Ledger struct {
	entries []Status
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Apply adds a status of kind lasting duration turns.
// Re-applying a kind already present refreshes it in place when the new
// duration outlasts what remains; its position in the ledger is unchanged.
//
// Precondition: duration > 0 or duration == Permanent.
// Postcondition: Has(kind) is true and appears exactly once.
func (l *Ledger) Apply(kind Kind, duration int) {
	if duration == 0 || duration < Permanent {
		panic(fmt.Sprintf("status: Apply called with invalid duration %d for %q", duration, kind))
	}
	for i := range l.entries {
		s := &l.entries[i]
		if s.Kind != kind {
			continue
		}
		switch {
		case s.IsPermanent():
		case duration == Permanent || duration > s.Remaining():
			s.Elapsed = 0
			s.Duration = duration
		}
		return
	}
	l.entries = append(l.entries, Status{Kind: kind, Duration: duration})
}

// Advance moves every status forward one turn in insertion order, then
// removes the expired ones keeping the survivors' relative order.
//
// Postcondition: Returns the kinds removed, in ledger order. No remaining status is expired.
func (l *Ledger) Advance() []Kind {
	for i := range l.entries {
		if !l.entries[i].IsPermanent() {
			l.entries[i].Elapsed++
		}
	}
	var expired []Kind
	kept := l.entries[:0]
	for _, s := range l.entries {
		if s.Expired() {
			expired = append(expired, s.Kind)
			continue
		}
		kept = append(kept, s)
	}
	clear(l.entries[len(kept):])
	l.entries = kept
	return expired
}

// Has reports whether a status of kind is present.
func (l *Ledger) Has(kind Kind) bool {
	_, ok := l.Get(kind)
	return ok
}

// Get returns the status of kind, if present.
func (l *Ledger) Get(kind Kind) (Status, bool) {
	for _, s := range l.entries {
		if s.Kind == kind {
			return s, true
		}
	}
	return Status{}, false
}

// Remove deletes the status of kind. Removing an absent kind is a no-op.
//
// Postcondition: Has(kind) is false.
func (l *Ledger) Remove(kind Kind) {
	for i, s := range l.entries {
		if s.Kind == kind {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// All returns a copy of the statuses in ledger order.
func (l *Ledger) All() []Status {
	out := make([]Status, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of statuses.
func (l *Ledger) Len() int {
	return len(l.entries)
}
