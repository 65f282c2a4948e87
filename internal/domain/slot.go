package domain

import "time"

// BlockScopeKind distinguishes whole-day blocks from single-slot blocks
type BlockScopeKind int

const (
	ScopeWholeDay BlockScopeKind = iota
	ScopeSingleSlot
)

// BlockScope is the tagged variant WholeDay(date) | SingleSlot(date, time).
// Construct it with WholeDay or SingleSlot.
type BlockScope struct {
	kind BlockScopeKind
	date string
	time string
}

// WholeDay creates a scope covering every slot of the date
func WholeDay(date string) BlockScope {
	return BlockScope{kind: ScopeWholeDay, date: date}
}

// SingleSlot creates a scope covering exactly one slot
func SingleSlot(date, slot string) BlockScope {
	return BlockScope{kind: ScopeSingleSlot, date: date, time: slot}
}

// Kind returns the variant tag
func (s BlockScope) Kind() BlockScopeKind {
	return s.kind
}

// Date returns the date key of the scope
func (s BlockScope) Date() string {
	return s.date
}

// Time returns the slot label and true for SingleSlot, "" and false for WholeDay
func (s BlockScope) Time() (string, bool) {
	if s.kind == ScopeSingleSlot {
		return s.time, true
	}
	return "", false
}

// IsWholeDay returns true for the WholeDay variant
func (s BlockScope) IsWholeDay() bool {
	return s.kind == ScopeWholeDay
}

// Covers returns true if the scope suppresses the slot at (date, slot)
func (s BlockScope) Covers(date, slot string) bool {
	if s.date != date {
		return false
	}
	return s.kind == ScopeWholeDay || s.time == slot
}

// Equal returns true if both scopes have the same granularity and target
func (s BlockScope) Equal(other BlockScope) bool {
	return s == other
}

// String renders the scope for logs
func (s BlockScope) String() string {
	if s.kind == ScopeWholeDay {
		return s.date + " (whole day)"
	}
	return s.date + " " + s.time
}

// BlockedSlot is an administrator-defined blackout
type BlockedSlot struct {
	ID        string
	Scope     BlockScope
	CreatedAt time.Time
}

// Covers returns true if the block suppresses the slot at (date, slot)
func (b *BlockedSlot) Covers(date, slot string) bool {
	return b.Scope.Covers(date, slot)
}
