// Package filter narrows transaction record lists by a declarative spec.
package filter

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txdesk-dev/txdesk/internal/model"
)

// Spec holds filter criteria. All fields are optional; pointers
// distinguish "not set" from zero values. An unset field imposes no
// constraint.
type Spec struct {
	Status    *model.Status
	Type      *model.TxType
	StartDate *time.Time       // inclusive, calendar-date semantics
	EndDate   *time.Time       // inclusive
	MinAmount *decimal.Decimal // inclusive
	MaxAmount *decimal.Decimal // inclusive
	Search    *string          // case-insensitive substring over all fields
}

// IsZero reports whether no criteria are set.
func (s Spec) IsZero() bool {
	return s.Status == nil && s.Type == nil &&
		s.StartDate == nil && s.EndDate == nil &&
		s.MinAmount == nil && s.MaxAmount == nil &&
		s.Search == nil
}

// Apply returns the records matching every set criterion, preserving
// their relative order. The input is never mutated.
func Apply(records []model.TransactionRecord, spec Spec) []model.TransactionRecord {
	if spec.IsZero() {
		out := make([]model.TransactionRecord, len(records))
		copy(out, records)
		return out
	}

	out := make([]model.TransactionRecord, 0, len(records))
	for _, rec := range records {
		if spec.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether a record satisfies every set criterion. The
// free-text search is one more conjunct, not an alternative: a record
// must match it and the structured criteria.
func (s Spec) Matches(rec model.TransactionRecord) bool {
	if s.Status != nil && rec.Status != *s.Status {
		return false
	}
	if s.Type != nil && rec.Type != *s.Type {
		return false
	}
	if s.StartDate != nil && dateOnly(rec.Date).Before(dateOnly(*s.StartDate)) {
		return false
	}
	if s.EndDate != nil && dateOnly(rec.Date).After(dateOnly(*s.EndDate)) {
		return false
	}
	if s.MinAmount != nil && rec.Amount.LessThan(*s.MinAmount) {
		return false
	}
	if s.MaxAmount != nil && rec.Amount.GreaterThan(*s.MaxAmount) {
		return false
	}
	if s.Search != nil && !matchesSearch(rec, *s.Search) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring test against each field
// independently, OR across fields.
func matchesSearch(rec model.TransactionRecord, needle string) bool {
	needle = strings.ToLower(needle)
	fields := []string{
		rec.ID,
		string(rec.Status),
		string(rec.Type),
		rec.Amount.String(),
		rec.Date.Format(model.DateFormat),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// dateOnly truncates to calendar-date precision; time of day is ignored
// in range comparisons.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
