package session

import (
	"github.com/shopspring/decimal"

	"github.com/txdesk-dev/txdesk/internal/model"
)

// TotalCount returns the size of the full in-memory record set.
func (s *Session) TotalCount() int { return len(s.records) }

// Records returns a copy of the full in-memory record set.
func (s *Session) Records() []model.TransactionRecord {
	return append([]model.TransactionRecord(nil), s.records...)
}

// FilteredCount returns the size of the record set after filtering.
func (s *Session) FilteredCount() int { return len(s.filtered) }

// CurrentPage returns the 1-based current page number.
func (s *Session) CurrentPage() int { return s.page }

// PageCount returns the number of pages the filtered set spans. An empty
// set has zero pages.
func (s *Session) PageCount() int {
	return (len(s.filtered) + s.pageSize - 1) / s.pageSize
}

// Page returns the filtered records on the current page.
func (s *Session) Page() []model.TransactionRecord {
	start := (s.page - 1) * s.pageSize
	if start >= len(s.filtered) {
		return nil
	}
	end := start + s.pageSize
	if end > len(s.filtered) {
		end = len(s.filtered)
	}
	return append([]model.TransactionRecord(nil), s.filtered[start:end]...)
}

// StatusBreakdown returns each status's share of the filtered set as a
// percentage rounded to two decimal places. Statuses with no records are
// omitted; an empty set yields an empty map.
func (s *Session) StatusBreakdown() map[model.Status]decimal.Decimal {
	breakdown := make(map[model.Status]decimal.Decimal)
	if len(s.filtered) == 0 {
		return breakdown
	}

	counts := make(map[model.Status]int)
	for _, rec := range s.filtered {
		counts[rec.Status]++
	}

	total := decimal.NewFromInt(int64(len(s.filtered)))
	for status, n := range counts {
		share := decimal.NewFromInt(int64(n * 100)).Div(total).Round(2)
		breakdown[status] = share
	}
	return breakdown
}
