// Package txcsv converts between transaction records and the flat CSV
// interchange format: positional fields id,status,type,clientName,amount,date,
// one record per line, first line a header. Fields are split on literal
// commas with no quoting support, so a field containing a comma corrupts
// its row. That is an accepted limitation of the format.
package txcsv

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/txdesk-dev/txdesk/internal/model"
)

const numFields = 6

const (
	colID     = 0
	colStatus = 1
	colType   = 2
	colClient = 3
	colAmount = 4
	colDate   = 5
)

// MalformedRowError describes a single undecodable CSV row.
type MalformedRowError struct {
	Line int // 1-based line number in the input text
	Err  error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// Decode parses CSV text into transaction records. The first line is a
// header and is discarded without validation. Malformed rows are skipped
// and reported: callers that need all-or-nothing semantics check that the
// returned error slice is empty.
func Decode(text string) ([]model.TransactionRecord, []*MalformedRowError) {
	lines := strings.Split(text, "\n")

	var records []model.TransactionRecord
	var rowErrs []*MalformedRowError
	for i, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rec, err := decodeRow(line)
		if err != nil {
			rowErrs = append(rowErrs, &MalformedRowError{Line: i + 2, Err: err})
			continue
		}
		records = append(records, rec)
	}
	return records, rowErrs
}

func decodeRow(line string) (model.TransactionRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) < numFields {
		return model.TransactionRecord{}, fmt.Errorf("expected %d fields, got %d", numFields, len(fields))
	}

	id := strings.TrimSpace(fields[colID])
	if id == "" {
		return model.TransactionRecord{}, fmt.Errorf("empty id")
	}

	status, err := model.ParseStatus(fields[colStatus])
	if err != nil {
		return model.TransactionRecord{}, err
	}

	txType, err := model.ParseTxType(fields[colType])
	if err != nil {
		return model.TransactionRecord{}, err
	}

	amount, err := parseAmount(fields[colAmount])
	if err != nil {
		return model.TransactionRecord{}, err
	}

	date, err := time.Parse(model.DateFormat, strings.TrimSpace(fields[colDate]))
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("parsing date %q: %w", fields[colDate], err)
	}

	return model.TransactionRecord{
		ID:         id,
		Status:     status,
		Type:       txType,
		ClientName: strings.TrimSpace(fields[colClient]),
		Amount:     amount,
		Date:       date,
	}, nil
}

// parseAmount strips every rune that is not a digit or decimal point
// before converting, so currency symbols and stray whitespace survive.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, raw)
	if !strings.ContainsAny(cleaned, "0123456789") {
		return decimal.Decimal{}, fmt.Errorf("amount %q contains no digits", raw)
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return amount, nil
}

// Encode renders records to CSV text: a header row of the selected column
// display names, then one row per record projected and reordered to the
// selection. No quoting is applied.
func Encode(records []model.TransactionRecord, columns []model.Column) string {
	var b strings.Builder

	for i, c := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(c))
	}

	for _, rec := range records {
		b.WriteByte('\n')
		for i, c := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(c.Field(rec))
		}
	}
	return b.String()
}
