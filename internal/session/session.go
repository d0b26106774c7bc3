// Package session coordinates the in-memory transaction state: load,
// import, edit, two-phase delete, filtering, pagination, column
// selection, and export. A Session is the sole mutator of that state;
// the view layer consumes its read models.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/txdesk-dev/txdesk/internal/filter"
	"github.com/txdesk-dev/txdesk/internal/model"
	"github.com/txdesk-dev/txdesk/internal/store"
	"github.com/txdesk-dev/txdesk/internal/txcsv"
)

// DefaultPageSize is the number of records shown per page.
const DefaultPageSize = 10

// State is the session lifecycle phase.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
)

// ErrNotReady is returned when an operation runs before Load completes.
var ErrNotReady = errors.New("session not ready")

// NotFoundError reports an edit or delete referencing an unknown record id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %q not found", e.ID)
}

// Session holds the loaded record set and the user's current view of it.
type Session struct {
	store        *store.Store
	pageSize     int
	allowPartial bool

	state         State
	records       []model.TransactionRecord
	filtered      []model.TransactionRecord
	spec          filter.Spec
	page          int
	columns       []model.Column
	pendingDelete string
}

// Option tunes a new Session.
type Option func(*Session)

// WithPageSize overrides the default page size.
func WithPageSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithPartialImports keeps decodable rows when an import hits malformed
// ones instead of aborting the import.
func WithPartialImports() Option {
	return func(s *Session) { s.allowPartial = true }
}

// WithColumns sets the initial export column selection.
func WithColumns(columns []model.Column) Option {
	return func(s *Session) { s.columns = append([]model.Column(nil), columns...) }
}

// New creates a Session over an opened store. Call Load before anything else.
func New(st *store.Store, opts ...Option) *Session {
	s := &Session{
		store:    st,
		pageSize: DefaultPageSize,
		state:    StateUninitialized,
		page:     1,
		columns:  model.AllColumns(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Load seeds a fresh store and pulls the full record set into memory,
// moving the session to Ready. A store failure leaves the session
// uninitialized; it can be retried.
func (s *Session) Load(ctx context.Context) error {
	s.state = StateLoading
	if _, err := s.store.SeedIfEmpty(ctx, store.BootstrapRecords()); err != nil {
		s.state = StateUninitialized
		return err
	}
	records, err := s.store.GetAll(ctx)
	if err != nil {
		s.state = StateUninitialized
		return err
	}
	s.records = records
	s.state = StateReady
	s.refilter()
	return nil
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	Imported int
	Skipped  []*txcsv.MalformedRowError
}

// Import decodes CSV text and replaces the in-memory record set with the
// result, re-applying the active filter. Imported data is session-scoped:
// it is not written to the store until an explicit edit path persists a
// record. When the text contains malformed rows the import is aborted and
// the loaded set left untouched, unless partial imports are enabled.
func (s *Session) Import(csvText string) (ImportResult, error) {
	if s.state != StateReady {
		return ImportResult{}, ErrNotReady
	}

	records, rowErrs := txcsv.Decode(csvText)
	if len(rowErrs) > 0 && !s.allowPartial {
		return ImportResult{Skipped: rowErrs},
			fmt.Errorf("import aborted: %d malformed rows, first at line %d: %w",
				len(rowErrs), rowErrs[0].Line, rowErrs[0])
	}

	s.records = records
	s.pendingDelete = ""
	s.refilter()
	return ImportResult{Imported: len(records), Skipped: rowErrs}, nil
}

// SaveAll persists every in-memory record to the store. This is the
// explicit save path for imported, session-scoped data.
func (s *Session) SaveAll(ctx context.Context) error {
	if s.state != StateReady {
		return ErrNotReady
	}
	for _, rec := range s.records {
		if err := s.store.Put(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Changes holds the record fields an edit may replace. Nil fields keep
// their current value. The record id is immutable.
type Changes struct {
	Status     *model.Status
	Type       *model.TxType
	ClientName *string
	Amount     *decimal.Decimal
	Date       *time.Time
}

// Edit merges changes into the record with the given id, persists the
// updated record, and re-applies the active filter.
func (s *Session) Edit(ctx context.Context, id string, changes Changes) (model.TransactionRecord, error) {
	if s.state != StateReady {
		return model.TransactionRecord{}, ErrNotReady
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return model.TransactionRecord{}, &NotFoundError{ID: id}
	}

	updated := s.records[idx]
	if changes.Status != nil {
		updated.Status = *changes.Status
	}
	if changes.Type != nil {
		updated.Type = *changes.Type
	}
	if changes.ClientName != nil {
		updated.ClientName = *changes.ClientName
	}
	if changes.Amount != nil {
		updated.Amount = *changes.Amount
	}
	if changes.Date != nil {
		updated.Date = *changes.Date
	}

	if err := s.store.Put(ctx, updated); err != nil {
		return model.TransactionRecord{}, err
	}

	s.records[idx] = updated
	s.refilter()
	return updated, nil
}

// AddParams holds the fields for a manually created record.
type AddParams struct {
	ID         string // optional; generated when empty
	Status     model.Status
	Type       model.TxType
	ClientName string
	Amount     decimal.Decimal
	Date       time.Time
}

// Add creates a new record, persists it, and appends it to the in-memory
// set. When no id is given a random one is assigned.
func (s *Session) Add(ctx context.Context, params AddParams) (model.TransactionRecord, error) {
	if s.state != StateReady {
		return model.TransactionRecord{}, ErrNotReady
	}

	id := params.ID
	if id == "" {
		uid, err := uuid.NewV4()
		if err != nil {
			return model.TransactionRecord{}, fmt.Errorf("generating id: %w", err)
		}
		id = uid.String()
	}
	if s.indexOf(id) >= 0 {
		return model.TransactionRecord{}, fmt.Errorf("transaction %q already exists", id)
	}

	rec := model.TransactionRecord{
		ID:         id,
		Status:     params.Status,
		Type:       params.Type,
		ClientName: params.ClientName,
		Amount:     params.Amount,
		Date:       params.Date,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return model.TransactionRecord{}, err
	}

	s.records = append(s.records, rec)
	s.refilter()
	return rec, nil
}

// RequestDelete marks a record for deletion. Nothing is removed until
// ConfirmDelete; a single call can never destroy data.
func (s *Session) RequestDelete(id string) error {
	if s.state != StateReady {
		return ErrNotReady
	}
	if s.indexOf(id) < 0 {
		return &NotFoundError{ID: id}
	}
	s.pendingDelete = id
	return nil
}

// PendingDelete returns the id awaiting confirmation, if any.
func (s *Session) PendingDelete() (string, bool) {
	return s.pendingDelete, s.pendingDelete != ""
}

// ConfirmDelete executes the pending deletion, removing the record from
// the store and the in-memory set. Without a prior RequestDelete it is a
// no-op.
func (s *Session) ConfirmDelete(ctx context.Context) error {
	if s.state != StateReady {
		return ErrNotReady
	}
	if s.pendingDelete == "" {
		return nil
	}

	id := s.pendingDelete
	if err := s.store.Remove(ctx, id); err != nil {
		return err
	}
	s.pendingDelete = ""

	idx := s.indexOf(id)
	if idx >= 0 {
		s.records = append(s.records[:idx], s.records[idx+1:]...)
	}
	s.refilter()
	return nil
}

// CancelDelete discards the pending deletion.
func (s *Session) CancelDelete() {
	s.pendingDelete = ""
}

// SetFilter replaces the active filter, re-applies it over the full set,
// and resets to the first page.
func (s *Session) SetFilter(spec filter.Spec) error {
	if s.state != StateReady {
		return ErrNotReady
	}
	s.spec = spec
	s.refilter()
	return nil
}

// Filter returns the active filter spec.
func (s *Session) Filter() filter.Spec { return s.spec }

// SetPage moves to page n. Out-of-range requests are rejected, not
// clamped: the page stays where it was and false is returned.
func (s *Session) SetPage(n int) bool {
	if s.state != StateReady {
		return false
	}
	if n < 1 || n > s.PageCount() {
		return false
	}
	s.page = n
	return true
}

// SetColumns replaces the export column selection, preserving the given
// order.
func (s *Session) SetColumns(columns []model.Column) {
	s.columns = append([]model.Column(nil), columns...)
}

// ToggleColumn removes the column from the selection if present,
// otherwise appends it.
func (s *Session) ToggleColumn(c model.Column) {
	for i, existing := range s.columns {
		if existing == c {
			s.columns = append(s.columns[:i], s.columns[i+1:]...)
			return
		}
	}
	s.columns = append(s.columns, c)
}

// Columns returns the current export column selection.
func (s *Session) Columns() []model.Column {
	return append([]model.Column(nil), s.columns...)
}

// Export encodes the currently filtered set with the current column
// selection.
func (s *Session) Export() (string, error) {
	if s.state != StateReady {
		return "", ErrNotReady
	}
	return txcsv.Encode(s.filtered, s.columns), nil
}

// refilter recomputes the filtered view and returns to the first page.
func (s *Session) refilter() {
	s.filtered = filter.Apply(s.records, s.spec)
	s.page = 1
}

func (s *Session) indexOf(id string) int {
	for i, rec := range s.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
