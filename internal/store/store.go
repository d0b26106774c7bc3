// Package store persists transaction records in an embedded SQLite
// database file, keyed by record id.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/txdesk-dev/txdesk/internal/model"
)

// schemaVersion is recorded in PRAGMA user_version. There is no
// migration logic: the schema is created if absent and never altered.
const schemaVersion = 1

// StoreUnavailableError reports a persistence-layer failure. It is fatal
// to the operation that triggered it but not to the owning session.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("transaction store %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

func unavailable(op string, err error) error {
	return &StoreUnavailableError{Op: op, Err: err}
}

// Store owns the database handle. Open once per session; the handle is
// limited to a single connection so mutating operations cannot
// interleave into lost updates.
type Store struct {
	db *sql.DB
}

// Open opens (creating on first use) the transaction database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, unavailable("open", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			id          TEXT NOT NULL UNIQUE,
			status      TEXT NOT NULL,
			type        TEXT NOT NULL,
			client_name TEXT NOT NULL,
			amount      TEXT NOT NULL,
			date        TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_client_name ON transactions(client_name)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_amount ON transactions(amount)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
		fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion),
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return unavailable("open", err)
		}
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return unavailable("close", err)
	}
	return nil
}

// Put inserts or updates a record by id. An update keeps the record's
// original insertion position.
func (s *Store) Put(ctx context.Context, rec model.TransactionRecord) error {
	const q = `INSERT INTO transactions (id, status, type, client_name, amount, date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			type = excluded.type,
			client_name = excluded.client_name,
			amount = excluded.amount,
			date = excluded.date`
	_, err := s.db.ExecContext(ctx, q,
		rec.ID, string(rec.Status), string(rec.Type),
		rec.ClientName, rec.Amount.String(), rec.Date.Format(model.DateFormat))
	if err != nil {
		return unavailable("put", err)
	}
	return nil
}

// GetAll returns every stored record in insertion order.
func (s *Store) GetAll(ctx context.Context) ([]model.TransactionRecord, error) {
	const q = `SELECT id, status, type, client_name, amount, date
		FROM transactions ORDER BY seq`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, unavailable("getAll", err)
	}
	defer rows.Close()

	var records []model.TransactionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, unavailable("getAll", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("getAll", err)
	}
	return records, nil
}

// Remove deletes a record by id. Removing an absent id is not an error.
func (s *Store) Remove(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return unavailable("remove", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, unavailable("count", err)
	}
	return n, nil
}

// SeedIfEmpty populates an empty store with the given bootstrap records.
// It never overwrites existing data. Reports whether seeding happened.
func (s *Store) SeedIfEmpty(ctx context.Context, records []model.TransactionRecord) (bool, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	for _, rec := range records {
		if err := s.Put(ctx, rec); err != nil {
			return false, err
		}
	}
	return true, nil
}

func scanRecord(rows *sql.Rows) (model.TransactionRecord, error) {
	var rec model.TransactionRecord
	var status, txType, amount, date string
	if err := rows.Scan(&rec.ID, &status, &txType, &rec.ClientName, &amount, &date); err != nil {
		return model.TransactionRecord{}, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("parsing stored amount %q: %w", amount, err)
	}
	rec.Amount = parsed

	d, err := time.Parse(model.DateFormat, date)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("parsing stored date %q: %w", date, err)
	}
	rec.Date = d

	rec.Status = model.Status(status)
	rec.Type = model.TxType(txType)
	return rec, nil
}
