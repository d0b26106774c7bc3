package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the settlement state of a transaction.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// TxType classifies the direction of a transaction.
type TxType string

const (
	TypeRefill     TxType = "Refill"
	TypeWithdrawal TxType = "Withdrawal"
)

// DateFormat is the wire form for transaction dates.
const DateFormat = "2006-01-02"

// TransactionRecord is a single transaction entry.
type TransactionRecord struct {
	ID         string
	Status     Status
	Type       TxType
	ClientName string
	Amount     decimal.Decimal
	Date       time.Time
}

// ParseStatus normalizes a raw status value to the canonical enum.
// Legacy exports used lowercase variants and "failed" for a cancelled
// transaction; both fold into the canonical set.
func ParseStatus(value string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pending":
		return StatusPending, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled", "failed":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown status %q", value)
	}
}

// ParseTxType normalizes a raw type value to the canonical enum.
func ParseTxType(value string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "refill":
		return TypeRefill, nil
	case "withdrawal":
		return TypeWithdrawal, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", value)
	}
}
