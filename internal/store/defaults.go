package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/txdesk-dev/txdesk/internal/model"
)

// BootstrapRecords returns the sample records a fresh store is seeded
// with, so a first run has something to show.
func BootstrapRecords() []model.TransactionRecord {
	return []model.TransactionRecord{
		{
			ID:         "1",
			Status:     model.StatusPending,
			Type:       model.TypeRefill,
			ClientName: "Alice Johnson",
			Amount:     decimal.New(10050, -2),
			Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			Status:     model.StatusCompleted,
			Type:       model.TypeWithdrawal,
			ClientName: "Bob Smith",
			Amount:     decimal.New(7525, -2),
			Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "3",
			Status:     model.StatusCancelled,
			Type:       model.TypeRefill,
			ClientName: "Carol Diaz",
			Amount:     decimal.New(25000, -2),
			Date:       time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
		},
	}
}
