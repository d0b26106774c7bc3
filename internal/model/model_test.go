package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Pending", StatusPending},
		{"pending", StatusPending},
		{"COMPLETED", StatusCompleted},
		{"Cancelled", StatusCancelled},
		{"failed", StatusCancelled}, // legacy value
		{" Pending ", StatusPending},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseStatus("unknown")
	require.Error(t, err)
}

func TestParseTxType(t *testing.T) {
	got, err := ParseTxType("refill")
	require.NoError(t, err)
	assert.Equal(t, TypeRefill, got)

	got, err = ParseTxType("Withdrawal")
	require.NoError(t, err)
	assert.Equal(t, TypeWithdrawal, got)

	_, err = ParseTxType("transfer")
	require.Error(t, err)
}

func TestParseColumn(t *testing.T) {
	got, err := ParseColumn("Client Name")
	require.NoError(t, err)
	assert.Equal(t, ColumnClientName, got)

	_, err = ParseColumn("client_name")
	require.Error(t, err)
}

func TestColumnField(t *testing.T) {
	amount, _ := decimal.NewFromString("100.5")
	rec := TransactionRecord{
		ID:         "1",
		Status:     StatusPending,
		Type:       TypeRefill,
		ClientName: "Alice",
		Amount:     amount,
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "1", ColumnID.Field(rec))
	assert.Equal(t, "Pending", ColumnStatus.Field(rec))
	assert.Equal(t, "Refill", ColumnType.Field(rec))
	assert.Equal(t, "Alice", ColumnClientName.Field(rec))
	assert.Equal(t, "100.5", ColumnAmount.Field(rec))
	assert.Equal(t, "2024-01-01", ColumnDate.Field(rec))
}
