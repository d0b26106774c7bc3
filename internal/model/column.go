package model

import "fmt"

// Column identifies an exportable transaction field.
type Column string

const (
	ColumnID         Column = "Id"
	ColumnStatus     Column = "Status"
	ColumnType       Column = "Type"
	ColumnClientName Column = "Client Name"
	ColumnAmount     Column = "Amount"
	ColumnDate       Column = "Date"
)

// AllColumns returns the column universe in its natural order.
func AllColumns() []Column {
	return []Column{
		ColumnID,
		ColumnStatus,
		ColumnType,
		ColumnClientName,
		ColumnAmount,
		ColumnDate,
	}
}

// ParseColumn matches a display name to a Column.
func ParseColumn(name string) (Column, error) {
	for _, c := range AllColumns() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown column %q", name)
}

// Field returns the record field a column projects to, as its wire string.
func (c Column) Field(r TransactionRecord) string {
	switch c {
	case ColumnID:
		return r.ID
	case ColumnStatus:
		return string(r.Status)
	case ColumnType:
		return string(r.Type)
	case ColumnClientName:
		return r.ClientName
	case ColumnAmount:
		return r.Amount.String()
	case ColumnDate:
		return r.Date.Format(DateFormat)
	default:
		return ""
	}
}
