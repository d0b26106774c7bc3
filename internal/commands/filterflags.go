package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/txdesk-dev/txdesk/internal/filter"
	"github.com/txdesk-dev/txdesk/internal/model"
)

// filterFlags maps CLI flags onto a filter spec. Unset flags leave the
// corresponding criterion unset.
type filterFlags struct {
	status    string
	txType    string
	from      string
	to        string
	minAmount string
	maxAmount string
	search    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", "", "filter by status (Pending, Completed, Cancelled)")
	cmd.Flags().StringVar(&f.txType, "type", "", "filter by type (Refill, Withdrawal)")
	cmd.Flags().StringVar(&f.from, "from", "", "earliest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "latest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.minAmount, "min-amount", "", "minimum amount, inclusive")
	cmd.Flags().StringVar(&f.maxAmount, "max-amount", "", "maximum amount, inclusive")
	cmd.Flags().StringVar(&f.search, "search", "", "free-text search across all fields")
}

func (f *filterFlags) spec() (filter.Spec, error) {
	var spec filter.Spec

	if f.status != "" {
		status, err := model.ParseStatus(f.status)
		if err != nil {
			return filter.Spec{}, err
		}
		spec.Status = &status
	}
	if f.txType != "" {
		txType, err := model.ParseTxType(f.txType)
		if err != nil {
			return filter.Spec{}, err
		}
		spec.Type = &txType
	}
	if f.from != "" {
		from, err := time.Parse(model.DateFormat, f.from)
		if err != nil {
			return filter.Spec{}, fmt.Errorf("parsing --from %q: %w", f.from, err)
		}
		spec.StartDate = &from
	}
	if f.to != "" {
		to, err := time.Parse(model.DateFormat, f.to)
		if err != nil {
			return filter.Spec{}, fmt.Errorf("parsing --to %q: %w", f.to, err)
		}
		spec.EndDate = &to
	}
	if f.minAmount != "" {
		min, err := decimal.NewFromString(f.minAmount)
		if err != nil {
			return filter.Spec{}, fmt.Errorf("parsing --min-amount %q: %w", f.minAmount, err)
		}
		spec.MinAmount = &min
	}
	if f.maxAmount != "" {
		max, err := decimal.NewFromString(f.maxAmount)
		if err != nil {
			return filter.Spec{}, fmt.Errorf("parsing --max-amount %q: %w", f.maxAmount, err)
		}
		spec.MaxAmount = &max
	}
	if f.search != "" {
		search := f.search
		spec.Search = &search
	}

	return spec, nil
}
