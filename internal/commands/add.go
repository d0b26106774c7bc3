package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/txdesk-dev/txdesk/internal/model"
	"github.com/txdesk-dev/txdesk/internal/session"
)

func newAddCommand(e *env) *cobra.Command {
	var id string
	var status string
	var txType string
	var client string
	var amount string
	var date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedStatus, err := model.ParseStatus(status)
			if err != nil {
				return err
			}
			parsedType, err := model.ParseTxType(txType)
			if err != nil {
				return err
			}
			parsedAmount, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing --amount %q: %w", amount, err)
			}
			parsedDate, err := time.Parse(model.DateFormat, date)
			if err != nil {
				return fmt.Errorf("parsing --date %q: %w", date, err)
			}

			sess, closeFn, err := e.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			rec, err := sess.Add(cmd.Context(), session.AddParams{
				ID:         id,
				Status:     parsedStatus,
				Type:       parsedType,
				ClientName: client,
				Amount:     parsedAmount,
				Date:       parsedDate,
			})
			if err != nil {
				return err
			}

			e.logOp("add", rec.ID, fmt.Sprintf("%s %s %s", rec.Type, rec.Amount, rec.ClientName))
			fmt.Fprintf(cmd.OutOrStdout(), "Added transaction %s\n", rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "transaction id (generated when omitted)")
	cmd.Flags().StringVar(&status, "status", string(model.StatusPending), "status (Pending, Completed, Cancelled)")
	cmd.Flags().StringVar(&txType, "type", "", "type (Refill, Withdrawal); required")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&client, "client", "", "client name")
	cmd.Flags().StringVar(&amount, "amount", "", "amount; required")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateFormat), "date (YYYY-MM-DD)")

	return cmd
}
