package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/txdesk-dev/txdesk/internal/model"
	"github.com/txdesk-dev/txdesk/internal/session"
)

func newEditCommand(e *env) *cobra.Command {
	var status string
	var txType string
	var client string
	var amount string
	var date string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var changes session.Changes

			if cmd.Flags().Changed("status") {
				parsed, err := model.ParseStatus(status)
				if err != nil {
					return err
				}
				changes.Status = &parsed
			}
			if cmd.Flags().Changed("type") {
				parsed, err := model.ParseTxType(txType)
				if err != nil {
					return err
				}
				changes.Type = &parsed
			}
			if cmd.Flags().Changed("client") {
				changes.ClientName = &client
			}
			if cmd.Flags().Changed("amount") {
				parsed, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("parsing --amount %q: %w", amount, err)
				}
				changes.Amount = &parsed
			}
			if cmd.Flags().Changed("date") {
				parsed, err := time.Parse(model.DateFormat, date)
				if err != nil {
					return fmt.Errorf("parsing --date %q: %w", date, err)
				}
				changes.Date = &parsed
			}

			sess, closeFn, err := e.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			rec, err := sess.Edit(cmd.Context(), args[0], changes)
			if err != nil {
				return err
			}

			e.logOp("edit", rec.ID, fmt.Sprintf("%s %s %s", rec.Status, rec.Amount, rec.ClientName))
			fmt.Fprintf(cmd.OutOrStdout(), "Updated transaction %s\n", rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&txType, "type", "", "new type")
	cmd.Flags().StringVar(&client, "client", "", "new client name")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")

	return cmd
}
