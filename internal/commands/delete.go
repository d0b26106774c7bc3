package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCommand(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long: `Delete a transaction.

Deletion is irreversible, so it requires confirmation: interactively
unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := e.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			id := args[0]
			if err := sess.RequestDelete(id); err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete transaction %s? [y/N] ", id)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					sess.CancelDelete()
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if err := sess.ConfirmDelete(cmd.Context()); err != nil {
				return err
			}

			e.logOp("delete", id, "")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
