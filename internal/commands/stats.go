package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/txdesk-dev/txdesk/internal/model"
)

func newStatsCommand(e *env) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the status breakdown of filtered transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := flags.spec()
			if err != nil {
				return err
			}

			sess, closeFn, err := e.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if err := sess.SetFilter(spec); err != nil {
				return err
			}

			breakdown := sess.StatusBreakdown()
			if len(breakdown) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions match")
				return nil
			}

			statuses := make([]model.Status, 0, len(breakdown))
			for status := range breakdown {
				statuses = append(statuses, status)
			}
			sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })

			fmt.Fprintf(cmd.OutOrStdout(), "Status breakdown (%d transactions):\n", sess.FilteredCount())
			for _, status := range statuses {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s%%\n", status, breakdown[status].StringFixed(2))
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
