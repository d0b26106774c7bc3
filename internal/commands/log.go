package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/txdesk-dev/txdesk/internal/oplog"
)

func newLogCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the operation audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := e.load()
			if err != nil {
				return err
			}
			if cfg.Oplog.Path == "" {
				return fmt.Errorf("operation log is disabled")
			}

			entries, err := oplog.Read(cfg.Oplog.Path)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No operations recorded")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tACTION\tRECORD\tDETAILS")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					entry.Timestamp.Format(time.RFC3339), entry.Action, entry.RecordID, entry.Details)
			}
			return w.Flush()
		},
	}
}
