package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newExportCommand(e *env) *cobra.Command {
	var flags filterFlags
	var columns []string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export filtered transactions to CSV",
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
			if len(columns) > 0 {
				cols, err := parseColumns(columns)
				if err != nil {
					return err
				}
				sess.SetColumns(cols)
			}

			text, err := sess.Export()
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			if err := os.WriteFile(output, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", sess.FilteredCount(), output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringSliceVar(&columns, "columns", nil,
		"columns to export, in order (default from config): "+strings.Join([]string{"Id", "Status", "Type", "Client Name", "Amount", "Date"}, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file ('-' for stdout)")

	return cmd
}
