package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCommand(e *env) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV file.

The file replaces the session's working set. Without --save the data is
not written to the store; pass --save to persist every imported record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			sess, closeFn, err := e.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			_, log, err := e.load()
			if err != nil {
				return err
			}

			result, err := sess.Import(string(data))
			if err != nil {
				return err
			}
			for _, rowErr := range result.Skipped {
				log.WithField("line", rowErr.Line).Warn(rowErr.Err)
			}

			if save {
				if err := sess.SaveAll(cmd.Context()); err != nil {
					return err
				}
			}

			e.logOp("import", "", fmt.Sprintf("%d records from %s (%d skipped)", result.Imported, args[0], len(result.Skipped)))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions (%d rows skipped)\n", result.Imported, len(result.Skipped))
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist imported transactions to the store")

	return cmd
}
