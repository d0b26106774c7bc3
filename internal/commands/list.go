package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/txdesk-dev/txdesk/internal/model"
)

func newListCommand(e *env) *cobra.Command {
	var flags filterFlags
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, filtered and paginated",
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
			if page != 1 && !sess.SetPage(page) {
				return fmt.Errorf("page %d out of range (1..%d)", page, sess.PageCount())
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tTYPE\tCLIENT\tAMOUNT\tDATE")
			for _, rec := range sess.Page() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					rec.ID, rec.Status, rec.Type, rec.ClientName,
					rec.Amount.String(), rec.Date.Format(model.DateFormat))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d/%d, %d of %d transactions match\n",
				sess.CurrentPage(), sess.PageCount(), sess.FilteredCount(), sess.TotalCount())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "page number")

	return cmd
}
