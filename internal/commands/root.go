// Package commands wires the CLI. Commands are a thin layer over the
// transaction session: they parse flags, drive session operations, and
// print the session's read models.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/txdesk-dev/txdesk/internal/auth"
	"github.com/txdesk-dev/txdesk/internal/buildinfo"
	"github.com/txdesk-dev/txdesk/internal/config"
	"github.com/txdesk-dev/txdesk/internal/logging"
	"github.com/txdesk-dev/txdesk/internal/model"
	"github.com/txdesk-dev/txdesk/internal/oplog"
	"github.com/txdesk-dev/txdesk/internal/session"
	"github.com/txdesk-dev/txdesk/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "txdesk",
		Short:   "Local transaction management",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "txdesk.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	e := &env{configPath: &configPath, verbose: &verbose}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newLoginCommand(e))
	rootCmd.AddCommand(newLogoutCommand(e))
	rootCmd.AddCommand(newListCommand(e))
	rootCmd.AddCommand(newImportCommand(e))
	rootCmd.AddCommand(newExportCommand(e))
	rootCmd.AddCommand(newAddCommand(e))
	rootCmd.AddCommand(newEditCommand(e))
	rootCmd.AddCommand(newDeleteCommand(e))
	rootCmd.AddCommand(newStatsCommand(e))
	rootCmd.AddCommand(newLogCommand(e))

	return rootCmd
}

// env carries the per-invocation configuration and logger to commands.
// Flags are bound before Execute, so values are read lazily.
type env struct {
	configPath *string
	verbose    *bool

	cfg *config.Config
	log *logrus.Logger
}

// load reads the config file, falling back to defaults when it does not
// exist.
func (e *env) load() (*config.Config, *logrus.Logger, error) {
	if e.cfg != nil {
		return e.cfg, e.log, nil
	}

	e.log = logging.Setup(*e.verbose)

	cfg, err := config.Load(*e.configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
		err = nil
	}
	if err != nil {
		return nil, nil, err
	}
	e.cfg = cfg
	return e.cfg, e.log, nil
}

// openSession opens the store and loads a ready session. The caller must
// call the returned close function. Fails when not logged in.
func (e *env) openSession(ctx context.Context) (*session.Session, func(), error) {
	cfg, log, err := e.load()
	if err != nil {
		return nil, nil, err
	}

	if _, ok := auth.Token(cfg.Auth.TokenPath); !ok {
		return nil, nil, fmt.Errorf("not logged in: run 'txdesk login' first")
	}

	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}

	opts := []session.Option{}
	if cfg.Session.PageSize > 0 {
		opts = append(opts, session.WithPageSize(cfg.Session.PageSize))
	}
	if cfg.Import.AllowPartial {
		opts = append(opts, session.WithPartialImports())
	}
	if cols, err := parseColumns(cfg.Export.Columns); err == nil && len(cols) > 0 {
		opts = append(opts, session.WithColumns(cols))
	}

	sess := session.New(st, opts...)
	if err := sess.Load(ctx); err != nil {
		st.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := st.Close(); err != nil {
			log.WithError(err).Warn("closing store")
		}
	}
	return sess, closeFn, nil
}

// logOp appends an audit entry, best effort: a log failure never fails
// the operation it records.
func (e *env) logOp(action, recordID, details string) {
	cfg, log, err := e.load()
	if err != nil || cfg.Oplog.Path == "" {
		return
	}
	entry := oplog.Entry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		RecordID:  recordID,
		Details:   details,
	}
	if err := oplog.Append(cfg.Oplog.Path, []oplog.Entry{entry}); err != nil {
		log.WithError(err).Warn("writing operation log")
	}
}

func parseColumns(names []string) ([]model.Column, error) {
	var cols []model.Column
	for _, name := range names {
		c, err := model.ParseColumn(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, nil
}
