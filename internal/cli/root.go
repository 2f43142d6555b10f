// Package cli implements snapshotctl, an operator tool for the snapshot a
// session's tabs share through a bolt file.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/storage/bolt"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/logging"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/persist"
)

// Origin is the tab id snapshotctl writes under.
const Origin = "snapshotctl"

// RootOptions holds the flags shared by every command.
type RootOptions struct {
	Database    string
	Key         string
	OpenTimeout time.Duration
	Verbose     bool
}

// NewRootCommand creates the snapshotctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "snapshotctl",
		Short: "Inspect the snapshot shared by storefront tabs",
		Long: `Inspect and reset the persisted storefront snapshot.

The snapshot lives in the bolt file every tab of a session opens. Changes made
here reach running tabs the same way a write from another tab does.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the bolt snapshot file (required)")
	_ = cmd.MarkPersistentFlagRequired("db")
	cmd.PersistentFlags().StringVar(&opts.Key, "key", persist.DefaultKey, "snapshot key")
	cmd.PersistentFlags().DurationVar(&opts.OpenTimeout, "open-timeout", time.Second, "how long to wait for the file lock")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log medium activity to stderr")

	cmd.AddCommand(NewDumpCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

func (o *RootOptions) open(cmd *cobra.Command) (*bolt.Medium, error) {
	level := "error"
	if o.Verbose {
		level = "debug"
	}
	logger := logging.New(level, "text", cmd.ErrOrStderr())

	m, err := bolt.Open(o.Database,
		bolt.WithOpenTimeout(o.OpenTimeout),
		bolt.WithLogger(logger.With(slog.String("component", "snapshotctl"))),
	)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", o.Database, err)
	}
	return m, nil
}
