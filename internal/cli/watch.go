package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-storefront-state/internal/app/crosstab"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/persist"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow snapshot changes made by tabs",
		Long: `Print one line per change of the snapshot stored under --key until
interrupted. Each line names the writing tab and the consent actions a
receiving tab would replay for the change.

Examples:
  snapshotctl watch --db ./tabs.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = m.Close() }()

			var mu sync.Mutex
			out := cmd.OutOrStdout()
			sub, err := m.Watch(func(ev ports.StorageEvent) {
				if ev.Key != rootOpts.Key {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				_, _ = fmt.Fprintln(out, DescribeEvent(ev))
			})
			if err != nil {
				return err
			}
			defer func() { _ = sub.Close() }()

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "watching %s in %s\n", rootOpts.Key, rootOpts.Database)
			<-cmd.Context().Done()
			return nil
		},
	}
}

// DescribeEvent renders a storage event as a single line.
func DescribeEvent(ev ports.StorageEvent) string {
	origin := ev.Origin
	if origin == "" {
		origin = "unknown"
	}

	switch {
	case ev.NewValue == nil:
		return fmt.Sprintf("%s removed", origin)
	case ev.OldValue == nil:
		return fmt.Sprintf("%s created (%d bytes)", origin, len(ev.NewValue))
	}

	prev, err := persist.Decode(ev.OldValue)
	if err != nil {
		return fmt.Sprintf("%s wrote over a malformed snapshot", origin)
	}
	next, err := persist.Decode(ev.NewValue)
	if err != nil {
		return fmt.Sprintf("%s wrote a malformed snapshot", origin)
	}

	actions := crosstab.Diff(prev, next)
	if len(actions) == 0 {
		return fmt.Sprintf("%s updated (no consent changes)", origin)
	}

	kinds := make([]string, 0, len(actions))
	for _, a := range actions {
		kinds = append(kinds, string(a.Kind()))
	}
	return fmt.Sprintf("%s updated: %s", origin, strings.Join(kinds, ", "))
}
