package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-storefront-state/internal/state/persist"
)

// ErrNoSnapshot is returned by dump when nothing is stored under the key.
var ErrNoSnapshot = errors.New("no snapshot stored")

// DumpOptions holds flags for the dump command.
type DumpOptions struct {
	*RootOptions
	Raw bool
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DumpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the stored snapshot",
		Long: `Print the snapshot stored under --key as indented JSON.

The value is decoded first so a malformed snapshot is reported instead of
printed. Use --raw to print the stored bytes unchanged.

Examples:
  snapshotctl dump --db ./tabs.db
  snapshotctl dump --db ./tabs.db --raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDump(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "print the stored bytes without decoding")

	return cmd
}

func runDump(cmd *cobra.Command, opts *DumpOptions) error {
	m, err := opts.open(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	data, err := m.Read(cmd.Context(), opts.Key)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%w under %q", ErrNoSnapshot, opts.Key)
	}

	out := cmd.OutOrStdout()
	if opts.Raw {
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	snap, err := persist.Decode(data)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
