package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored snapshot",
		Long: `Remove the snapshot stored under --key.

Running tabs receive the removal as a storage event and keep their in-memory
state. A tab started afterwards begins from defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = m.Close() }()

			if err := m.Remove(cmd.Context(), rootOpts.Key, Origin); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", rootOpts.Key)
			return err
		},
	}
}
