package cli

import (
	"fmt"

	"github.com/alexanderramin/peak/internal/knowledge"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and knowledge base revision",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "peak %s (knowledge base %s)\n", Version, knowledge.Version)
		},
	}
}
