package cli

import (
	"fmt"

	"github.com/alexanderramin/peak/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List categories, their trigger keywords and nudges",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Catalog.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(resp))
			return nil
		},
	}
}
