package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagAliases maps alternate flag spellings onto canonical names. The
// HTTP API calls the session length "duration".
var flagAliases = map[string]string{
	"duration": "minutes",
	"text":     "input",
}

// normalizeFlag accepts snake_case and the aliases above.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	name = strings.ReplaceAll(name, "_", "-")
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

// NewRootCmd creates the top-level "peak" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "peak",
		Short:         "Micro-break coach for focused work sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (env: PEAK_CONFIG)")

	root.AddCommand(
		newPlanCmd(app),
		newRunCmd(app),
		newCategoriesCmd(app),
		newServeCmd(app),
		newVersionCmd(),
	)

	// Set after AddCommand so every subcommand's flag set picks it up.
	root.SetGlobalNormalizationFunc(normalizeFlag)

	return root
}
