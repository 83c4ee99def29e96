package cli

import (
	"github.com/spf13/cobra"

	"cfn-binding-generator/internal/logging"
)

var (
	logLevel  string
	specPaths []string
	noBuiltin bool
)

var rootCmd = &cobra.Command{
	Use:   "cfn-binding-generator",
	Short: "Generate typed Go bindings for CloudFormation resource types",
	Long: `cfn-binding-generator reads the CloudFormation resource specification and
emits one Go package per service with a typed constructor, accessors and
a wire-format renderer for every resource and property type.

The specification for Route53 and Evidently is built in. Extra documents
can be layered on top with --spec; later documents win.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringSliceVar(&specPaths, "spec", nil, "Additional specification documents (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&noBuiltin, "no-builtin", false, "Do not load the built-in specification")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}
