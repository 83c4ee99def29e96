package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cfn-binding-generator/internal/config"
	"cfn-binding-generator/internal/logging"
)

var (
	genConfigPath string
	genOutput     string
	genVerify     bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate binding packages from a bindings file",
	Long: `Generates one Go package per service listed in the bindings file.

Each resource type becomes a file named after it, holding the resource
wrapper, its Props type and its property types. Property types shared by
several resources go to shared_types.go.

Use --output to place every package under one directory instead of the
output paths in the bindings file. With --verify the written packages are
type-checked and searched for every selected resource type.`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genConfigPath, "config", "c", "bindings.yaml", "Path to the bindings file")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Root directory for generated packages")
	genCmd.Flags().BoolVar(&genVerify, "verify", false, "Type-check the generated packages")
}

func runGen(cmd *cobra.Command, args []string) error {
	bf, err := config.LoadFile(genConfigPath)
	if err != nil {
		return err
	}

	spec, err := loadSpec(bf.UseBuiltin() && !noBuiltin, append(bf.Specs, specPaths...))
	if err != nil {
		return err
	}

	if err := reportDiagnostics(cmd.ErrOrStderr(), config.Validate(bf, spec)); err != nil {
		return fmt.Errorf("invalid bindings file %s: %w", genConfigPath, err)
	}

	dirs, err := generateBindings(bf, spec, genOutput, logging.L())
	if err != nil {
		return err
	}

	for _, d := range dirs {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", d)
	}

	if genVerify {
		if err := verifyBindings(bf, spec, dirs); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "verified")
	}

	logging.S().Infow("generation finished", "config", genConfigPath, "packages", len(dirs))

	return nil
}
