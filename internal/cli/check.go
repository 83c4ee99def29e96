package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cfn-binding-generator/internal/check"
	"cfn-binding-generator/internal/config"
	"cfn-binding-generator/internal/logging"
)

var (
	checkConfigPath string
	checkJobs       int
	checkSchemaOf   string
)

var checkCmd = &cobra.Command{
	Use:   "check [template...]",
	Short: "Validate resource properties in CloudFormation templates",
	Long: `Validates the Properties of every AWS resource in the given templates
against JSON Schemas derived from the specification. Templates may be JSON
or YAML; YAML short forms such as !Ref and !GetAtt are understood.

With --config the specification documents listed in the bindings file are
loaded as well. With --schema the derived schema of one resource type is
printed instead.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "Bindings file whose specs to load")
	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", check.DefaultConcurrency, "Templates checked in parallel")
	checkCmd.Flags().StringVar(&checkSchemaOf, "schema", "", "Print the derived JSON Schema of a resource type")
}

func runCheck(cmd *cobra.Command, args []string) error {
	builtin := !noBuiltin
	paths := specPaths

	if checkConfigPath != "" {
		bf, err := config.LoadFile(checkConfigPath)
		if err != nil {
			return err
		}

		builtin = builtin && bf.UseBuiltin()
		paths = append(bf.Specs, paths...)
	}

	spec, err := loadSpec(builtin, paths)
	if err != nil {
		return err
	}

	c := check.NewChecker(spec, logging.L())
	c.SetConcurrency(checkJobs)

	if checkSchemaOf != "" {
		out, err := c.SchemaJSON(checkSchemaOf)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no templates given")
	}

	d, err := c.Templates(cmd.Context(), args)
	if err != nil {
		return err
	}

	for _, e := range d.Errors {
		fmt.Fprintln(cmd.OutOrStdout(), e)
	}

	if err := reportDiagnostics(cmd.ErrOrStderr(), d); err != nil {
		return fmt.Errorf("%d invalid resource(s)", len(d.Errors))
	}

	logging.S().Infow("templates valid", "count", len(args))

	return nil
}
