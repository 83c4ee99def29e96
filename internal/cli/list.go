package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cfn-binding-generator/internal/match"
	"cfn-binding-generator/internal/schema"
)

var listCmd = &cobra.Command{
	Use:   "list [service]",
	Short: "List services or resource types in the loaded specification",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpec(!noBuiltin, specPaths)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return listServices(cmd.OutOrStdout(), spec)
		}

		return listResources(cmd.OutOrStdout(), spec, args[0])
	},
}

func listServices(w io.Writer, spec *schema.Spec) error {
	for _, s := range spec.Services() {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", s, len(spec.ResourcesInService(s))); err != nil {
			return err
		}
	}

	return nil
}

func listResources(w io.Writer, spec *schema.Spec, service string) error {
	resources := spec.ResourcesInService(service)
	if len(resources) == 0 {
		return fmt.Errorf("service %q not found in specification%s", service, match.Hint(service, spec.Services()))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tPROPERTIES\tATTRIBUTES\tSTRUCTURES")

	for _, r := range resources {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", r.Name, len(r.Properties), len(r.Attributes), len(r.Structures()))
	}

	return tw.Flush()
}
