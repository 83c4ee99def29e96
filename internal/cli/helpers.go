package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"cfn-binding-generator/internal/analyze"
	"cfn-binding-generator/internal/config"
	"cfn-binding-generator/internal/diagnostic"
	"cfn-binding-generator/internal/gen"
	"cfn-binding-generator/internal/schema"
)

var errNoSpec = errors.New("no specification loaded: pass --spec or drop --no-builtin")

// loadSpec merges the built-in specification (unless disabled) with the
// given documents.
func loadSpec(builtin bool, paths []string) (*schema.Spec, error) {
	var specs []*schema.Spec

	if builtin {
		specs = append(specs, schema.Builtin())
	}

	for _, p := range paths {
		s, err := schema.DecodeFile(p)
		if err != nil {
			return nil, err
		}

		specs = append(specs, s)
	}

	if len(specs) == 0 {
		return nil, errNoSpec
	}

	return schema.Merge(specs...)
}

// reportDiagnostics prints warnings and infos, and returns the errors.
func reportDiagnostics(w io.Writer, d *diagnostic.Diagnostics) error {
	for _, item := range d.All() {
		if item.Severity == diagnostic.DiagnosticError {
			continue
		}

		fmt.Fprintf(w, "%s: %s\n", item.Severity, item)
	}

	return d.Error()
}

// selectResources returns the service's resources, restricted to names if given.
func selectResources(spec *schema.Spec, service string, names []string) []*schema.ResourceType {
	all := spec.ResourcesInService(service)
	if len(names) == 0 {
		return all
	}

	var out []*schema.ResourceType

	for _, r := range all {
		if slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, r.ShortName()) }) {
			out = append(out, r)
		}
	}

	return out
}

// generateBindings generates and writes every configured service. A
// non-empty outRoot replaces each service's output directory with
// outRoot/<package>. It returns the written directories.
func generateBindings(bf *config.BindingsFile, spec *schema.Spec, outRoot string, logger *zap.Logger) ([]string, error) {
	var written []string

	for _, svc := range bf.Services {
		resources := selectResources(spec, svc.Service, svc.Resources)
		if len(resources) == 0 {
			return written, fmt.Errorf("service %s: no resource types selected", svc.Service)
		}

		output := svc.Output
		if outRoot != "" {
			output = filepath.Join(outRoot, svc.Package)
		}

		g := gen.NewGenerator(gen.GeneratorConfig{
			PackageName:      svc.Package,
			OutputDir:        output,
			RuntimeImport:    bf.Runtime,
			GenerateComments: bf.GenerateComments(),
			Names:            svc.Names,
			Logger:           logger,
		})

		files, err := g.Generate(resources[0].Service(), resources)
		if err != nil {
			return written, fmt.Errorf("service %s: %w", svc.Service, err)
		}

		if err := gen.WriteFiles(files, output); err != nil {
			return written, fmt.Errorf("service %s: %w", svc.Service, err)
		}

		written = append(written, output)
	}

	return written, nil
}

// verifyBindings type-checks each written package and checks that every
// selected resource type came out as a wrapper. dirs line up with
// bf.Services.
func verifyBindings(bf *config.BindingsFile, spec *schema.Spec, dirs []string) error {
	var errs []error

	for i, dir := range dirs {
		svc := bf.Services[i]

		pkgs, err := analyze.NewAnalyzer(dir, bf.Runtime).LoadPackages(".")
		if err != nil {
			errs = append(errs, fmt.Errorf("service %s: %w", svc.Service, err))
			continue
		}

		var found []string
		for _, p := range pkgs {
			found = append(found, p.TypeNames()...)
		}

		for _, r := range selectResources(spec, svc.Service, svc.Resources) {
			if !slices.Contains(found, r.Name) {
				errs = append(errs, fmt.Errorf("service %s: resource type %s missing from %s", svc.Service, r.Name, dir))
			}
		}
	}

	return errors.Join(errs...)
}
