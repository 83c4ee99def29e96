package config

import (
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/mod/module"

	"cfn-binding-generator/internal/common"
	"cfn-binding-generator/internal/diagnostic"
	"cfn-binding-generator/internal/match"
	"cfn-binding-generator/internal/schema"
)

// Validate checks a bindings file against the loaded specification.
func Validate(bf *BindingsFile, spec *schema.Spec) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if bf == nil {
		res.AddError("bindings_is_nil", "bindings file is nil", "", "")
		return res
	}

	if spec == nil {
		res.AddError("spec_is_nil", "specification is nil", "", "")
		return res
	}

	if err := module.CheckImportPath(bf.Runtime); err != nil {
		res.AddError("invalid_runtime", err.Error(), "", "runtime")
	}

	if len(bf.Services) == 0 {
		res.AddWarning("no_services", "no services configured", "", "")
	}

	seenPackages := map[string]string{}
	seenOutputs := map[string]string{}

	for i := range bf.Services {
		validateService(&bf.Services[i], spec, res, seenPackages, seenOutputs)
	}

	return res
}

func validateService(
	svc *ServiceConfig,
	spec *schema.Spec,
	res *diagnostic.Diagnostics,
	seenPackages, seenOutputs map[string]string,
) {
	if svc.Service == "" {
		res.AddError("missing_service", "service name is required", "", "service")
		return
	}

	resources := spec.ResourcesInService(svc.Service)
	if len(resources) == 0 {
		res.AddError("unknown_service",
			fmt.Sprintf("service %q not found in specification%s", svc.Service, match.Hint(svc.Service, spec.Services())),
			svc.Service, "")
		return
	}

	if !token.IsIdentifier(svc.Package) {
		res.AddError("invalid_package", fmt.Sprintf("package name %q is not a valid identifier", svc.Package), svc.Service, "package")
	}

	if other, ok := seenPackages[svc.Package]; ok {
		res.AddWarning("duplicate_package", fmt.Sprintf("package %q is also used by %s", svc.Package, other), svc.Service, "package")
	}

	seenPackages[svc.Package] = svc.Service

	if other, ok := seenOutputs[svc.Output]; ok {
		res.AddError("duplicate_output", fmt.Sprintf("output %q is also used by %s", svc.Output, other), svc.Service, "output")
	}

	seenOutputs[svc.Output] = svc.Service

	known := make(map[string]bool, len(resources))
	shortNames := make([]string, 0, len(resources))

	for _, r := range resources {
		known[strings.ToLower(r.ShortName())] = true
		shortNames = append(shortNames, r.ShortName())
	}

	for _, name := range svc.Resources {
		if !known[strings.ToLower(name)] {
			typeName := "AWS::" + svc.Service + "::" + name
			res.AddError("unknown_resource",
				(&schema.SchemaNotFoundError{TypeName: typeName}).Error()+match.Hint(name, shortNames),
				svc.Service, name)
		}
	}

	for _, typeName := range common.SortedKeys(svc.Names) {
		props := propertiesOf(spec, typeName)
		if props == nil {
			res.AddError("unknown_override_type", fmt.Sprintf("type %q not found in specification", typeName), typeName, "")
			continue
		}

		for _, wire := range common.SortedKeys(svc.Names[typeName]) {
			if _, ok := props[wire]; !ok {
				res.AddError("unknown_override_property",
					fmt.Sprintf("property %q not found%s", wire, match.Hint(wire, common.SortedKeys(props))),
					typeName, wire)
				continue
			}

			if accessor := svc.Names[typeName][wire]; !isExported(accessor) {
				res.AddError("invalid_accessor", fmt.Sprintf("accessor %q is not an exported identifier", accessor), typeName, wire)
			}
		}
	}
}

// propertiesOf finds the properties of a resource or property type.
func propertiesOf(spec *schema.Spec, typeName string) map[string]*schema.Property {
	if strings.Contains(typeName, ".") {
		if pt, ok := spec.PropertyTypes[typeName]; ok {
			return pt.Properties
		}

		return nil
	}

	if r, err := spec.Resource(typeName); err == nil {
		return r.Properties
	}

	return nil
}

func isExported(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}
