package config

// DefaultRuntime is the import path of the bundled binding runtime.
const DefaultRuntime = "cfn-binding-generator/cfn"

// BindingsFile is the root of a bindings file.
type BindingsFile struct {
	// Version of the file format.
	Version string `yaml:"version"`
	// Runtime is the import path of the runtime package used by generated code.
	Runtime string `yaml:"runtime,omitempty"`
	// Builtin loads the embedded specification documents. Defaults to true.
	Builtin *bool `yaml:"builtin,omitempty"`
	// Specs are extra specification documents, relative to the bindings file.
	Specs StringOrArray `yaml:"specs,omitempty"`
	// Comments copies specification prose into generated doc comments. Defaults to true.
	Comments *bool `yaml:"comments,omitempty"`
	// Services to generate.
	Services []ServiceConfig `yaml:"services"`
}

// ServiceConfig selects one service package to generate.
type ServiceConfig struct {
	// Service is the specification service name, e.g. Route53.
	Service string `yaml:"service"`
	// Package is the Go package name. Defaults to the lower-cased service.
	Package string `yaml:"package,omitempty"`
	// Output is the output directory. Defaults to services/<package>.
	Output string `yaml:"output,omitempty"`
	// Resources restricts generation to the listed short names.
	Resources StringOrArray `yaml:"resources,omitempty"`
	// Names overrides accessors: type name -> wire name -> accessor.
	Names map[string]map[string]string `yaml:"names,omitempty"`
}

// StringOrArray accepts either a single string or a list in YAML.
type StringOrArray []string

// UseBuiltin reports whether the embedded specification is loaded.
func (bf *BindingsFile) UseBuiltin() bool {
	return bf.Builtin == nil || *bf.Builtin
}

// GenerateComments reports whether doc comments carry specification prose.
func (bf *BindingsFile) GenerateComments() bool {
	return bf.Comments == nil || *bf.Comments
}
