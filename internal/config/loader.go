package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cfn-binding-generator/internal/naming"
)

// LoadFile loads and parses a bindings file. Relative spec and output
// paths are resolved against the file's directory.
func LoadFile(path string) (*BindingsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings file %s: %w", path, err)
	}

	bf, err := Parse(data)
	if err != nil {
		return nil, err
	}

	resolvePaths(bf, filepath.Dir(path))

	return bf, nil
}

// Parse parses YAML data into a BindingsFile.
func Parse(data []byte) (*BindingsFile, error) {
	var bf BindingsFile

	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("failed to parse bindings YAML: %w", err)
	}

	applyDefaults(&bf)

	return &bf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(bf *BindingsFile) {
	if bf.Version == "" {
		bf.Version = "1"
	}

	if bf.Runtime == "" {
		bf.Runtime = DefaultRuntime
	}

	for i := range bf.Services {
		svc := &bf.Services[i]
		if svc.Package == "" && svc.Service != "" {
			svc.Package = naming.PackageName(svc.Service)
		}

		if svc.Output == "" && svc.Package != "" {
			svc.Output = filepath.Join("services", svc.Package)
		}
	}
}

func resolvePaths(bf *BindingsFile, base string) {
	for i, s := range bf.Specs {
		if !filepath.IsAbs(s) {
			bf.Specs[i] = filepath.Join(base, s)
		}
	}

	for i := range bf.Services {
		if out := bf.Services[i].Output; !filepath.IsAbs(out) {
			bf.Services[i].Output = filepath.Join(base, out)
		}
	}
}

// Marshal serializes a BindingsFile to YAML.
func Marshal(bf *BindingsFile) ([]byte, error) {
	return yaml.Marshal(bf)
}

// WriteFile writes a BindingsFile to the given path.
func WriteFile(bf *BindingsFile, path string) error {
	data, err := Marshal(bf)
	if err != nil {
		return fmt.Errorf("failed to marshal bindings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write bindings file %s: %w", path, err)
	}

	return nil
}
