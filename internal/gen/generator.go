package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"cfn-binding-generator/internal/common"
	"cfn-binding-generator/internal/docs"
	"cfn-binding-generator/internal/naming"
	"cfn-binding-generator/internal/schema"
	"cfn-binding-generator/internal/typemap"
)

// runtimeAlias is the identifier generated code uses for the runtime package.
const runtimeAlias = "cfn"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is where the unformatted sidecar goes when formatting fails.
	OutputDir string
	// RuntimeImport is the import path of the binding runtime.
	RuntimeImport string
	// GenerateComments copies specification prose into doc comments.
	GenerateComments bool
	// Names overrides accessor names, keyed by type name and then wire name.
	Names map[string]map[string]string
	// Logger receives progress messages. Nil disables logging.
	Logger *zap.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "bindings",
		OutputDir:        "./generated",
		RuntimeImport:    "cfn-binding-generator/cfn",
		GenerateComments: true,
	}
}

// Generator generates Go binding code from resource types.
type Generator struct {
	config GeneratorConfig
	mapper *typemap.Mapper
	logger *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		config: config,
		mapper: typemap.New(runtimeAlias),
		logger: logger,
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "record_set.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits one file per resource type plus the package doc file.
// All resource types must belong to the same service.
func (g *Generator) Generate(service string, resources []*schema.ResourceType) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(resources)+2)

	docFile, err := g.render("doc.go", docTemplate, g.buildDocData(service, resources))
	if err != nil {
		return nil, fmt.Errorf("generating package doc: %w", err)
	}

	files = append(files, *docFile)

	shared := make(map[string]*schema.PropertyType)

	for _, r := range resources {
		if r.Service() != service {
			return nil, fmt.Errorf("resource type %s does not belong to service %s", r.Name, service)
		}

		g.logger.Debug("generating resource type",
			zap.String("type", r.Name),
			zap.Int("properties", len(r.Properties)),
			zap.Int("structures", len(r.Structures())))

		data, err := g.buildResourceFile(r, shared)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", r.Name, err)
		}

		file, err := g.render(naming.FileName(r.ShortName()), resourceTemplate, data)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", r.Name, err)
		}

		files = append(files, *file)
	}

	if len(shared) > 0 {
		data, err := g.buildSharedFile(shared)
		if err != nil {
			return nil, fmt.Errorf("generating shared structures: %w", err)
		}

		file, err := g.render("shared_types.go", sharedTemplate, data)
		if err != nil {
			return nil, fmt.Errorf("generating shared structures: %w", err)
		}

		files = append(files, *file)
	}

	g.logger.Info("generated package",
		zap.String("service", service),
		zap.String("package", g.config.PackageName),
		zap.Int("files", len(files)))

	return files, nil
}

func (g *Generator) render(filename string, tmpl *template.Template, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		// Best-effort: keep the raw output around for debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return &GeneratedFile{Filename: filename, Content: formatted}, nil
}

// runtimeImportLine returns the import spec for the runtime package.
func (g *Generator) runtimeImportLine() string {
	quoted := strconv.Quote(g.config.RuntimeImport)
	if common.PkgAlias(g.config.RuntimeImport) == runtimeAlias {
		return quoted
	}

	return runtimeAlias + " " + quoted
}

func (g *Generator) comment(d docs.Doc, indent string) string {
	if !g.config.GenerateComments {
		d = docs.Doc{Lead: d.Lead}
	}

	return d.Comment(indent)
}
