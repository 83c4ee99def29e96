package gen

import "text/template"

const header = `// Code generated by cfn-binding-generator. DO NOT EDIT.
`

var docTemplate = template.Must(template.New("doc").Parse(header + `
// Package {{.PackageName}} contains CloudFormation bindings for the {{.Service}} service.
//
// Resource types:
{{range .Resources}}//   - {{.Name}} ({{.SpecName}})
{{end}}package {{.PackageName}}
`))

// valuesTemplate renders a type backed by cfn.Values. It is shared by
// structures and resource Props.
const valuesTemplate = `{{define "values"}}
{{.Doc}}type {{.TypeName}} struct {
	values *cfn.Values
}

// {{.TypeName}}Args holds the properties of {{.TypeName}}.
type {{.TypeName}}Args struct {
{{range $i, $f := .Fields}}{{if $i}}
{{end}}{{$f.Doc}}	{{$f.Accessor}} {{$f.GoType}}
{{end}}}

// New{{.TypeName}} validates args and returns a new {{.TypeName}}.
func New{{.TypeName}}(args {{.TypeName}}Args) (*{{.TypeName}}, error) {
	v := cfn.NewValues({{.TypeNameExpr}})
{{range .Fields}}{{if .Required}}	v.Require("{{.Wire}}", args.{{.Accessor}})
{{else}}	v.Optional("{{.Wire}}", args.{{.Accessor}})
{{end}}{{end}}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return &{{.TypeName}}{values: v}, nil
}

// MustNew{{.TypeName}} is like New{{.TypeName}} but panics on error.
func MustNew{{.TypeName}}(args {{.TypeName}}Args) *{{.TypeName}} {
	s, err := New{{.TypeName}}(args)
	if err != nil {
		panic(err)
	}

	return s
}
{{range .Fields}}
// {{.Accessor}} returns the {{.Wire}} property.
func (s *{{$.TypeName}}) {{.Accessor}}() {{.GoType}} {
	return cfn.Get[{{.Elem}}](s.values, "{{.Wire}}")
}
{{end}}
// RenderProperties returns the properties in wire form.
func (s *{{.TypeName}}) RenderProperties() map[string]any {
	if s == nil {
		return nil
	}

	return s.values.Render()
}

// Equal reports whether both hold the same properties.
func (s *{{.TypeName}}) Equal(other *{{.TypeName}}) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.values.Equal(other.values)
}

func (s *{{.TypeName}}) String() string {
	if s == nil {
		return "<nil>"
	}

	return s.values.String()
}
{{end}}`

var resourceTemplate = template.Must(template.New("resource").Parse(valuesTemplate + header + `
package {{.PackageName}}

import (
	"fmt"

	{{.RuntimeImport}}
)
{{with .Resource}}
// {{.Name}}TypeName is the CloudFormation type of {{.Name}}.
const {{.Name}}TypeName = "{{.SpecName}}"

{{.Doc}}type {{.Name}} struct {
	*cfn.Resource
}

// New{{.Name}} validates args and registers the resource under id in scope.
func New{{.Name}}(scope cfn.Scope, id string, args {{.Name}}PropsArgs) (*{{.Name}}, error) {
	props, err := New{{.Name}}Props(args)
	if err != nil {
		return nil, err
	}

	return New{{.Name}}FromProps(scope, id, props)
}

// New{{.Name}}FromProps registers the resource with already validated props.
func New{{.Name}}FromProps(scope cfn.Scope, id string, props *{{.Name}}Props) (*{{.Name}}, error) {
	r, err := cfn.NewResource(scope, id, {{.Name}}TypeName, props.values.Clone())
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", {{.Name}}TypeName, id, err)
	}

	return &{{.Name}}{Resource: r}, nil
}
{{range .Attributes}}
// {{.Accessor}} returns the deferred {{.Wire}} attribute.
func (r *{{$.Resource.Name}}) {{.Accessor}}() cfn.Value[{{.Elem}}] {
	return cfn.Defer[{{.Elem}}](r.GetAtt("{{.Wire}}"))
}
{{end}}{{range .Fields}}
// {{.Accessor}} returns the {{.Wire}} property.
func (r *{{$.Resource.Name}}) {{.Accessor}}() {{.GoType}} {
	return cfn.Get[{{.Elem}}](r.Properties(), "{{.Wire}}")
}

// Set{{.Accessor}} replaces the {{.Wire}} property.
func (r *{{$.Resource.Name}}) Set{{.Accessor}}(v {{.GoType}}) {
	r.Properties().Set("{{.Wire}}", v)
}
{{end}}{{end}}{{template "values" .Props}}{{range .Structures}}{{template "values" .}}{{end}}`))

var sharedTemplate = template.Must(template.New("shared").Parse(valuesTemplate + header + `
package {{.PackageName}}

import {{.RuntimeImport}}
{{range .Structures}}{{template "values" .}}{{end}}`))
