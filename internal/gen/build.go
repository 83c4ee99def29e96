package gen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cfn-binding-generator/internal/common"
	"cfn-binding-generator/internal/docs"
	"cfn-binding-generator/internal/naming"
	"cfn-binding-generator/internal/schema"
	"cfn-binding-generator/internal/typemap"
)

// docData feeds the package doc template.
type docData struct {
	PackageName string
	Service     string
	Resources   []docEntry
}

type docEntry struct {
	Name     string
	SpecName string
}

// fileData feeds the resource file template.
type fileData struct {
	PackageName   string
	RuntimeImport string
	Resource      resourceData
	Props         valuesData
	Structures    []valuesData
}

// sharedData feeds the shared structures template.
type sharedData struct {
	PackageName   string
	RuntimeImport string
	Structures    []valuesData
}

type resourceData struct {
	Name       string
	SpecName   string
	Doc        string
	Fields     []fieldData
	Attributes []attrData
}

// valuesData describes a type backed by cfn.Values: a structure or Props.
type valuesData struct {
	TypeName string
	// TypeNameExpr is the Go expression passed to cfn.NewValues.
	TypeNameExpr string
	Doc          string
	Fields       []fieldData
}

type fieldData struct {
	Wire     string
	Accessor string
	GoType   string
	Elem     string
	Required bool
	Doc      string
}

type attrData struct {
	Wire     string
	Accessor string
	Elem     string
}

func (g *Generator) buildDocData(service string, resources []*schema.ResourceType) *docData {
	d := &docData{PackageName: g.config.PackageName, Service: service}

	for _, r := range resources {
		d.Resources = append(d.Resources, docEntry{Name: r.ShortName(), SpecName: r.Name})
	}

	return d
}

func (g *Generator) buildResourceFile(r *schema.ResourceType, shared map[string]*schema.PropertyType) (*fileData, error) {
	name := r.ShortName()

	fields, err := g.buildFields(r.Name, r.OrderedProperties(), shared)
	if err != nil {
		return nil, err
	}

	res := resourceData{
		Name:     name,
		SpecName: r.Name,
		Doc: g.comment(docs.ForResource(
			fmt.Sprintf("%s is a binding for the %s resource type.", name, r.Name), r), ""),
		Fields: fields,
	}

	for _, a := range r.OrderedAttributes() {
		expr, err := g.mapper.Map(a.Shape, true)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", a.Name, err)
		}

		res.Attributes = append(res.Attributes, attrData{
			Wire:     a.Name,
			Accessor: naming.AttrName(a.Name),
			Elem:     expr.Elem,
		})
	}

	if err := checkMethodNames(res); err != nil {
		return nil, fmt.Errorf("resource %s: %w", r.Name, err)
	}

	data := &fileData{
		PackageName:   g.config.PackageName,
		RuntimeImport: g.runtimeImportLine(),
		Resource:      res,
		Props: valuesData{
			TypeName:     name + "Props",
			TypeNameExpr: name + "TypeName",
			Doc:          fmt.Sprintf("// %sProps holds the validated properties of %s.\n", name, name),
			Fields:       fields,
		},
	}

	structs, err := g.orderStructures(r.Structures())
	if err != nil {
		return nil, err
	}

	for _, pt := range structs {
		vd, err := g.buildStructure(pt, shared)
		if err != nil {
			return nil, err
		}

		data.Structures = append(data.Structures, vd)
	}

	return data, nil
}

// checkMethodNames rejects wrappers whose getters, setters and attribute
// accessors would declare the same method twice, e.g. properties Foo and SetFoo.
func checkMethodNames(res resourceData) error {
	owner := make(map[string]string, 2*len(res.Fields)+len(res.Attributes))

	claim := func(method, source string) error {
		if prev, ok := owner[method]; ok {
			return fmt.Errorf("method %s is generated for both %s and %s", method, prev, source)
		}

		owner[method] = source

		return nil
	}

	for _, f := range res.Fields {
		if err := claim(f.Accessor, "property "+f.Wire); err != nil {
			return err
		}
	}

	for _, f := range res.Fields {
		if err := claim("Set"+f.Accessor, "the setter of property "+f.Wire); err != nil {
			return err
		}
	}

	for _, a := range res.Attributes {
		if err := claim(a.Accessor, "attribute "+a.Wire); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) buildSharedFile(shared map[string]*schema.PropertyType) (*sharedData, error) {
	data := &sharedData{
		PackageName:   g.config.PackageName,
		RuntimeImport: g.runtimeImportLine(),
	}

	// Shared structures may reference further shared structures.
	done := make(map[string]bool)

	for len(done) < len(shared) {
		for _, name := range common.SortedKeys(shared) {
			if done[name] {
				continue
			}

			done[name] = true

			vd, err := g.buildStructure(shared[name], shared)
			if err != nil {
				return nil, err
			}

			data.Structures = append(data.Structures, vd)
		}
	}

	slices.SortFunc(data.Structures, func(a, b valuesData) int {
		return strings.Compare(a.TypeName, b.TypeName)
	})

	return data, nil
}

func (g *Generator) buildStructure(pt *schema.PropertyType, shared map[string]*schema.PropertyType) (valuesData, error) {
	typeName := g.mapper.StructName(pt)

	fields, err := g.buildFields(pt.FullName, pt.OrderedProperties(), shared)
	if err != nil {
		return valuesData{}, fmt.Errorf("structure %s: %w", pt.FullName, err)
	}

	lead := fmt.Sprintf("%s is the %s structure of %s.", typeName, pt.Name, pt.Owner())
	if pt.Owner() == "" {
		lead = fmt.Sprintf("%s is the shared %s structure.", typeName, pt.Name)
	}

	return valuesData{
		TypeName:     typeName,
		TypeNameExpr: strconv.Quote(pt.FullName),
		Doc:          g.comment(docs.ForStructure(lead, pt), ""),
		Fields:       fields,
	}, nil
}

// buildFields maps properties and resolves their accessor names through a
// naming table seeded from the schema and the configured overrides.
func (g *Generator) buildFields(
	typeName string,
	props []*schema.Property,
	shared map[string]*schema.PropertyType,
) ([]fieldData, error) {
	table := naming.NewTable(typeName)

	for _, p := range props {
		if err := table.Add(p.Name, naming.DeriveAccessor(p.Name)); err != nil {
			return nil, err
		}
	}

	for _, wire := range common.SortedKeys(g.config.Names[typeName]) {
		if err := table.Override(wire, g.config.Names[typeName][wire]); err != nil {
			return nil, fmt.Errorf("name override: %w", err)
		}
	}

	fields := make([]fieldData, 0, len(props))

	for _, p := range props {
		expr, err := g.mapper.Map(p.Shape, p.Required)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}

		for _, pt := range expr.Structs {
			if pt.ResourceType == nil && !typemap.IsRuntimeType(pt) {
				shared[pt.FullName] = pt
			}
		}

		accessor, err := table.Accessor(p.Name)
		if err != nil {
			return nil, err
		}

		d := docs.ForProperty(p)
		if len(expr.Variants) > 0 {
			d.Notes = append(d.Notes, "One of: "+strings.Join(expr.Variants, ", "))
		}

		fields = append(fields, fieldData{
			Wire:     p.Name,
			Accessor: accessor,
			GoType:   expr.GoType,
			Elem:     expr.Elem,
			Required: p.Required,
			Doc:      g.comment(d, "\t"),
		})
	}

	return fields, nil
}

// orderStructures returns structures dependency-first. Cycles fall back
// to name order.
func (g *Generator) orderStructures(structs []*schema.PropertyType) ([]*schema.PropertyType, error) {
	index := make(map[*schema.PropertyType]int, len(structs))
	for i, pt := range structs {
		index[pt] = i
	}

	deps := make([][]int, len(structs))

	for i, pt := range structs {
		for _, p := range pt.OrderedProperties() {
			expr, err := g.mapper.Map(p.Shape, p.Required)
			if err != nil {
				return nil, fmt.Errorf("structure %s property %s: %w", pt.FullName, p.Name, err)
			}

			for _, ref := range expr.Structs {
				if j, ok := index[ref]; ok && j != i && !slices.Contains(deps[i], j) {
					deps[i] = append(deps[i], j)
				}
			}
		}
	}

	order, err := topoSort(len(structs), func(i int) []int { return deps[i] })
	if err != nil {
		g.logger.Warn("structure dependency cycle, using name order", zap.Error(err))
		return structs, nil
	}

	out := make([]*schema.PropertyType, 0, len(order))
	for _, i := range order {
		out = append(out, structs[i])
	}

	return out, nil
}
