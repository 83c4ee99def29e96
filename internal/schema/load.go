package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"cfn-binding-generator/internal/common"
)

// Decode reads a JSON specification document without resolving it, so
// that it may refer to types declared in documents merged later.
func Decode(r io.Reader) (*Spec, error) {
	dec := json.NewDecoder(r)

	var ret Spec
	if err := dec.Decode(&ret); err != nil {
		return nil, fmt.Errorf("failed to decode specification: %w", err)
	}

	return &ret, nil
}

// Load decodes a JSON specification document and resolves it.
func Load(r io.Reader) (*Spec, error) {
	ret, err := Decode(r)
	if err != nil {
		return nil, err
	}

	if err := finalize(ret); err != nil {
		return nil, err
	}

	return ret, nil
}

func decodeYAML(data []byte) (*Spec, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse specification YAML: %w", err)
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert specification YAML: %w", err)
	}

	return Decode(bytes.NewReader(buf))
}

// LoadYAML decodes a YAML specification document and resolves it.
func LoadYAML(data []byte) (*Spec, error) {
	ret, err := decodeYAML(data)
	if err != nil {
		return nil, err
	}

	if err := finalize(ret); err != nil {
		return nil, err
	}

	return ret, nil
}

// DecodeFile reads a specification from disk without resolving it. Files
// ending in .yaml or .yml are read as YAML, everything else as JSON.
func DecodeFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification %s: %w", path, err)
	}

	var spec *Spec

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		spec, err = decodeYAML(data)
	default:
		spec, err = Decode(bytes.NewReader(data))
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return spec, nil
}

// LoadFile loads a self-contained specification from disk and resolves it.
func LoadFile(path string) (*Spec, error) {
	spec, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	if err := finalize(spec); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return spec, nil
}

// Merge combines specifications. Later documents replace resource and
// property types of the same name. The inputs are copied, not modified,
// and the result is resolved as a whole so that references may cross
// documents.
func Merge(specs ...*Spec) (*Spec, error) {
	ret := Spec{
		ResourceTypes: make(map[string]*ResourceType),
		PropertyTypes: make(map[string]*PropertyType),
	}

	for _, s := range specs {
		if s == nil {
			continue
		}

		for name, r := range s.ResourceTypes {
			ret.ResourceTypes[name] = r.clone()
		}

		for name, pt := range s.PropertyTypes {
			ret.PropertyTypes[name] = pt.clone()
		}

		if s.ResourceSpecVersion != "" {
			ret.ResourceSpecVersion = s.ResourceSpecVersion
		}
	}

	if err := finalize(&ret); err != nil {
		return nil, err
	}

	return &ret, nil
}

func (r *ResourceType) clone() *ResourceType {
	c := *r
	c.structures = nil
	c.Properties = cloneProperties(r.Properties)

	if r.Attributes != nil {
		c.Attributes = make(map[string]*Attribute, len(r.Attributes))
		for name, a := range r.Attributes {
			ac := *a
			c.Attributes[name] = &ac
		}
	}

	return &c
}

func (pt *PropertyType) clone() *PropertyType {
	c := *pt
	c.Properties = cloneProperties(pt.Properties)

	return &c
}

func cloneProperties(props map[string]*Property) map[string]*Property {
	if props == nil {
		return nil
	}

	out := make(map[string]*Property, len(props))
	for name, p := range props {
		pc := *p
		out[name] = &pc
	}

	return out
}

func finalize(sch *Spec) error {
	if sch.ResourceTypes == nil {
		sch.ResourceTypes = make(map[string]*ResourceType)
	}

	if sch.PropertyTypes == nil {
		sch.PropertyTypes = make(map[string]*PropertyType)
	}

	for name, rsch := range sch.ResourceTypes {
		rsch.Name = name
		rsch.structures = nil
	}

	for _, fullName := range common.SortedKeys(sch.PropertyTypes) {
		asch := sch.PropertyTypes[fullName]
		asch.FullName = fullName
		asch.ResourceType = nil

		resourceTypeName, name, scoped := strings.Cut(fullName, ".")
		if !scoped {
			// Some names are just bare names, shared across many resource types.
			asch.Name = fullName
			continue
		}

		asch.Name = name
		asch.ResourceType = sch.ResourceTypes[resourceTypeName]

		if asch.ResourceType == nil {
			return fmt.Errorf("property %s declared for non-existent resource type %q", fullName, resourceTypeName)
		}

		asch.ResourceType.structures = append(asch.ResourceType.structures, asch)
	}

	for name, rsch := range sch.ResourceTypes {
		for attrName, attr := range rsch.Attributes {
			attr.Name = attrName

			shape, err := resolveShape(&attr.Type, sch, name)
			if err != nil {
				return fmt.Errorf("attribute %s.%s: %w", name, attrName, err)
			}

			attr.Shape = shape
		}

		if err := finalizeProperties(rsch.Properties, sch, name); err != nil {
			return err
		}
	}

	for fullName, asch := range sch.PropertyTypes {
		resourceTypeName := ""
		if asch.ResourceType != nil {
			resourceTypeName = asch.ResourceType.Name
		}

		if err := finalizeProperties(asch.Properties, sch, resourceTypeName); err != nil {
			return fmt.Errorf("%s: %w", fullName, err)
		}
	}

	return nil
}

func finalizeProperties(props map[string]*Property, sch *Spec, resourceTypeName string) error {
	for propName, prop := range props {
		prop.Name = propName

		if prop.Required && prop.Default != "" {
			return fmt.Errorf("property %s: required property declares default %q", propName, prop.Default)
		}

		shape, err := resolveShape(&prop.Type, sch, resourceTypeName)
		if err != nil {
			return fmt.Errorf("property %s: %w", propName, err)
		}

		prop.Shape = shape
	}

	return nil
}

func resolveShape(t *Type, sch *Spec, resourceTypeName string) (*Shape, error) {
	switch {
	case t.PrimitiveType != "":
		return &Shape{Kind: ShapeScalar, Primitive: t.PrimitiveType}, nil

	case len(t.PrimitiveTypes) > 0 || len(t.Types) > 0:
		return unionShape(t.PrimitiveTypes, t.Types, sch, resourceTypeName)

	case t.TypeName == "List" || t.TypeName == "Map":
		kind := ShapeList
		if t.TypeName == "Map" {
			kind = ShapeMap
		}

		elem, err := itemShape(t, sch, resourceTypeName)
		if err != nil {
			return nil, err
		}

		return &Shape{Kind: kind, Elem: elem}, nil

	case t.TypeName != "":
		pt := findPropertyType(resourceTypeName, t.TypeName, sch)
		if pt == nil {
			return nil, fmt.Errorf("reference to unknown property type %q for resource type %q", t.TypeName, resourceTypeName)
		}

		return &Shape{Kind: ShapeStruct, Struct: pt}, nil
	}

	return nil, fmt.Errorf("no type declared for resource type %q", resourceTypeName)
}

func itemShape(t *Type, sch *Spec, resourceTypeName string) (*Shape, error) {
	switch {
	case t.ItemPrimitiveType != "":
		return &Shape{Kind: ShapeScalar, Primitive: t.ItemPrimitiveType}, nil
	case len(t.ItemPrimitiveTypes) > 0:
		return unionShape(t.ItemPrimitiveTypes, nil, sch, resourceTypeName)
	case t.ItemTypeName != "":
		pt := findPropertyType(resourceTypeName, t.ItemTypeName, sch)
		if pt == nil {
			return nil, fmt.Errorf("reference to unknown property type %q for resource type %q", t.ItemTypeName, resourceTypeName)
		}

		return &Shape{Kind: ShapeStruct, Struct: pt}, nil
	}

	return nil, fmt.Errorf("%s without item type for resource type %q", t.TypeName, resourceTypeName)
}

func unionShape(prims []PrimitiveType, types []string, sch *Spec, resourceTypeName string) (*Shape, error) {
	u := &Shape{Kind: ShapeUnion}

	for _, p := range prims {
		u.Variants = append(u.Variants, &Shape{Kind: ShapeScalar, Primitive: p})
	}

	for _, name := range slices.Sorted(slices.Values(types)) {
		pt := findPropertyType(resourceTypeName, name, sch)
		if pt == nil {
			return nil, fmt.Errorf("reference to unknown property type %q for resource type %q", name, resourceTypeName)
		}

		u.Variants = append(u.Variants, &Shape{Kind: ShapeStruct, Struct: pt})
	}

	return u, nil
}

func findPropertyType(resourceTypeName, name string, sch *Spec) *PropertyType {
	ret := sch.PropertyTypes[resourceTypeName+"."+name]

	if ret == nil {
		// Fall back on the bare name: shared types such as "Tag" are
		// declared once for every resource type.
		ret = sch.PropertyTypes[name]
	}

	return ret
}
