// Package typemap maps resolved property shapes to Go type expressions
// in generated code.
package typemap

import (
	"fmt"
	"slices"

	"cfn-binding-generator/internal/naming"
	"cfn-binding-generator/internal/schema"
)

// sharedRuntimeTypes are bare property types provided by the runtime package.
var sharedRuntimeTypes = map[string]string{
	"Tag": "Tag",
}

var primitives = map[schema.PrimitiveType]string{
	schema.String:    "string",
	schema.Long:      "int64",
	schema.Integer:   "int64",
	schema.Double:    "float64",
	schema.Boolean:   "bool",
	schema.Timestamp: "string",
	schema.JSON:      "any",
}

// Expr is the mapped type of one property.
type Expr struct {
	// GoType is the field type, e.g. cfn.Value[[]string].
	GoType string
	// Elem is the type parameter of the outer Value, e.g. []string.
	Elem string
	// Optional is true when the property may be omitted.
	Optional bool
	// Structs lists the generated structure types the expression refers to.
	Structs []*schema.PropertyType
	// Variants names the union members, empty for other shapes.
	Variants []string
}

// UnknownShapeError signals a shape this generator cannot express.
type UnknownShapeError struct {
	Shape string
}

func (e *UnknownShapeError) Error() string {
	return fmt.Sprintf("unknown property shape %q", e.Shape)
}

// Mapper maps shapes relative to a runtime package alias.
type Mapper struct {
	runtime string
}

// New creates a Mapper that qualifies runtime types with alias.
func New(alias string) *Mapper {
	return &Mapper{runtime: alias}
}

// Map returns the Go type for a property of the given shape.
func (m *Mapper) Map(shape *schema.Shape, required bool) (Expr, error) {
	var structs []*schema.PropertyType

	elem, err := m.elem(shape, &structs)
	if err != nil {
		return Expr{}, err
	}

	expr := Expr{
		GoType:   m.value(elem),
		Elem:     elem,
		Optional: !required,
		Structs:  structs,
	}

	if shape.Kind == schema.ShapeUnion {
		for _, v := range shape.Variants {
			expr.Variants = append(expr.Variants, v.String())
		}
	}

	return expr, nil
}

// StructName returns the generated or runtime type name of a structure.
func (m *Mapper) StructName(pt *schema.PropertyType) string {
	if pt.ResourceType == nil {
		if name, ok := sharedRuntimeTypes[pt.Name]; ok {
			return m.runtime + "." + name
		}
	}

	return naming.TypeName(pt.Owner(), pt.Name)
}

// IsRuntimeType reports whether a structure is provided by the runtime package.
func IsRuntimeType(pt *schema.PropertyType) bool {
	if pt.ResourceType != nil {
		return false
	}

	_, ok := sharedRuntimeTypes[pt.Name]

	return ok
}

func (m *Mapper) value(elem string) string {
	return m.runtime + ".Value[" + elem + "]"
}

func (m *Mapper) elem(shape *schema.Shape, structs *[]*schema.PropertyType) (string, error) {
	if shape == nil {
		return "", &UnknownShapeError{Shape: "<nil>"}
	}

	switch shape.Kind {
	case schema.ShapeScalar:
		t, ok := primitives[shape.Primitive]
		if !ok {
			return "", &UnknownShapeError{Shape: string(shape.Primitive)}
		}

		return t, nil

	case schema.ShapeStruct:
		if !slices.Contains(*structs, shape.Struct) {
			*structs = append(*structs, shape.Struct)
		}

		if IsRuntimeType(shape.Struct) {
			return m.StructName(shape.Struct), nil
		}

		return "*" + m.StructName(shape.Struct), nil

	case schema.ShapeList, schema.ShapeMap:
		inner, err := m.elem(shape.Elem, structs)
		if err != nil {
			return "", err
		}

		// Struct elements may be deferred individually.
		if shape.Elem.Kind == schema.ShapeStruct {
			inner = m.value(inner)
		}

		if shape.Kind == schema.ShapeList {
			return "[]" + inner, nil
		}

		return "map[string]" + inner, nil

	case schema.ShapeUnion:
		for _, v := range shape.Variants {
			if _, err := m.elem(v, structs); err != nil {
				return "", err
			}
		}

		return "any", nil
	}

	return "", &UnknownShapeError{Shape: shape.Kind.String()}
}
