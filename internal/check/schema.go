package check

import (
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"cfn-binding-generator/internal/schema"
)

// intrinsicPattern matches the key of an intrinsic function object.
const intrinsicPattern = `^(Ref|Condition|Fn::[A-Za-z0-9]+)$`

func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

func intrinsicSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		MinProperties:        jsonschema.Ptr(1),
		MaxProperties:        jsonschema.Ptr(1),
		PatternProperties:    map[string]*jsonschema.Schema{intrinsicPattern: {}},
		AdditionalProperties: falseSchema(),
	}
}

// orIntrinsic lets a value be replaced by an intrinsic function.
func orIntrinsic(s *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{s, intrinsicSchema()}}
}

var primitiveSchemas = map[schema.PrimitiveType]func() *jsonschema.Schema{
	schema.String:    func() *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} },
	schema.Timestamp: func() *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} },
	// Numbers and booleans are commonly quoted in templates.
	schema.Long:    func() *jsonschema.Schema { return &jsonschema.Schema{Types: []string{"integer", "string"}} },
	schema.Integer: func() *jsonschema.Schema { return &jsonschema.Schema{Types: []string{"integer", "string"}} },
	schema.Double:  func() *jsonschema.Schema { return &jsonschema.Schema{Types: []string{"number", "string"}} },
	schema.Boolean: func() *jsonschema.Schema { return &jsonschema.Schema{Types: []string{"boolean", "string"}} },
	schema.JSON:    func() *jsonschema.Schema { return &jsonschema.Schema{Types: []string{"object", "string"}} },
}

// builder accumulates structure definitions while converting one resource type.
type builder struct {
	defs map[string]*jsonschema.Schema
}

// ResourceSchema derives the JSON Schema of a resource type's Properties object.
func ResourceSchema(r *schema.ResourceType) (*jsonschema.Schema, error) {
	b := &builder{defs: make(map[string]*jsonschema.Schema)}

	root, err := b.object(r.Name, r.Properties)
	if err != nil {
		return nil, err
	}

	root.Description = r.Name
	if len(b.defs) > 0 {
		root.Defs = b.defs
	}

	return root, nil
}

func (b *builder) object(owner string, props map[string]*schema.Property) (*jsonschema.Schema, error) {
	obj := &jsonschema.Schema{
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema, len(props)),
		AdditionalProperties: falseSchema(),
	}

	for name, p := range props {
		s, err := b.shape(p.Shape)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", owner, name, err)
		}

		obj.Properties[name] = s

		if p.Required {
			obj.Required = append(obj.Required, name)
		}
	}

	return obj, nil
}

func (b *builder) shape(shape *schema.Shape) (*jsonschema.Schema, error) {
	if shape == nil {
		return nil, fmt.Errorf("missing shape")
	}

	switch shape.Kind {
	case schema.ShapeScalar:
		mk, ok := primitiveSchemas[shape.Primitive]
		if !ok {
			return nil, fmt.Errorf("unknown primitive type %q", shape.Primitive)
		}

		return orIntrinsic(mk()), nil

	case schema.ShapeStruct:
		ref, err := b.define(shape.Struct)
		if err != nil {
			return nil, err
		}

		return orIntrinsic(ref), nil

	case schema.ShapeList, schema.ShapeMap:
		elem, err := b.shape(shape.Elem)
		if err != nil {
			return nil, err
		}

		if shape.Kind == schema.ShapeList {
			return orIntrinsic(&jsonschema.Schema{Type: "array", Items: elem}), nil
		}

		return orIntrinsic(&jsonschema.Schema{Type: "object", AdditionalProperties: elem}), nil

	case schema.ShapeUnion:
		u := &jsonschema.Schema{}

		for _, v := range shape.Variants {
			s, err := b.shape(v)
			if err != nil {
				return nil, err
			}

			u.AnyOf = append(u.AnyOf, s)
		}

		return u, nil
	}

	return nil, fmt.Errorf("unknown shape %s", shape.Kind)
}

// define adds a structure to $defs once and returns a reference to it.
func (b *builder) define(pt *schema.PropertyType) (*jsonschema.Schema, error) {
	key := defKey(pt.FullName)
	ref := &jsonschema.Schema{Ref: "#/$defs/" + key}

	if _, ok := b.defs[key]; ok {
		return ref, nil
	}

	// Reserve the slot first so recursive structures terminate.
	b.defs[key] = &jsonschema.Schema{}

	obj, err := b.object(pt.FullName, pt.Properties)
	if err != nil {
		return nil, err
	}

	obj.Description = pt.FullName
	b.defs[key] = obj

	return ref, nil
}

func defKey(fullName string) string {
	return strings.NewReplacer("::", "_", ".", "_").Replace(fullName)
}
