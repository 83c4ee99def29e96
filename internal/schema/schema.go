package schema

import (
	"slices"
	"strings"

	"cfn-binding-generator/internal/common"
)

// Spec is a loaded resource specification.
type Spec struct {
	ResourceTypes       map[string]*ResourceType `json:"ResourceTypes"`
	ResourceSpecVersion string                   `json:"ResourceSpecificationVersion,omitempty"`
	PropertyTypes       map[string]*PropertyType `json:"PropertyTypes"`
}

// ResourceType is one CloudFormation resource type.
type ResourceType struct {
	Name          string                `json:"-"`
	Documentation string                `json:"Documentation,omitempty"`
	Description   string                `json:"Description,omitempty"`
	Examples      []string              `json:"Examples,omitempty"`
	Attributes    map[string]*Attribute `json:"Attributes,omitempty"`
	Properties    map[string]*Property  `json:"Properties"`

	// structures owned by this resource, filled during finalization.
	structures []*PropertyType
}

// PropertyType is a nested structure, scoped to a resource or shared.
type PropertyType struct {
	Name          string               `json:"-"`
	FullName      string               `json:"-"`
	ResourceType  *ResourceType        `json:"-"`
	Documentation string               `json:"Documentation,omitempty"`
	Description   string               `json:"Description,omitempty"`
	Examples      []string             `json:"Examples,omitempty"`
	Properties    map[string]*Property `json:"Properties"`
}

// Property is one property of a resource or structure.
type Property struct {
	Name              string     `json:"-"`
	Documentation     string     `json:"Documentation,omitempty"`
	Description       string     `json:"Description,omitempty"`
	Examples          []string   `json:"Examples,omitempty"`
	Default           string     `json:"Default,omitempty"`
	DuplicatesAllowed bool       `json:"DuplicatesAllowed,omitempty"`
	Required          bool       `json:"Required"`
	UpdateType        UpdateType `json:"UpdateType,omitempty"`
	Type

	// Shape is the resolved shape, filled during finalization.
	Shape *Shape `json:"-"`
}

// Attribute is a read-only value exposed through Fn::GetAtt.
type Attribute struct {
	Name string `json:"-"`
	Type

	Shape *Shape `json:"-"`
}

// Type is the raw type declaration shared by properties and attributes.
type Type struct {
	TypeName           string          `json:"Type,omitempty"`
	PrimitiveType      PrimitiveType   `json:"PrimitiveType,omitempty"`
	PrimitiveTypes     []PrimitiveType `json:"PrimitiveTypes,omitempty"`
	Types              []string        `json:"Types,omitempty"`
	ItemTypeName       string          `json:"ItemType,omitempty"`
	ItemPrimitiveType  PrimitiveType   `json:"PrimitiveItemType,omitempty"`
	ItemPrimitiveTypes []PrimitiveType `json:"PrimitiveItemTypes,omitempty"`
}

// PrimitiveType names a scalar wire type.
type PrimitiveType string

const (
	String    PrimitiveType = "String"
	Long      PrimitiveType = "Long"
	Integer   PrimitiveType = "Integer"
	Double    PrimitiveType = "Double"
	Boolean   PrimitiveType = "Boolean"
	Timestamp PrimitiveType = "Timestamp"
	JSON      PrimitiveType = "Json"
)

// UpdateType tells how a property change affects the deployed resource.
type UpdateType string

const (
	Mutable     UpdateType = "Mutable"
	Immutable   UpdateType = "Immutable"
	Conditional UpdateType = "Conditional"
)

// ShapeKind is the structural kind of a property value.
type ShapeKind int

const (
	ShapeInvalid ShapeKind = iota
	ShapeScalar
	ShapeStruct
	ShapeList
	ShapeMap
	ShapeUnion
)

// String returns a human-readable kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeScalar:
		return "scalar"
	case ShapeStruct:
		return "struct"
	case ShapeList:
		return "list"
	case ShapeMap:
		return "map"
	case ShapeUnion:
		return "union"
	default:
		return common.UnknownStr
	}
}

// Shape is the resolved type of a property.
type Shape struct {
	Kind ShapeKind
	// Primitive is set for scalars.
	Primitive PrimitiveType
	// Struct is set for struct shapes.
	Struct *PropertyType
	// Elem is set for lists and maps.
	Elem *Shape
	// Variants is set for unions.
	Variants []*Shape
}

// String renders the shape in specification terms, e.g. "List<AliasTarget>".
func (s *Shape) String() string {
	if s == nil {
		return common.UnknownStr
	}

	switch s.Kind {
	case ShapeScalar:
		return string(s.Primitive)
	case ShapeStruct:
		return s.Struct.Name
	case ShapeList:
		return "List<" + s.Elem.String() + ">"
	case ShapeMap:
		return "Map<" + s.Elem.String() + ">"
	case ShapeUnion:
		parts := make([]string, 0, len(s.Variants))
		for _, v := range s.Variants {
			parts = append(parts, v.String())
		}

		return strings.Join(parts, "|")
	default:
		return common.UnknownStr
	}
}

// Service returns the service segment of the type name ("Route53").
func (r *ResourceType) Service() string {
	parts := strings.Split(r.Name, "::")
	if len(parts) != 3 {
		return ""
	}

	return parts[1]
}

// ShortName returns the last segment of the type name ("RecordSet").
func (r *ResourceType) ShortName() string {
	return r.Name[strings.LastIndex(r.Name, ":")+1:]
}

// OrderedProperties returns required properties first, then optional
// ones, each group sorted by wire name.
func (r *ResourceType) OrderedProperties() []*Property {
	return orderProperties(r.Properties)
}

// OrderedAttributes returns attributes sorted by name.
func (r *ResourceType) OrderedAttributes() []*Attribute {
	out := make([]*Attribute, 0, len(r.Attributes))
	for _, name := range common.SortedKeys(r.Attributes) {
		out = append(out, r.Attributes[name])
	}

	return out
}

// Structures returns the property types owned by this resource, sorted by name.
func (r *ResourceType) Structures() []*PropertyType {
	return r.structures
}

// Owner returns the short name of the owning resource, or "" for shared types.
func (p *PropertyType) Owner() string {
	if p.ResourceType == nil {
		return ""
	}

	return p.ResourceType.ShortName()
}

// OrderedProperties returns required properties first, then optional
// ones, each group sorted by wire name.
func (p *PropertyType) OrderedProperties() []*Property {
	return orderProperties(p.Properties)
}

func orderProperties(props map[string]*Property) []*Property {
	out := make([]*Property, 0, len(props))
	for _, name := range common.SortedKeys(props) {
		out = append(out, props[name])
	}

	slices.SortStableFunc(out, func(a, b *Property) int {
		switch {
		case a.Required == b.Required:
			return 0
		case a.Required:
			return -1
		default:
			return 1
		}
	})

	return out
}

// Services returns the distinct service names in s, sorted.
func (s *Spec) Services() []string {
	seen := make(map[string]bool)

	for _, r := range s.ResourceTypes {
		if svc := r.Service(); svc != "" {
			seen[svc] = true
		}
	}

	return common.SortedKeys(seen)
}

// ResourcesInService returns the resource types of one service, sorted by name.
func (s *Spec) ResourcesInService(service string) []*ResourceType {
	var out []*ResourceType

	for _, name := range common.SortedKeys(s.ResourceTypes) {
		r := s.ResourceTypes[name]
		if strings.EqualFold(r.Service(), service) {
			out = append(out, r)
		}
	}

	return out
}

// Resource looks up a resource type by its full name.
func (s *Spec) Resource(typeName string) (*ResourceType, error) {
	r, ok := s.ResourceTypes[typeName]
	if !ok {
		return nil, &SchemaNotFoundError{TypeName: typeName}
	}

	return r, nil
}

// SchemaNotFoundError is returned for resource type names missing from a Spec.
type SchemaNotFoundError struct {
	TypeName string
}

func (e *SchemaNotFoundError) Error() string {
	return "resource type " + e.TypeName + " not found in specification"
}
