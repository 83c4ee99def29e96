package analyze

import (
	"slices"

	"cfn-binding-generator/internal/common"
)

// TypeKind classifies an exported type of a binding package.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindResource          // embeds the runtime Resource
	TypeKindValues            // backed by runtime Values: Props and structures
	TypeKindArgs              // constructor arguments
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindResource:
		return "resource"
	case TypeKindValues:
		return "values"
	case TypeKindArgs:
		return "args"
	default:
		return common.UnknownStr
	}
}

// PackageInfo describes one loaded binding package.
type PackageInfo struct {
	Path string
	Name string
	Dir  string

	// Kinds maps every exported type name to its kind.
	Kinds map[string]TypeKind
	// Resources are sorted by Go name.
	Resources []ResourceInfo
}

// ResourceInfo describes a resource wrapper.
type ResourceInfo struct {
	// GoName is the wrapper type, e.g. RecordSet.
	GoName string
	// TypeName is the value of the <GoName>TypeName constant.
	TypeName string
	// Accessors are the declared property getters, sorted.
	Accessors []string
	// Attributes are the declared Attr* methods, sorted.
	Attributes []string
	// Setters are the declared Set* methods, sorted.
	Setters []string
}

// Resource returns the wrapper for a CloudFormation type name.
func (p *PackageInfo) Resource(typeName string) (ResourceInfo, bool) {
	i := slices.IndexFunc(p.Resources, func(r ResourceInfo) bool { return r.TypeName == typeName })
	if i < 0 {
		return ResourceInfo{}, false
	}

	return p.Resources[i], true
}

// TypeNames returns the CloudFormation types of all resources, sorted.
func (p *PackageInfo) TypeNames() []string {
	out := make([]string, 0, len(p.Resources))
	for _, r := range p.Resources {
		out = append(out, r.TypeName)
	}

	slices.Sort(out)

	return out
}
