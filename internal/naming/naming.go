package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// ErrNameNotFound is returned when a table lookup misses.
var ErrNameNotFound = errors.New("name not found")

// initialisms are upper-cased as whole words, following Go naming conventions.
var initialisms = map[string]bool{
	"ACL": true, "API": true, "ARN": true, "ASCII": true, "CPU": true, "DNS": true,
	"DNSSEC": true, "HTML": true, "HTTP": true, "HTTPS": true, "ID": true, "IP": true,
	"JSON": true, "KMS": true, "SNI": true, "SQL": true, "SSH": true, "TCP": true,
	"TLS": true, "TTL": true, "UDP": true, "UI": true, "URI": true, "URL": true,
	"UUID": true, "VPC": true, "XML": true,
}

// reserved are method names generated types already define.
var reserved = map[string]bool{
	"String":           true,
	"Equal":            true,
	"RenderProperties": true,
	"TypeName":         true,
	"LogicalID":        true,
	"Ref":              true,
	"GetAtt":           true,
	"Inspect":          true,
	"Properties":       true,
}

// DeriveAccessor converts a wire name into an exported Go identifier.
//
//	HostedZoneId  -> HostedZoneID
//	DNSName       -> DNSName
//	S3            -> S3
//	TTL           -> TTL
func DeriveAccessor(wire string) string {
	var sb strings.Builder

	for _, word := range strings.Split(strcase.ToSnake(wire), "_") {
		if word == "" {
			continue
		}

		upper := strings.ToUpper(word)
		if initialisms[upper] {
			sb.WriteString(upper)
			continue
		}

		sb.WriteString(upperFirst(word))
	}

	name := sb.String()
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = "X" + name
	}

	if reserved[name] {
		name += "Property"
	}

	return name
}

// TypeName returns the Go type name for a structure scoped to a resource.
// Shared structures (no owner) keep their bare name.
func TypeName(owner, structure string) string {
	if owner == "" {
		return structure
	}

	return owner + "_" + structure
}

// PackageName returns the Go package name for a service ("Route53" -> "route53").
func PackageName(service string) string {
	return strings.ToLower(strcase.ToCamel(service))
}

// FileName returns the generated file name for a resource ("RecordSetGroup" -> "record_set_group.go").
func FileName(resource string) string {
	return strcase.ToSnake(resource) + ".go"
}

// AttrName returns the accessor for a resource attribute ("Arn" -> "AttrARN").
func AttrName(attribute string) string {
	// Attribute names may be dotted (Endpoint.Address).
	return "Attr" + DeriveAccessor(strings.ReplaceAll(attribute, ".", ""))
}

// LowerFirst lower-cases the leading rune.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToLower(s[:1]) + s[1:]
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// Table is the accessor <-> wire mapping of one generated type.
type Table struct {
	owner      string
	toWire     map[string]string
	toAccessor map[string]string
}

// NewTable creates an empty table for the named type.
func NewTable(owner string) *Table {
	return &Table{
		owner:      owner,
		toWire:     make(map[string]string),
		toAccessor: make(map[string]string),
	}
}

// Add declares a mapping. Both names must be unique within the table.
func (t *Table) Add(wire, accessor string) error {
	if _, ok := t.toAccessor[wire]; ok {
		return fmt.Errorf("%s: duplicate wire name %q", t.owner, wire)
	}

	if other, ok := t.toWire[accessor]; ok {
		return fmt.Errorf("%s: accessor %q used by both %q and %q", t.owner, accessor, other, wire)
	}

	t.toWire[accessor] = wire
	t.toAccessor[wire] = accessor

	return nil
}

// Override replaces the accessor of an already declared wire name.
func (t *Table) Override(wire, accessor string) error {
	old, ok := t.toAccessor[wire]
	if !ok {
		return fmt.Errorf("%w: wire name %q in %s", ErrNameNotFound, wire, t.owner)
	}

	if old == accessor {
		return nil
	}

	if other, ok := t.toWire[accessor]; ok {
		return fmt.Errorf("%s: accessor %q already used by %q", t.owner, accessor, other)
	}

	delete(t.toWire, old)
	t.toWire[accessor] = wire
	t.toAccessor[wire] = accessor

	return nil
}

// Accessor returns the Go accessor for a wire name.
func (t *Table) Accessor(wire string) (string, error) {
	a, ok := t.toAccessor[wire]
	if !ok {
		return "", fmt.Errorf("%w: wire name %q in %s", ErrNameNotFound, wire, t.owner)
	}

	return a, nil
}

// Wire returns the wire name for a Go accessor.
func (t *Table) Wire(accessor string) (string, error) {
	w, ok := t.toWire[accessor]
	if !ok {
		return "", fmt.Errorf("%w: accessor %q in %s", ErrNameNotFound, accessor, t.owner)
	}

	return w, nil
}

// Len returns the number of mappings.
func (t *Table) Len() int {
	return len(t.toWire)
}
