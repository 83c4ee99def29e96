package cfn

import (
	"reflect"
	"slices"
	"strings"
)

// MissingRequiredPropertyError is returned by generated constructors when
// a required property was not supplied.
type MissingRequiredPropertyError struct {
	// TypeName is the resource or structure type, e.g. AWS::Route53::RecordSet.
	TypeName string
	// Property is the wire name of the missing property.
	Property string
}

func (e *MissingRequiredPropertyError) Error() string {
	return "missing required property " + e.Property + " for " + e.TypeName
}

// Values is an ordered mapping from wire name to property value.
type Values struct {
	typeName string
	keys     []string
	entries  map[string]Field
	err      error
}

// NewValues creates an empty mapping for the named type.
func NewValues(typeName string) *Values {
	return &Values{
		typeName: typeName,
		entries:  make(map[string]Field),
	}
}

// TypeName returns the type the mapping belongs to.
func (v *Values) TypeName() string {
	return v.typeName
}

// Require stores a required value. The first unset one is remembered and
// reported by Err.
func (v *Values) Require(wire string, f Field) {
	if !f.IsSet() {
		if v.err == nil {
			v.err = &MissingRequiredPropertyError{TypeName: v.typeName, Property: wire}
		}

		return
	}

	v.Set(wire, f)
}

// Optional stores a value if it is set.
func (v *Values) Optional(wire string, f Field) {
	if f.IsSet() {
		v.Set(wire, f)
	}
}

// Err returns the first missing required property, if any.
func (v *Values) Err() error {
	return v.err
}

// Set stores a value. An unset value removes the entry.
func (v *Values) Set(wire string, f Field) {
	if f == nil || !f.IsSet() {
		if _, ok := v.entries[wire]; ok {
			delete(v.entries, wire)
			v.keys = slices.DeleteFunc(v.keys, func(k string) bool { return k == wire })
		}

		return
	}

	if _, ok := v.entries[wire]; !ok {
		v.keys = append(v.keys, wire)
	}

	v.entries[wire] = f
}

// Has reports whether a value is stored under wire.
func (v *Values) Has(wire string) bool {
	_, ok := v.entries[wire]
	return ok
}

// Keys returns the stored wire names in insertion order.
func (v *Values) Keys() []string {
	return slices.Clone(v.keys)
}

// Get returns the value stored under wire, or an unset Value.
func Get[T any](v *Values, wire string) Value[T] {
	if v == nil {
		return Value[T]{}
	}

	f, ok := v.entries[wire]
	if !ok {
		return Value[T]{}
	}

	val, ok := f.(Value[T])
	if !ok {
		return Value[T]{}
	}

	return val
}

// Clone returns a shallow copy; stored values are immutable.
func (v *Values) Clone() *Values {
	c := NewValues(v.typeName)
	c.err = v.err

	for _, k := range v.keys {
		c.Set(k, v.entries[k])
	}

	return c
}

// Render converts the mapping to wire form. Unset optionals are absent.
func (v *Values) Render() map[string]any {
	if v == nil {
		return nil
	}

	out := make(map[string]any, len(v.keys))
	for _, k := range v.keys {
		out[k] = v.entries[k].Render()
	}

	return out
}

// Equal reports whether both mappings hold the same type and values.
func (v *Values) Equal(other *Values) bool {
	if v == nil || other == nil {
		return v == other
	}

	if v.typeName != other.typeName {
		return false
	}

	return reflect.DeepEqual(v.Render(), other.Render())
}

// String renders the mapping as TypeName(Key=value, ...).
func (v *Values) String() string {
	if v == nil {
		return "<nil>"
	}

	parts := make([]string, 0, len(v.keys))
	for _, k := range v.keys {
		parts = append(parts, k+"="+v.entries[k].String())
	}

	return v.typeName + "(" + strings.Join(parts, ", ") + ")"
}
