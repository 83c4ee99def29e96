package cfn

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Field is the type-erased view of a Value stored in Values.
type Field interface {
	IsSet() bool
	Render() any
	String() string
}

// Value is either a literal T or a deferred token. The zero Value is unset.
type Value[T any] struct {
	lit      T
	deferred *Deferred
	set      bool
}

// Lit wraps a literal value.
func Lit[T any](v T) Value[T] {
	return Value[T]{lit: v, set: true}
}

// Defer wraps a deferred token.
func Defer[T any](d Deferred) Value[T] {
	return Value[T]{deferred: &d, set: true}
}

// IsSet reports whether the value holds a literal or a token.
func (v Value[T]) IsSet() bool {
	return v.set
}

// IsDeferred reports whether the value is a token.
func (v Value[T]) IsDeferred() bool {
	return v.deferred != nil
}

// Literal returns the literal value and true, or the zero T and false.
func (v Value[T]) Literal() (T, bool) {
	if !v.set || v.deferred != nil {
		var zero T
		return zero, false
	}

	return v.lit, true
}

// Deferred returns the token and true, or false for literals.
func (v Value[T]) Deferred() (Deferred, bool) {
	if v.deferred == nil {
		return Deferred{}, false
	}

	return *v.deferred, true
}

// Render converts the value to its wire form.
func (v Value[T]) Render() any {
	switch {
	case !v.set:
		return nil
	case v.deferred != nil:
		return v.deferred.Intrinsic()
	default:
		return renderAny(v.lit)
	}
}

func (v Value[T]) String() string {
	switch {
	case !v.set:
		return "<unset>"
	case v.deferred != nil:
		return v.deferred.String()
	default:
		return formatAny(v.lit)
	}
}

// String wraps a string literal.
func String(s string) Value[string] { return Lit(s) }

// Int wraps an integer literal.
func Int(i int64) Value[int64] { return Lit(i) }

// Float wraps a floating point literal.
func Float(f float64) Value[float64] { return Lit(f) }

// Bool wraps a boolean literal.
func Bool(b bool) Value[bool] { return Lit(b) }

// Strings wraps a list of string literals.
func Strings(s ...string) Value[[]string] { return Lit(s) }

// List wraps each item as a literal and the list itself as a literal.
func List[T any](items ...T) Value[[]Value[T]] {
	out := make([]Value[T], 0, len(items))
	for _, it := range items {
		out = append(out, Lit(it))
	}

	return Lit(out)
}

// Map wraps each entry as a literal and the map itself as a literal.
func Map[T any](entries map[string]T) Value[map[string]Value[T]] {
	out := make(map[string]Value[T], len(entries))
	for k, it := range entries {
		out[k] = Lit(it)
	}

	return Lit(out)
}

type propertiesRenderer interface {
	RenderProperties() map[string]any
}

type valueRenderer interface {
	Render() any
}

func renderAny(x any) any {
	switch t := x.(type) {
	case nil:
		return nil
	case propertiesRenderer:
		rv := reflect.ValueOf(x)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}

		return t.RenderProperties()
	case valueRenderer:
		return t.Render()
	}

	rv := reflect.ValueOf(x)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}

		out := make([]any, 0, rv.Len())
		for i := range rv.Len() {
			out = append(out, renderAny(rv.Index(i).Interface()))
		}

		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()

		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = renderAny(iter.Value().Interface())
		}

		return out
	default:
		return x
	}
}

// reprConfig prints Json payloads: untyped maps, slices and structs.
var reprConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

var fieldType = reflect.TypeFor[Field]()

func formatAny(x any) string {
	switch t := x.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(t)
	case fmt.Stringer:
		rv := reflect.ValueOf(x)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "nil"
		}

		return t.String()
	}

	rv := reflect.ValueOf(x)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Interface && !rv.Type().Elem().Implements(fieldType) {
			return reprConfig.Sprintf("%v", x)
		}

		parts := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			parts = append(parts, formatAny(rv.Index(i).Interface()))
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		if !rv.Type().Elem().Implements(fieldType) {
			return reprConfig.Sprintf("%v", x)
		}

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}

		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, strconv.Quote(k)+": "+formatAny(rv.MapIndex(reflect.ValueOf(k)).Interface()))
		}

		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return reprConfig.Sprintf("%v", x)
	}
}
