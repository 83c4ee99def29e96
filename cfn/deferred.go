package cfn

import (
	"fmt"
	"strings"
)

// Deferred is an opaque token whose value CloudFormation resolves at
// deploy time. Tokens are only created through the intrinsic helpers.
type Deferred struct {
	fn   string
	args any
}

// Ref refers to a resource or parameter by logical id.
func Ref(logicalID string) Deferred {
	return Deferred{fn: "Ref", args: logicalID}
}

// GetAtt reads an attribute of a resource.
func GetAtt(logicalID, attribute string) Deferred {
	return Deferred{fn: "Fn::GetAtt", args: []any{logicalID, attribute}}
}

// ImportValue reads an output exported by another stack.
func ImportValue(exportName string) Deferred {
	return Deferred{fn: "Fn::ImportValue", args: exportName}
}

// Sub substitutes ${...} variables in a string.
func Sub(format string) Deferred {
	return Deferred{fn: "Fn::Sub", args: format}
}

// Intrinsic returns the token in template form, e.g. {"Ref": "Zone"}.
func (d Deferred) Intrinsic() map[string]any {
	return map[string]any{d.fn: d.args}
}

// Func returns the intrinsic function name.
func (d Deferred) Func() string {
	return d.fn
}

func (d Deferred) String() string {
	switch a := d.args.(type) {
	case []any:
		parts := make([]string, 0, len(a))
		for _, p := range a {
			parts = append(parts, fmt.Sprint(p))
		}

		return "${Token[" + d.fn + " " + strings.Join(parts, ".") + "]}"
	default:
		return fmt.Sprintf("${Token[%s %v]}", d.fn, a)
	}
}
