package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())
	assert.True(t, d.IsValid())

	d.AddError("unknown_resource", "resource type not found", "AWS::Route53::Nope", "")
	d.AddError("missing_property", "required property is absent", "MyRecord", "Type")
	d.AddWarning("unused_override", "override is never applied", "AWS::Route53::HostedZone", "VPCs")

	require.Error(t, d.Error())
	assert.Equal(t,
		"[AWS::Route53::Nope]: [unknown_resource] resource type not found; "+
			"[MyRecord] Type: [missing_property] required property is absent",
		d.Error().Error())
	assert.True(t, d.HasErrors())
	assert.Len(t, d.All(), 3)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("note", "first", "", "")
	b.AddError("bad", "second", "", "")
	b.AddWarning("meh", "third", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "[bad] second", a.Errors[0].String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
