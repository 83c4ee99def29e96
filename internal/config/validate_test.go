package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfn-binding-generator/internal/schema"
)

func codes(t *testing.T, bf *BindingsFile) []string {
	t.Helper()

	res := Validate(bf, schema.Builtin())
	require.NotNil(t, res)

	var out []string
	for _, d := range res.All() {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_Valid(t *testing.T) {
	bf, err := Parse([]byte(`
services:
  - service: Route53
    names:
      AWS::Route53::HostedZone:
        VPCs: VPCs
      AWS::Route53::RecordSet.AliasTarget:
        DNSName: DNSName
  - service: Evidently
    resources: [Experiment, Feature]
`))
	require.NoError(t, err)

	res := Validate(bf, schema.Builtin())
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		bf   BindingsFile
		want []string
	}{
		{
			name: "unknown service",
			bf:   BindingsFile{Runtime: DefaultRuntime, Services: []ServiceConfig{{Service: "Nope", Package: "nope", Output: "x"}}},
			want: []string{"unknown_service"},
		},
		{
			name: "missing service",
			bf:   BindingsFile{Runtime: DefaultRuntime, Services: []ServiceConfig{{}}},
			want: []string{"missing_service"},
		},
		{
			name: "bad runtime",
			bf:   BindingsFile{Runtime: "not a path", Services: []ServiceConfig{{Service: "Route53", Package: "route53", Output: "x"}}},
			want: []string{"invalid_runtime"},
		},
		{
			name: "unknown resource",
			bf: BindingsFile{Runtime: DefaultRuntime, Services: []ServiceConfig{
				{Service: "Route53", Package: "route53", Output: "x", Resources: StringOrArray{"Zone"}},
			}},
			want: []string{"unknown_resource"},
		},
		{
			name: "bad package and duplicate output",
			bf: BindingsFile{Runtime: DefaultRuntime, Services: []ServiceConfig{
				{Service: "Route53", Package: "route-53", Output: "x"},
				{Service: "Evidently", Package: "evidently", Output: "x"},
			}},
			want: []string{"invalid_package", "duplicate_output"},
		},
		{
			name: "bad overrides",
			bf: BindingsFile{Runtime: DefaultRuntime, Services: []ServiceConfig{{
				Service: "Route53", Package: "route53", Output: "x",
				Names: map[string]map[string]string{
					"AWS::Route53::Zone":       {"A": "A"},
					"AWS::Route53::HostedZone": {"Nope": "Nope", "VPCs": "vpcs"},
				},
			}}},
			want: []string{"unknown_override_property", "invalid_accessor", "unknown_override_type"},
		},
		{
			name: "no services",
			bf:   BindingsFile{Runtime: DefaultRuntime},
			want: []string{"no_services"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(t, &tt.bf))
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.True(t, Validate(nil, schema.Builtin()).HasErrors())
	assert.True(t, Validate(&BindingsFile{}, nil).HasErrors())
}

func TestValidate_RepositoryBindings(t *testing.T) {
	bf, err := LoadFile("../../bindings.yaml")
	require.NoError(t, err)

	assert.Empty(t, codes(t, bf))
	require.Len(t, bf.Services, 2)
	assert.Equal(t, "route53", bf.Services[0].Package)
	assert.Equal(t, "VPCs", bf.Services[0].Names["AWS::Route53::HostedZone"]["VPCs"])
}

func TestValidate_Suggestions(t *testing.T) {
	bf, err := Parse([]byte(`
services:
  - service: Route53
    resources: [recordset, RecordSets]
    names:
      AWS::Route53::RecordSet:
        HostedZoneID: ZoneID
  - service: Evidentli
`))
	require.NoError(t, err)

	res := Validate(bf, schema.Builtin())

	var msgs []string
	for _, d := range res.Errors {
		msgs = append(msgs, d.Code+": "+d.Message)
	}

	assert.Equal(t, []string{
		`unknown_resource: resource type AWS::Route53::RecordSets not found in specification (did you mean RecordSet?)`,
		`unknown_override_property: property "HostedZoneID" not found (did you mean HostedZoneId?)`,
		`unknown_service: service "Evidentli" not found in specification (did you mean Evidently?)`,
	}, msgs)
}
