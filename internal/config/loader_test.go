package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := `
specs: extra.json
services:
  - service: Route53
    resources: [HostedZone, RecordSet]
    names:
      AWS::Route53::HostedZone:
        VPCs: VPCs
  - service: Evidently
    package: ev
    output: gen/ev
    resources: Experiment
`

	bf, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "1", bf.Version)
	assert.Equal(t, DefaultRuntime, bf.Runtime)
	assert.True(t, bf.UseBuiltin())
	assert.True(t, bf.GenerateComments())
	assert.Equal(t, StringOrArray{"extra.json"}, bf.Specs)

	require.Len(t, bf.Services, 2)

	r53 := bf.Services[0]
	assert.Equal(t, "route53", r53.Package)
	assert.Equal(t, filepath.Join("services", "route53"), r53.Output)
	assert.Equal(t, StringOrArray{"HostedZone", "RecordSet"}, r53.Resources)
	assert.Equal(t, "VPCs", r53.Names["AWS::Route53::HostedZone"]["VPCs"])

	ev := bf.Services[1]
	assert.Equal(t, "ev", ev.Package)
	assert.Equal(t, "gen/ev", ev.Output)
	assert.Equal(t, StringOrArray{"Experiment"}, ev.Resources)
}

func TestParse_Flags(t *testing.T) {
	bf, err := Parse([]byte("builtin: false\ncomments: false\nservices: []\n"))
	require.NoError(t, err)
	assert.False(t, bf.UseBuiltin())
	assert.False(t, bf.GenerateComments())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("services: {service: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse bindings YAML")

	_, err = Parse([]byte("specs: {a: b}\n"))
	require.Error(t, err)
}

func TestLoadFile_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")

	bf := &BindingsFile{
		Specs:    StringOrArray{"extra.json"},
		Services: []ServiceConfig{{Service: "Route53"}},
	}
	require.NoError(t, WriteFile(bf, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "extra.json")}, []string(loaded.Specs))
	assert.Equal(t, filepath.Join(dir, "services", "route53"), loaded.Services[0].Output)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "specs: extra.json")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read bindings file")
}
