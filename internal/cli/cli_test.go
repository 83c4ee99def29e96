package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cfn-binding-generator/internal/config"
	"cfn-binding-generator/internal/diagnostic"
	"cfn-binding-generator/internal/schema"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()

	return out.String(), err
}

func TestLoadSpec(t *testing.T) {
	spec, err := loadSpec(true, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Evidently", "Route53"}, spec.Services())

	_, err = loadSpec(false, nil)
	require.ErrorIs(t, err, errNoSpec)

	_, err = loadSpec(true, []string{filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}

func TestLoadSpec_ExtraUsesBuiltinTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ResourceTypes:
  AWS::Evidently::Segment:
    Properties:
      Name: {PrimitiveType: String, Required: true}
      Tags: {Type: List, ItemType: Tag}
`), 0o600))

	spec, err := loadSpec(true, []string{path})
	require.NoError(t, err)

	seg, err := spec.Resource("AWS::Evidently::Segment")
	require.NoError(t, err)
	assert.Equal(t, "Tag", seg.Properties["Tags"].Shape.Elem.Struct.FullName)

	_, err = loadSpec(false, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown property type "Tag"`)
}

func TestSelectResources(t *testing.T) {
	spec := schema.Builtin()

	assert.Len(t, selectResources(spec, "Route53", nil), 6)

	got := selectResources(spec, "route53", []string{"recordset", "DNSSEC"})
	require.Len(t, got, 2)
	assert.Equal(t, "AWS::Route53::DNSSEC", got[0].Name)
	assert.Equal(t, "AWS::Route53::RecordSet", got[1].Name)
}

func TestReportDiagnostics(t *testing.T) {
	var d diagnostic.Diagnostics
	d.AddWarning("no_services", "no services configured", "", "")

	var buf bytes.Buffer
	require.NoError(t, reportDiagnostics(&buf, &d))
	assert.Equal(t, "warning: [no_services] no services configured\n", buf.String())

	d.AddError("unknown_service", "service \"S3\" not found", "S3", "")
	require.Error(t, reportDiagnostics(&buf, &d))
}

func TestGenerateBindings(t *testing.T) {
	bf, err := config.Parse([]byte(`
services:
  - service: Route53
    resources: [RecordSet, DNSSEC]
    names:
      AWS::Route53::RecordSet:
        TTL: TimeToLive
`))
	require.NoError(t, err)

	root := t.TempDir()

	dirs, err := generateBindings(bf, schema.Builtin(), root, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "route53")}, dirs)

	for _, name := range []string{"doc.go", "record_set.go", "dnssec.go"} {
		assert.FileExists(t, filepath.Join(root, "route53", name))
	}

	src, err := os.ReadFile(filepath.Join(root, "route53", "record_set.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "func (r *RecordSet) TimeToLive() cfn.Value[string]")
	assert.NotContains(t, string(src), "func (r *RecordSet) TTL()")
}

// TestGenerateBindings_CommittedUpToDate regenerates bindings.yaml and
// compares the result with the packages under services/.
func TestGenerateBindings_CommittedUpToDate(t *testing.T) {
	bf, err := config.LoadFile("../../bindings.yaml")
	require.NoError(t, err)

	spec, err := loadSpec(bf.UseBuiltin(), bf.Specs)
	require.NoError(t, err)

	dirs, err := generateBindings(bf, spec, t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, dirs, len(bf.Services))

	for i, svc := range bf.Services {
		generated := goFiles(t, dirs[i])
		committed := goFiles(t, svc.Output)

		require.Equal(t, keys(generated), keys(committed),
			"%s: file set differs, run cfn-binding-generator gen", svc.Output)

		for name, want := range generated {
			assert.Equal(t, want, committed[name],
				"%s is stale, run cfn-binding-generator gen", filepath.Join(svc.Output, name))
		}
	}
}

func goFiles(t *testing.T, dir string) map[string]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	out := make(map[string]string)

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)

		out[name] = string(data)
	}

	return out
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	slices.Sort(out)

	return out
}

func TestGenerateBindings_NoResources(t *testing.T) {
	bf, err := config.Parse([]byte("services:\n  - service: Route53\n    resources: Nope\n"))
	require.NoError(t, err)

	_, err = generateBindings(bf, schema.Builtin(), t.TempDir(), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no resource types selected")
}

func TestListCommand(t *testing.T) {
	out, err := executeCommand(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "Evidently\t4\nRoute53\t6\n", out)

	out, err = executeCommand(t, "list", "Route53")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "TYPE"))
	assert.Contains(t, out, "AWS::Route53::RecordSet")

	_, err = executeCommand(t, "list", "S3")
	require.Error(t, err)

	_, err = executeCommand(t, "list", "Route54")
	require.EqualError(t, err, `service "Route54" not found in specification (did you mean Route53?)`)
}

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
services:
  - service: Evidently
    output: out/evidently
`), 0o600))

	out, err := executeCommand(t, "gen", "-c", cfgPath, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "out", "evidently"))
	assert.FileExists(t, filepath.Join(dir, "out", "evidently", "experiment.go"))
	assert.FileExists(t, filepath.Join(dir, "out", "evidently", "project.go"))
}

func TestGenCommand_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bindings.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("services:\n  - service: S3\n"), 0o600))

	_, err := executeCommand(t, "gen", "-c", cfgPath, "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown_service")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
Resources:
  Zone:
    Type: AWS::Route53::HostedZone
    Properties:
      Name: example.com.
  Sec:
    Type: AWS::Route53::DNSSEC
    Properties:
      HostedZoneId: !Ref Zone
`), 0o600))

	_, err := executeCommand(t, "check", "--log-level", "error", good)
	require.NoError(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"Resources": {"Sec": {"Type": "AWS::Route53::DNSSEC", "Properties": {}}}}`), 0o600))

	out, err := executeCommand(t, "check", "--log-level", "error", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, "invalid_properties")

	out, err = executeCommand(t, "check", "--log-level", "error", "--schema", "AWS::Route53::DNSSEC")
	require.NoError(t, err)
	assert.Contains(t, out, `"HostedZoneId"`)
}

// moduleTempDir returns a scratch directory inside the module so that the
// generated package resolves the runtime import.
func moduleTempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp(".", "verify")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)

	return abs
}

func TestVerifyBindings(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}

	spec := schema.Builtin()

	bf, err := config.Parse([]byte("services:\n  - service: Route53\n    resources: [RecordSet, DNSSEC]\n"))
	require.NoError(t, err)

	dirs, err := generateBindings(bf, spec, moduleTempDir(t), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, verifyBindings(bf, spec, dirs))

	bf.Services[0].Resources = config.StringOrArray{"RecordSet", "DNSSEC", "HostedZone"}

	err = verifyBindings(bf, spec, dirs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resource type AWS::Route53::HostedZone missing")
}
