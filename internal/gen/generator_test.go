package gen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfn-binding-generator/internal/gen"
	"cfn-binding-generator/internal/schema"
)

func generate(t *testing.T, service string, cfg gen.GeneratorConfig) map[string]string {
	t.Helper()

	spec := schema.Builtin()
	files, err := gen.NewGenerator(cfg).Generate(service, spec.ResourcesInService(service))
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Filename] = string(f.Content)
	}

	return out
}

func route53Config() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.PackageName = "route53"
	cfg.Names = map[string]map[string]string{
		"AWS::Route53::HostedZone": {"VPCs": "VPCs"},
	}

	return cfg
}

func TestGenerator_Generate_Route53Files(t *testing.T) {
	files := generate(t, "Route53", route53Config())

	var names []string
	for name := range files {
		names = append(names, name)
	}

	assert.ElementsMatch(t, []string{
		"doc.go", "dnssec.go", "health_check.go", "hosted_zone.go",
		"key_signing_key.go", "record_set.go", "record_set_group.go",
	}, names)

	for name, content := range files {
		assert.True(t, strings.HasPrefix(content, "// Code generated by cfn-binding-generator. DO NOT EDIT."), name)
		assert.Contains(t, content, "package route53", name)
	}

	assert.Contains(t, files["doc.go"], "//   - RecordSet (AWS::Route53::RecordSet)")
}

func TestGenerator_Generate_RecordSet(t *testing.T) {
	src := generate(t, "Route53", route53Config())["record_set.go"]

	for _, want := range []string{
		`const RecordSetTypeName = "AWS::Route53::RecordSet"`,
		"type RecordSet struct {\n\t*cfn.Resource\n}",
		"func NewRecordSet(scope cfn.Scope, id string, args RecordSetPropsArgs) (*RecordSet, error) {",
		"func (r *RecordSet) HostedZoneID() cfn.Value[string] {",
		"func (r *RecordSet) SetTTL(v cfn.Value[string]) {",
		"func (r *RecordSet) ResourceRecords() cfn.Value[[]string] {",
		"func (r *RecordSet) Weight() cfn.Value[int64] {",
		"func (r *RecordSet) AliasTarget() cfn.Value[*RecordSet_AliasTarget] {",
		"\tv := cfn.NewValues(RecordSetTypeName)\n\tv.Require(\"Name\", args.Name)\n\tv.Require(\"Type\", args.Type)\n\tv.Optional(\"AliasTarget\", args.AliasTarget)",
		"type RecordSet_AliasTargetArgs struct {",
		`v := cfn.NewValues("AWS::Route53::RecordSet.AliasTarget")`,
		"func (s *RecordSet_AliasTarget) DNSName() cfn.Value[string] {",
		"func MustNewRecordSet_GeoLocation(args RecordSet_GeoLocationArgs) *RecordSet_GeoLocation {",
		"// See: http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-route53-recordset.html#cfn-route53-recordset-ttl",
		"//\tType: AWS::Route53::RecordSet",
		"\t// Required.\n",
	} {
		assert.Contains(t, src, want)
	}
}

func TestGenerator_Generate_Attributes(t *testing.T) {
	files := generate(t, "Route53", route53Config())

	assert.Contains(t, files["hosted_zone.go"],
		"func (r *HostedZone) AttrNameServers() cfn.Value[[]string] {\n\treturn cfn.Defer[[]string](r.GetAtt(\"NameServers\"))\n}")
	assert.Contains(t, files["hosted_zone.go"], "func (r *HostedZone) AttrID() cfn.Value[string] {")
	assert.Contains(t, files["hosted_zone.go"], "func (r *HostedZone) VPCs() cfn.Value[[]cfn.Value[*HostedZone_VPC]] {")
	assert.Contains(t, files["health_check.go"], "func (r *HealthCheck) AttrHealthCheckID() cfn.Value[string] {")
}

func TestGenerator_Generate_StructureOrder(t *testing.T) {
	src := generate(t, "Route53", route53Config())["health_check.go"]

	// AlarmIdentifier is used by HealthCheckConfig and must come first.
	alarm := strings.Index(src, "type HealthCheck_AlarmIdentifier struct")
	config := strings.Index(src, "type HealthCheck_HealthCheckConfig struct")
	require.NotEqual(t, -1, alarm)
	require.NotEqual(t, -1, config)
	assert.Less(t, alarm, config)
}

func TestGenerator_Generate_Evidently(t *testing.T) {
	cfg := gen.DefaultGeneratorConfig()
	cfg.PackageName = "evidently"

	files := generate(t, "Evidently", cfg)
	src := files["experiment.go"]

	assert.Contains(t, src, "func (r *Experiment) Tags() cfn.Value[[]cfn.Value[cfn.Tag]] {")
	assert.Contains(t, src, "func (r *Experiment) AttrARN() cfn.Value[string] {")
	assert.Contains(t, src, "\tTreatments cfn.Value[[]cfn.Value[*Experiment_TreatmentObject]]\n")
	assert.Contains(t, src, "// A name for the new experiment.")
	assert.NotContains(t, files, "shared_types.go")
}

func TestGenerator_Generate_NoComments(t *testing.T) {
	cfg := route53Config()
	cfg.GenerateComments = false

	src := generate(t, "Route53", cfg)["record_set.go"]
	assert.NotContains(t, src, "See: ")
	assert.Contains(t, src, "// RecordSet is a binding for the AWS::Route53::RecordSet resource type.")
}

func TestGenerator_Generate_RuntimeAlias(t *testing.T) {
	cfg := route53Config()
	cfg.RuntimeImport = "example.com/bindings/cfnruntime"

	src := generate(t, "Route53", cfg)["dnssec.go"]
	assert.Contains(t, src, `cfn "example.com/bindings/cfnruntime"`)
}

func TestGenerator_Generate_Errors(t *testing.T) {
	spec := schema.Builtin()

	t.Run("wrong service", func(t *testing.T) {
		_, err := gen.NewGenerator(route53Config()).Generate("Route53", spec.ResourcesInService("Evidently"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not belong to service")
	})

	t.Run("unknown override", func(t *testing.T) {
		cfg := route53Config()
		cfg.Names = map[string]map[string]string{"AWS::Route53::DNSSEC": {"Nope": "Nope"}}

		_, err := gen.NewGenerator(cfg).Generate("Route53", spec.ResourcesInService("Route53"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name not found")
	})

	t.Run("unformattable output", func(t *testing.T) {
		dir := t.TempDir()
		cfg := route53Config()
		cfg.OutputDir = dir
		cfg.Names = map[string]map[string]string{"AWS::Route53::DNSSEC": {"HostedZoneId": "Hosted Zone"}}

		_, err := gen.NewGenerator(cfg).Generate("Route53", spec.ResourcesInService("Route53"))
		require.Error(t, err)
		assert.FileExists(t, filepath.Join(dir, "dnssec.unformatted.go"))
	})

	t.Run("setter collides with property", func(t *testing.T) {
		bad, err := schema.Load(strings.NewReader(`{"ResourceTypes": {"AWS::Bad::Thing": {"Properties": {
			"Foo": {"PrimitiveType": "String"},
			"SetFoo": {"PrimitiveType": "String"}}}}}`))
		require.NoError(t, err)

		_, err = gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate("Bad", bad.ResourcesInService("Bad"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "method SetFoo is generated for both property SetFoo and the setter of property Foo")
	})

	t.Run("attribute collides with property", func(t *testing.T) {
		bad, err := schema.Load(strings.NewReader(`{"ResourceTypes": {"AWS::Bad::Thing": {
			"Attributes": {"Arn": {"PrimitiveType": "String"}},
			"Properties": {"AttrArn": {"PrimitiveType": "String"}}}}}`))
		require.NoError(t, err)

		_, err = gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate("Bad", bad.ResourcesInService("Bad"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "method AttrARN is generated for both property AttrArn and attribute Arn")
	})

	t.Run("unknown primitive", func(t *testing.T) {
		bad, err := schema.Load(strings.NewReader(`{"ResourceTypes": {"AWS::Bad::Thing": {"Properties": {
			"Size": {"PrimitiveType": "Decimal", "Required": true}}}}}`))
		require.NoError(t, err)

		_, err = gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate("Bad", bad.ResourcesInService("Bad"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown property shape "Decimal"`)
	})
}

func TestGenerator_Generate_SharedStructures(t *testing.T) {
	spec, err := schema.Load(strings.NewReader(`{
		"ResourceTypes": {"AWS::Demo::Widget": {"Properties": {
			"Spec": {"Type": "WidgetSpec", "Required": true}}}},
		"PropertyTypes": {"WidgetSpec": {"Properties": {
			"Size": {"PrimitiveType": "Integer", "Required": true}}}}}`))
	require.NoError(t, err)

	cfg := gen.DefaultGeneratorConfig()
	cfg.PackageName = "demo"

	files, err := gen.NewGenerator(cfg).Generate("Demo", spec.ResourcesInService("Demo"))
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "shared_types.go", files[2].Filename)
	assert.Contains(t, string(files[2].Content), "type WidgetSpec struct {")
	assert.Contains(t, string(files[2].Content), `v := cfn.NewValues("WidgetSpec")`)
	assert.Contains(t, string(files[1].Content), "func (r *Widget) Spec() cfn.Value[*WidgetSpec] {")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	err := gen.WriteFiles([]gen.GeneratedFile{{Filename: "a.go", Content: []byte("package a\n")}}, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(data))
}
