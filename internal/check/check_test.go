package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfn-binding-generator/internal/schema"
)

const validTemplate = `{
  "Resources": {
    "Zone": {
      "Type": "AWS::Route53::HostedZone",
      "Properties": {"Name": "example.com."}
    },
    "Record": {
      "Type": "AWS::Route53::RecordSet",
      "Properties": {
        "Name": "www.example.com.",
        "Type": "A",
        "TTL": "300",
        "Weight": 10,
        "HostedZoneId": {"Ref": "Zone"},
        "ResourceRecords": ["192.0.2.1", {"Fn::GetAtt": ["Lb", "Ip"]}],
        "AliasTarget": {"DNSName": "lb.example.com.", "HostedZoneId": "Z1"}
      }
    },
    "Custom": {"Type": "Custom::Thing", "Properties": {"Anything": 1}}
  }
}`

func newChecker() *Checker {
	return NewChecker(schema.Builtin(), nil)
}

func TestCheckTemplate_Valid(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(validTemplate))
	require.NoError(t, err)

	d := newChecker().CheckTemplate("t.json", tmpl)
	assert.False(t, d.HasErrors(), d.Error())
	require.Len(t, d.Infos, 1)
	assert.Equal(t, "skipped_resource", d.Infos[0].Code)
	assert.Equal(t, "t.json:Custom", d.Infos[0].Subject)
}

func TestCheckTemplate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		props string
		want  string
	}{
		{name: "missing required", props: `{"Name": "a."}`, want: "Type"},
		{name: "unknown property", props: `{"Name": "a.", "Type": "A", "Bogus": 1}`, want: "Bogus"},
		{name: "wrong type", props: `{"Name": "a.", "Type": "A", "ResourceRecords": "x"}`},
		{name: "nested missing", props: `{"Name": "a.", "Type": "A", "AliasTarget": {"DNSName": "b."}}`},
		{name: "bad intrinsic", props: `{"Name": {"Ref": "A", "Fn::Sub": "b"}, "Type": "A"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTemplate([]byte(`{"Resources": {"R": {"Type": "AWS::Route53::RecordSet", "Properties": ` + tt.props + `}}}`))
			require.NoError(t, err)

			d := newChecker().CheckTemplate("t", tmpl)
			require.Len(t, d.Errors, 1)
			assert.Equal(t, "invalid_properties", d.Errors[0].Code)
			assert.Equal(t, "AWS::Route53::RecordSet", d.Errors[0].Property)

			if tt.want != "" {
				assert.Contains(t, d.Errors[0].Message, tt.want)
			}
		})
	}
}

func TestCheckTemplate_UnknownType(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(`{"Resources": {"Q": {"Type": "AWS::SQS::Queue"}}}`))
	require.NoError(t, err)

	d := newChecker().CheckTemplate("t", tmpl)
	assert.True(t, d.IsValid())
	require.Len(t, d.Warnings, 1)
	assert.Equal(t, "unknown_resource_type", d.Warnings[0].Code)
}

func TestParseTemplate_YAMLShortForms(t *testing.T) {
	src := `
Resources:
  Zone:
    Type: AWS::Route53::HostedZone
    Properties:
      Name: example.com.
  Record:
    Type: AWS::Route53::RecordSet
    Properties:
      Name: !Sub "www.${Zone}"
      Type: A
      HostedZoneId: !Ref Zone
      ResourceRecords:
        - !GetAtt Lb.Ip
        - !Join ["", ["192.0.2.", "1"]]
`

	tmpl, err := ParseTemplate([]byte(src))
	require.NoError(t, err)

	props := tmpl.Resources["Record"].Properties
	assert.Equal(t, map[string]any{"Ref": "Zone"}, props["HostedZoneId"])
	assert.Equal(t, map[string]any{"Fn::Sub": "www.${Zone}"}, props["Name"])
	assert.Equal(t, []any{
		map[string]any{"Fn::GetAtt": []any{"Lb", "Ip"}},
		map[string]any{"Fn::Join": []any{"", []any{"192.0.2.", "1"}}},
	}, props["ResourceRecords"])

	d := newChecker().CheckTemplate("t.yaml", tmpl)
	assert.False(t, d.HasErrors(), d.Error())
}

func TestParseTemplate_Invalid(t *testing.T) {
	_, err := ParseTemplate([]byte("Resources: [unclosed"))
	require.Error(t, err)

	_, err = ParseTemplate([]byte(`{"Resources": 1}`))
	require.Error(t, err)
}

func TestResourceSchema_Defs(t *testing.T) {
	r, err := schema.Builtin().Resource("AWS::Route53::HealthCheck")
	require.NoError(t, err)

	s, err := ResourceSchema(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"HealthCheckConfig"}, s.Required)
	assert.Contains(t, s.Defs, "AWS_Route53_HealthCheck_HealthCheckConfig")
	assert.Contains(t, s.Defs, "AWS_Route53_HealthCheck_AlarmIdentifier")
}

func TestChecker_SchemaJSON(t *testing.T) {
	out, err := newChecker().SchemaJSON("AWS::Route53::DNSSEC")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"HostedZoneId"`)

	_, err = newChecker().SchemaJSON("AWS::Nope::Nope")
	require.Error(t, err)
}

func TestChecker_Templates(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(validTemplate), 0o600))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
Resources:
  Key:
    Type: AWS::Route53::KeySigningKey
    Properties:
      HostedZoneId: Z1
`), 0o600))

	c := newChecker()
	c.SetConcurrency(2)

	d, err := c.Templates(context.Background(), []string{good, bad})
	require.NoError(t, err)
	require.Len(t, d.Errors, 1)
	assert.Equal(t, bad+":Key", d.Errors[0].Subject)

	_, err = c.Templates(context.Background(), []string{filepath.Join(dir, "missing.json")})
	require.Error(t, err)
}
