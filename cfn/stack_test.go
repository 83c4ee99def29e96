package cfn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newZone(t *testing.T, s Scope, id string) *Resource {
	t.Helper()

	props := NewValues("AWS::Route53::HostedZone")
	props.Set("Name", String("example.com"))

	r, err := NewResource(s, id, "AWS::Route53::HostedZone", props)
	require.NoError(t, err)

	return r
}

func TestStack_Synthesize(t *testing.T) {
	stack := NewStack("dns")
	zone := newZone(t, stack, "Zone")

	props := NewValues("AWS::Route53::RecordSet")
	props.Set("HostedZoneId", zone.Ref())
	props.Set("Name", String("www.example.com."))
	props.Set("Type", String("A"))

	_, err := NewResource(stack, "Www", "AWS::Route53::RecordSet", props)
	require.NoError(t, err)

	tmpl := stack.Synthesize()
	assert.Equal(t, "2010-09-09", tmpl.AWSTemplateFormatVersion)
	require.Len(t, tmpl.Resources, 2)
	assert.Equal(t, "AWS::Route53::RecordSet", tmpl.Resources["Www"].Type)
	assert.Equal(t, map[string]any{"Ref": "Zone"}, tmpl.Resources["Www"].Properties["HostedZoneId"])

	data, err := stack.TemplateJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "dns", decoded["Description"])

	ids := make([]string, 0, 2)
	for _, r := range stack.Resources() {
		ids = append(ids, r.LogicalID())
	}

	assert.Equal(t, []string{"Zone", "Www"}, ids)

	got, ok := stack.Resource("Zone")
	require.True(t, ok)
	assert.Same(t, zone, got)
}

func TestStack_Errors(t *testing.T) {
	stack := NewStack("")
	newZone(t, stack, "Zone")

	_, err := NewResource(stack, "Zone", "AWS::Route53::HostedZone", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate logical id")

	_, err = NewResource(stack, "bad-id", "AWS::Route53::HostedZone", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logical id")
}

func TestResource_Inspect(t *testing.T) {
	zone := newZone(t, nil, "Zone")

	inspector := NewTreeInspector()
	zone.Inspect(inspector)

	assert.Equal(t, "AWS::Route53::HostedZone", inspector.Attributes()["aws:cdk:cloudformation:type"])
	assert.Equal(t, map[string]any{"Name": "example.com"}, inspector.Attributes()["aws:cdk:cloudformation:props"])
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Zone", "NameServers"}}, zone.GetAtt("NameServers").Intrinsic())
	assert.Equal(t, `Zone: AWS::Route53::HostedZone(Name="example.com")`, zone.String())
}
