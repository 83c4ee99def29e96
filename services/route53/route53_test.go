package route53_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfn-binding-generator/cfn"
	"cfn-binding-generator/internal/check"
	"cfn-binding-generator/internal/schema"
	"cfn-binding-generator/services/route53"
)

func TestRecordSetProps_RequiredOnly(t *testing.T) {
	props, err := route53.NewRecordSetProps(route53.RecordSetPropsArgs{
		Name: cfn.String("example.com."),
		Type: cfn.String("A"),
	})
	require.NoError(t, err)

	data, err := json.Marshal(props.RenderProperties())
	require.NoError(t, err)
	assert.JSONEq(t, `{"Name":"example.com.","Type":"A"}`, string(data))
	assert.Equal(t, `{"Name":"example.com.","Type":"A"}`, string(data))

	name, ok := props.Name().Literal()
	require.True(t, ok)
	assert.Equal(t, "example.com.", name)
	assert.False(t, props.TTL().IsSet())
}

func TestRecordSetProps_MissingRequired(t *testing.T) {
	_, err := route53.NewRecordSetProps(route53.RecordSetPropsArgs{
		Name: cfn.String("example.com."),
		TTL:  cfn.String("300"),
	})
	require.Error(t, err)

	var missing *cfn.MissingRequiredPropertyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Type", missing.Property)
	assert.Equal(t, route53.RecordSetTypeName, missing.TypeName)

	assert.Panics(t, func() {
		route53.MustNewRecordSetProps(route53.RecordSetPropsArgs{})
	})
}

func TestRecordSetProps_Render(t *testing.T) {
	alias := route53.MustNewRecordSet_AliasTarget(route53.RecordSet_AliasTargetArgs{
		DNSName:      cfn.String("d111111abcdef8.cloudfront.net."),
		HostedZoneID: cfn.String("Z2FDTNDATAQYW2"),
	})

	props := route53.MustNewRecordSetProps(route53.RecordSetPropsArgs{
		Name:            cfn.String("www.example.com."),
		Type:            cfn.String("A"),
		AliasTarget:     cfn.Lit(alias),
		ResourceRecords: cfn.Strings("192.0.2.1", "192.0.2.2"),
		Weight:          cfn.Int(10),
		HostedZoneID:    cfn.Defer[string](cfn.Ref("Zone")),
	})

	want := map[string]any{
		"Name": "www.example.com.",
		"Type": "A",
		"AliasTarget": map[string]any{
			"DNSName":      "d111111abcdef8.cloudfront.net.",
			"HostedZoneId": "Z2FDTNDATAQYW2",
		},
		"ResourceRecords": []any{"192.0.2.1", "192.0.2.2"},
		"Weight":          int64(10),
		"HostedZoneId":    map[string]any{"Ref": "Zone"},
	}

	assert.Equal(t, want, props.RenderProperties())
	// Rendering twice yields the same document.
	assert.Equal(t, props.RenderProperties(), props.RenderProperties())
	assert.NotContains(t, props.RenderProperties(), "TTL")
}

func TestRecordSetProps_Equal(t *testing.T) {
	mk := func(name string) *route53.RecordSetProps {
		return route53.MustNewRecordSetProps(route53.RecordSetPropsArgs{
			Name: cfn.String(name),
			Type: cfn.String("CNAME"),
		})
	}

	a, b, c := mk("a.example.com."), mk("a.example.com."), mk("b.example.com.")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, `AWS::Route53::RecordSet(Name="a.example.com.", Type="CNAME")`, a.String())
}

func TestNewRecordSet_Setters(t *testing.T) {
	stack := cfn.NewStack("records")

	zone, err := route53.NewHostedZone(stack, "Zone", route53.HostedZonePropsArgs{
		Name: cfn.String("example.com."),
	})
	require.NoError(t, err)

	rec, err := route53.NewRecordSet(stack, "Www", route53.RecordSetPropsArgs{
		Name:         cfn.String("www.example.com."),
		Type:         cfn.String("A"),
		HostedZoneID: zone.Ref(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Www", rec.LogicalID())
	assert.Equal(t, route53.RecordSetTypeName, rec.TypeName())
	assert.True(t, rec.HostedZoneID().IsDeferred())

	rec.SetTTL(cfn.String("60"))
	rec.SetType(cfn.String("AAAA"))
	rec.SetHostedZoneID(cfn.Value[string]{})

	assert.Equal(t, map[string]any{
		"Name": "www.example.com.",
		"Type": "AAAA",
		"TTL":  "60",
	}, rec.RenderProperties())

	_, err = route53.NewRecordSet(stack, "Www", route53.RecordSetPropsArgs{
		Name: cfn.String("other.example.com."),
		Type: cfn.String("A"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate logical id")

	_, err = route53.NewRecordSet(stack, "not-valid", route53.RecordSetPropsArgs{
		Name: cfn.String("x.example.com."),
		Type: cfn.String("A"),
	})
	require.Error(t, err)
}

func TestHostedZone_Attributes(t *testing.T) {
	zone, err := route53.NewHostedZone(nil, "Zone", route53.HostedZonePropsArgs{
		Name: cfn.String("example.com."),
		VPCs: cfn.List(route53.MustNewHostedZone_VPC(route53.HostedZone_VPCArgs{
			VPCID:     cfn.String("vpc-1a2b3c4d"),
			VPCRegion: cfn.String("us-east-1"),
		})),
	})
	require.NoError(t, err)

	ns := zone.AttrNameServers()
	require.True(t, ns.IsDeferred())

	d, _ := ns.Deferred()
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Zone", "NameServers"}}, d.Intrinsic())
	assert.Equal(t, "${Token[Fn::GetAtt Zone.NameServers]}", ns.String())
	assert.Equal(t, map[string]any{"Ref": "Zone"}, zone.Ref().Render())
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Zone", "Id"}}, zone.AttrID().Render())

	assert.Equal(t, []any{
		map[string]any{"VPCId": "vpc-1a2b3c4d", "VPCRegion": "us-east-1"},
	}, zone.RenderProperties()["VPCs"])
}

func TestHealthCheck_NestedRequired(t *testing.T) {
	_, err := route53.NewHealthCheck_HealthCheckConfig(route53.HealthCheck_HealthCheckConfigArgs{
		IPAddress: cfn.String("192.0.2.44"),
	})

	var missing *cfn.MissingRequiredPropertyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "AWS::Route53::HealthCheck.HealthCheckConfig", missing.TypeName)
	assert.Equal(t, "Type", missing.Property)

	_, err = route53.NewHealthCheck(nil, "Check", route53.HealthCheckPropsArgs{})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "HealthCheckConfig", missing.Property)
}

func TestStack_SynthesizedTemplateChecks(t *testing.T) {
	stack := cfn.NewStack("dns")

	zone, err := route53.NewHostedZone(stack, "Zone", route53.HostedZonePropsArgs{
		Name: cfn.String("example.com."),
	})
	require.NoError(t, err)

	_, err = route53.NewDNSSEC(stack, "ZoneSigning", route53.DNSSECPropsArgs{
		HostedZoneID: zone.AttrID(),
	})
	require.NoError(t, err)

	cfg := route53.MustNewHealthCheck_HealthCheckConfig(route53.HealthCheck_HealthCheckConfigArgs{
		Type:             cfn.String("HTTPS"),
		FailureThreshold: cfn.Int(3),
		Regions:          cfn.Strings("us-east-1", "eu-west-1"),
		EnableSNI:        cfn.Bool(true),
	})

	_, err = route53.NewHealthCheck(stack, "Check", route53.HealthCheckPropsArgs{
		HealthCheckConfig: cfn.Lit(cfg),
	})
	require.NoError(t, err)

	data, err := stack.TemplateJSON()
	require.NoError(t, err)

	tmpl, err := check.ParseTemplate(data)
	require.NoError(t, err)
	require.Len(t, tmpl.Resources, 3)

	d := check.NewChecker(schema.Builtin(), nil).CheckTemplate("stack", tmpl)
	assert.True(t, d.IsValid(), d.Error())
}
