package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAccessor(t *testing.T) {
	tests := []struct {
		wire string
		want string
	}{
		{"Name", "Name"},
		{"HostedZoneId", "HostedZoneID"},
		{"DNSName", "DNSName"},
		{"TTL", "TTL"},
		{"S3", "S3"},
		{"S3Destination", "S3Destination"},
		{"IPAddress", "IPAddress"},
		{"EnableSNI", "EnableSNI"},
		{"VPCId", "VPCID"},
		{"VPCRegion", "VPCRegion"},
		{"CloudWatchLogsLogGroupArn", "CloudWatchLogsLogGroupARN"},
		{"OnlineAbConfig", "OnlineAbConfig"},
		{"ResourceRecords", "ResourceRecords"},
		{"String", "StringProperty"},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAccessor(tt.wire))
		})
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "RecordSet_AliasTarget", TypeName("RecordSet", "AliasTarget"))
	assert.Equal(t, "Tag", TypeName("", "Tag"))
	assert.Equal(t, "route53", PackageName("Route53"))
	assert.Equal(t, "evidently", PackageName("Evidently"))
	assert.Equal(t, "record_set_group.go", FileName("RecordSetGroup"))
	assert.Equal(t, "AttrARN", AttrName("Arn"))
	assert.Equal(t, "AttrNameServers", AttrName("NameServers"))
	assert.Equal(t, "hostedZone", LowerFirst("HostedZone"))
}

func TestTable(t *testing.T) {
	tbl := NewTable("AWS::Route53::HostedZone")
	require.NoError(t, tbl.Add("Name", "Name"))
	require.NoError(t, tbl.Add("VPCs", DeriveAccessor("VPCs")))

	a, err := tbl.Accessor("Name")
	require.NoError(t, err)
	assert.Equal(t, "Name", a)

	require.NoError(t, tbl.Override("VPCs", "VPCs"))

	w, err := tbl.Wire("VPCs")
	require.NoError(t, err)
	assert.Equal(t, "VPCs", w)
	assert.Equal(t, 2, tbl.Len())

	_, err = tbl.Accessor("Nope")
	require.ErrorIs(t, err, ErrNameNotFound)

	_, err = tbl.Wire("Nope")
	require.ErrorIs(t, err, ErrNameNotFound)

	require.ErrorIs(t, tbl.Override("Nope", "X"), ErrNameNotFound)
	require.Error(t, tbl.Add("Name", "Other"))
	require.Error(t, tbl.Add("Other", "Name"))
	require.Error(t, tbl.Override("VPCs", "Name"))
}
