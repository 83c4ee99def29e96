package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"HostedZoneId":            "hostedzoneid",
		"hosted_zone_id":          "hostedzoneid",
		"hosted-zone id":          "hostedzoneid",
		"AWS::Route53::RecordSet": "awsroute53recordset",
		"RecordSet.AliasTarget":   "recordsetaliastarget",
		"":                        "",
	}

	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}
