package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var route53Types = []string{"DNSSEC", "HealthCheck", "HostedZone", "KeySigningKey", "RecordSet", "RecordSetGroup"}

func TestRank(t *testing.T) {
	ranked := Rank("RecordSets", route53Types)
	require.Len(t, ranked, len(route53Types))
	assert.Equal(t, "RecordSet", ranked[0].Name)
	assert.Equal(t, "RecordSetGroup", ranked[1].Name)
	assert.Empty(t, Rank("x", nil))
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"recordset", "RecordSet", true},
		{"HostedZones", "HostedZone", true},
		{"Healthcheck", "HealthCheck", true},
		{"Bucket", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := Suggest(tt.query, route53Types, DefaultThreshold)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHint(t *testing.T) {
	assert.Equal(t, " (did you mean Route53?)", Hint("Route 53", []string{"Evidently", "Route53"}))
	assert.Empty(t, Hint("S3", []string{"Evidently", "Route53"}))
}
