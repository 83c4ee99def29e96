package docs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cfn-binding-generator/internal/schema"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, Wrap("one two three", 8))
	assert.Equal(t, []string{"a", "http://example.com/very/long/url", "b"},
		Wrap("a http://example.com/very/long/url b", 10))
}

func TestDoc_Comment(t *testing.T) {
	p := &schema.Property{
		Name:          "TTL",
		Description:   "The resource record cache time to live (TTL), in seconds.\n\nSecond paragraph.",
		Documentation: "http://docs.example.com/recordset.html#ttl",
		UpdateType:    schema.Mutable,
		Examples:      []string{"TTL: \"900\""},
	}

	got := ForProperty(p).Comment("\t")

	want := strings.Join([]string{
		"\t// The resource record cache time to live (TTL), in seconds.",
		"\t//",
		"\t// Second paragraph.",
		"\t//",
		"\t// Update requires: No interruption",
		"\t//",
		"\t// Example:",
		"\t//",
		"\t//\tTTL: \"900\"",
		"\t//",
		"\t// See: http://docs.example.com/recordset.html#ttl",
	}, "\n") + "\n"

	assert.Equal(t, want, got)
}

func TestDoc_Lines(t *testing.T) {
	p := &schema.Property{Required: true, UpdateType: schema.Immutable, Default: "ignored"}
	assert.Equal(t, []string{"Required.", "Update requires: Replacement"}, ForProperty(p).Lines(DefaultWidth))

	opt := &schema.Property{Default: "300", UpdateType: schema.Conditional}
	assert.Equal(t, []string{"Update requires: Some interruptions", "Default: 300"}, ForProperty(opt).Lines(DefaultWidth))

	r := &schema.ResourceType{Description: "Creates a zone.", Documentation: "http://x"}
	assert.Equal(t, []string{"HostedZone is a binding.", "", "Creates a zone.", "", "See: http://x"},
		ForResource("HostedZone is a binding.", r).Lines(DefaultWidth))

	assert.Empty(t, Doc{}.Comment(""))
}
