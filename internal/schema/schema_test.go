package schema

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSpec = `{
  "ResourceTypes": {
    "AWS::Test::Thing": {
      "Documentation": "http://example.com/thing.html",
      "Description": "A thing.",
      "Attributes": {"Arn": {"PrimitiveType": "String"}},
      "Properties": {
        "Zeta":   {"PrimitiveType": "String", "Required": false},
        "Name":   {"PrimitiveType": "String", "Required": true},
        "Alpha":  {"PrimitiveType": "Integer", "Required": false},
        "Nested": {"Type": "Nested", "Required": true},
        "Items":  {"Type": "List", "ItemType": "Nested"},
        "Labels": {"Type": "Map", "PrimitiveItemType": "String"},
        "Tags":   {"Type": "List", "ItemType": "Tag"},
        "Either": {"PrimitiveTypes": ["String", "Json"]}
      }
    }
  },
  "PropertyTypes": {
    "AWS::Test::Thing.Nested": {
      "Properties": {"Value": {"PrimitiveType": "Double", "Required": true}}
    },
    "Tag": {
      "Properties": {
        "Key": {"PrimitiveType": "String", "Required": true},
        "Value": {"PrimitiveType": "String", "Required": true}
      }
    }
  }
}`

func TestLoad(t *testing.T) {
	spec, err := Load(strings.NewReader(testSpec))
	require.NoError(t, err)

	r, err := spec.Resource("AWS::Test::Thing")
	require.NoError(t, err)
	assert.Equal(t, "Test", r.Service())
	assert.Equal(t, "Thing", r.ShortName())
	assert.Equal(t, "A thing.", r.Description)

	var names []string
	for _, p := range r.OrderedProperties() {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"Name", "Nested", "Alpha", "Either", "Items", "Labels", "Tags", "Zeta"}, names)

	assert.Equal(t, ShapeStruct, r.Properties["Nested"].Shape.Kind)
	assert.Equal(t, "Thing", r.Properties["Nested"].Shape.Struct.Owner())
	assert.Equal(t, "List<Nested>", r.Properties["Items"].Shape.String())
	assert.Equal(t, "Map<String>", r.Properties["Labels"].Shape.String())
	assert.Equal(t, "String|Json", r.Properties["Either"].Shape.String())

	tags := r.Properties["Tags"].Shape
	require.Equal(t, ShapeList, tags.Kind)
	assert.Empty(t, tags.Elem.Struct.Owner())
	assert.Equal(t, "Tag", tags.Elem.Struct.Name)

	require.Len(t, r.Structures(), 1)
	assert.Equal(t, "AWS::Test::Thing.Nested", r.Structures()[0].FullName)

	require.Len(t, r.OrderedAttributes(), 1)
	assert.Equal(t, ShapeScalar, r.OrderedAttributes()[0].Shape.Kind)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown property type",
			doc:  `{"ResourceTypes": {"AWS::A::B": {"Properties": {"X": {"Type": "Missing"}}}}}`,
			want: `reference to unknown property type "Missing"`,
		},
		{
			name: "orphan property type",
			doc:  `{"ResourceTypes": {}, "PropertyTypes": {"AWS::A::B.C": {"Properties": {}}}}`,
			want: `declared for non-existent resource type "AWS::A::B"`,
		},
		{
			name: "list without item",
			doc:  `{"ResourceTypes": {"AWS::A::B": {"Properties": {"X": {"Type": "List"}}}}}`,
			want: "without item type",
		},
		{
			name: "no type",
			doc:  `{"ResourceTypes": {"AWS::A::B": {"Properties": {"X": {"Required": true}}}}}`,
			want: "no type declared",
		},
		{
			name: "required with default",
			doc:  `{"ResourceTypes": {"AWS::A::B": {"Properties": {"X": {"PrimitiveType": "String", "Required": true, "Default": "x"}}}}}`,
			want: `required property declares default "x"`,
		},
		{
			name: "malformed",
			doc:  `{"ResourceTypes": [`,
			want: "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSpec_Resource_NotFound(t *testing.T) {
	spec := Builtin()

	_, err := spec.Resource("AWS::Route53::Nope")
	require.Error(t, err)

	var nf *SchemaNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "AWS::Route53::Nope", nf.TypeName)
}

func TestBuiltin(t *testing.T) {
	spec := Builtin()

	assert.Equal(t, []string{"Evidently", "Route53"}, spec.Services())

	var names []string
	for _, r := range spec.ResourcesInService("route53") {
		names = append(names, r.ShortName())
	}

	assert.Equal(t, []string{"DNSSEC", "HealthCheck", "HostedZone", "KeySigningKey", "RecordSet", "RecordSetGroup"}, names)

	rs, err := spec.Resource("AWS::Route53::RecordSet")
	require.NoError(t, err)
	assert.True(t, rs.Properties["Name"].Required)
	assert.True(t, rs.Properties["Type"].Required)
	assert.False(t, rs.Properties["TTL"].Required)
	assert.Equal(t, "AliasTarget", rs.Properties["AliasTarget"].Shape.Struct.Name)
	assert.Equal(t, "RecordSet", rs.Properties["AliasTarget"].Shape.Struct.Owner())

	group, err := spec.Resource("AWS::Route53::RecordSetGroup")
	require.NoError(t, err)
	assert.Equal(t, "AWS::Route53::RecordSetGroup.RecordSet",
		group.Properties["RecordSets"].Shape.Elem.Struct.FullName)

	exp, err := spec.Resource("AWS::Evidently::Experiment")
	require.NoError(t, err)
	assert.True(t, exp.Properties["Treatments"].Required)
	assert.Equal(t, "Tag", exp.Properties["Tags"].Shape.Elem.Struct.FullName)
	assert.NotEmpty(t, exp.Properties["Name"].Description)
	assert.Len(t, exp.Structures(), 4)
}

func TestLoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")

	doc := `
ResourceTypes:
  AWS::Extra::Widget:
    Documentation: http://example.com/widget.html
    Properties:
      Size:
        PrimitiveType: Long
        Required: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	extra, err := LoadFile(path)
	require.NoError(t, err)

	merged, err := Merge(Builtin(), extra)
	require.NoError(t, err)

	w, err := merged.Resource("AWS::Extra::Widget")
	require.NoError(t, err)
	assert.Equal(t, Long, w.Properties["Size"].Shape.Primitive)

	_, err = merged.Resource("AWS::Route53::HostedZone")
	require.NoError(t, err)
}

func TestMerge_CrossDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.json")

	doc := `{
  "ResourceTypes": {
    "AWS::Extra::Widget": {
      "Properties": {"Tags": {"Type": "List", "ItemType": "Tag"}}
    }
  },
  "PropertyTypes": {
    "AWS::Route53::RecordSet.Weighting": {
      "Properties": {"Weight": {"PrimitiveType": "Long", "Required": true}}
    }
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)

	extra, err := DecodeFile(path)
	require.NoError(t, err)

	builtin := Builtin()

	merged, err := Merge(builtin, extra)
	require.NoError(t, err)

	w, err := merged.Resource("AWS::Extra::Widget")
	require.NoError(t, err)
	assert.Equal(t, "Tag", w.Properties["Tags"].Shape.Elem.Struct.FullName)

	rs, err := merged.Resource("AWS::Route53::RecordSet")
	require.NoError(t, err)

	var structs []string
	for _, pt := range rs.Structures() {
		structs = append(structs, pt.Name)
	}

	assert.Contains(t, structs, "Weighting")

	orig, err := builtin.Resource("AWS::Route53::RecordSet")
	require.NoError(t, err)
	assert.Len(t, orig.Structures(), len(rs.Structures())-1)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read specification")
}

func TestShapeKind_String(t *testing.T) {
	assert.Equal(t, "scalar", ShapeScalar.String())
	assert.Equal(t, "union", ShapeUnion.String())
	assert.Equal(t, "unknown", ShapeInvalid.String())
}
