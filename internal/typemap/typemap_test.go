package typemap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfn-binding-generator/internal/schema"
)

func TestMapper_Map(t *testing.T) {
	owner := &schema.ResourceType{Name: "AWS::Route53::RecordSet"}
	alias := &schema.PropertyType{Name: "AliasTarget", ResourceType: owner}
	tag := &schema.PropertyType{Name: "Tag"}

	scalar := func(p schema.PrimitiveType) *schema.Shape {
		return &schema.Shape{Kind: schema.ShapeScalar, Primitive: p}
	}
	structShape := func(pt *schema.PropertyType) *schema.Shape {
		return &schema.Shape{Kind: schema.ShapeStruct, Struct: pt}
	}

	tests := []struct {
		name     string
		shape    *schema.Shape
		required bool
		want     string
	}{
		{"string", scalar(schema.String), true, "cfn.Value[string]"},
		{"long", scalar(schema.Long), false, "cfn.Value[int64]"},
		{"integer", scalar(schema.Integer), false, "cfn.Value[int64]"},
		{"double", scalar(schema.Double), false, "cfn.Value[float64]"},
		{"boolean", scalar(schema.Boolean), false, "cfn.Value[bool]"},
		{"timestamp", scalar(schema.Timestamp), false, "cfn.Value[string]"},
		{"json", scalar(schema.JSON), false, "cfn.Value[any]"},
		{"struct", structShape(alias), false, "cfn.Value[*RecordSet_AliasTarget]"},
		{"list of strings", &schema.Shape{Kind: schema.ShapeList, Elem: scalar(schema.String)}, false, "cfn.Value[[]string]"},
		{"list of structs", &schema.Shape{Kind: schema.ShapeList, Elem: structShape(alias)}, true,
			"cfn.Value[[]cfn.Value[*RecordSet_AliasTarget]]"},
		{"list of tags", &schema.Shape{Kind: schema.ShapeList, Elem: structShape(tag)}, false, "cfn.Value[[]cfn.Value[cfn.Tag]]"},
		{"map of strings", &schema.Shape{Kind: schema.ShapeMap, Elem: scalar(schema.String)}, false, "cfn.Value[map[string]string]"},
		{"union", &schema.Shape{Kind: schema.ShapeUnion, Variants: []*schema.Shape{scalar(schema.String), scalar(schema.JSON)}}, false,
			"cfn.Value[any]"},
	}

	m := New("cfn")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := m.Map(tt.shape, tt.required)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.GoType)
			assert.Equal(t, !tt.required, expr.Optional)
		})
	}
}

func TestMapper_Map_Details(t *testing.T) {
	owner := &schema.ResourceType{Name: "AWS::Route53::HealthCheck"}
	cfg := &schema.PropertyType{Name: "HealthCheckConfig", ResourceType: owner}
	m := New("cfn")

	expr, err := m.Map(&schema.Shape{Kind: schema.ShapeList, Elem: &schema.Shape{Kind: schema.ShapeStruct, Struct: cfg}}, false)
	require.NoError(t, err)
	assert.Equal(t, "[]cfn.Value[*HealthCheck_HealthCheckConfig]", expr.Elem)
	assert.Equal(t, []*schema.PropertyType{cfg}, expr.Structs)

	union, err := m.Map(&schema.Shape{Kind: schema.ShapeUnion, Variants: []*schema.Shape{
		{Kind: schema.ShapeScalar, Primitive: schema.String},
		{Kind: schema.ShapeStruct, Struct: cfg},
	}}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"String", "HealthCheckConfig"}, union.Variants)
	assert.Len(t, union.Structs, 1)
}

func TestMapper_Map_Unknown(t *testing.T) {
	m := New("cfn")

	tests := []*schema.Shape{
		nil,
		{Kind: schema.ShapeInvalid},
		{Kind: schema.ShapeScalar, Primitive: "Decimal"},
		{Kind: schema.ShapeList, Elem: &schema.Shape{Kind: schema.ShapeScalar, Primitive: "Set"}},
	}

	for _, shape := range tests {
		_, err := m.Map(shape, false)
		require.Error(t, err)

		var unknown *UnknownShapeError
		assert.True(t, errors.As(err, &unknown))
	}
}

func TestStructName(t *testing.T) {
	m := New("cfn")
	assert.Equal(t, "cfn.Tag", m.StructName(&schema.PropertyType{Name: "Tag"}))
	assert.Equal(t, "Shared", m.StructName(&schema.PropertyType{Name: "Shared"}))
	assert.True(t, IsRuntimeType(&schema.PropertyType{Name: "Tag"}))
	assert.False(t, IsRuntimeType(&schema.PropertyType{Name: "Tag", ResourceType: &schema.ResourceType{Name: "AWS::A::B"}}))
}
