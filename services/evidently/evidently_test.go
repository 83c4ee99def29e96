package evidently_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfn-binding-generator/cfn"
	"cfn-binding-generator/services/evidently"
)

func metricGoal(t *testing.T) *evidently.Experiment_MetricGoalObject {
	t.Helper()

	g, err := evidently.NewExperiment_MetricGoalObject(evidently.Experiment_MetricGoalObjectArgs{
		DesiredChange: cfn.String("INCREASE"),
		EntityIDKey:   cfn.String("userDetails.userId"),
		EventPattern:  cfn.String(`{"Price": [{"numeric": [">", 11]}]}`),
		MetricName:    cfn.String("checkout"),
		ValueKey:      cfn.String("details.amount"),
	})
	require.NoError(t, err)

	return g
}

func experimentArgs(t *testing.T) evidently.ExperimentPropsArgs {
	t.Helper()

	return evidently.ExperimentPropsArgs{
		MetricGoals: cfn.List(metricGoal(t)),
		Name:        cfn.String("checkout-flow"),
		OnlineAbConfig: cfn.Lit(evidently.MustNewExperiment_OnlineAbConfigObject(evidently.Experiment_OnlineAbConfigObjectArgs{
			ControlTreatmentName: cfn.String("control"),
			TreatmentWeights: cfn.List(
				evidently.MustNewExperiment_TreatmentToWeight(evidently.Experiment_TreatmentToWeightArgs{
					SplitWeight: cfn.Int(50000),
					Treatment:   cfn.String("control"),
				}),
			),
		})),
		Project: cfn.String("shop"),
		Treatments: cfn.List(
			evidently.MustNewExperiment_TreatmentObject(evidently.Experiment_TreatmentObjectArgs{
				Feature:       cfn.String("new-checkout"),
				TreatmentName: cfn.String("control"),
				Variation:     cfn.String("off"),
			}),
		),
	}
}

func TestExperimentProps_MissingTreatments(t *testing.T) {
	args := experimentArgs(t)
	args.Treatments = cfn.Value[[]cfn.Value[*evidently.Experiment_TreatmentObject]]{}

	_, err := evidently.NewExperimentProps(args)

	var missing *cfn.MissingRequiredPropertyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Treatments", missing.Property)
	assert.Equal(t, "AWS::Evidently::Experiment", missing.TypeName)
	assert.EqualError(t, err, "missing required property Treatments for AWS::Evidently::Experiment")
}

func TestExperimentProps_Render(t *testing.T) {
	props, err := evidently.NewExperimentProps(experimentArgs(t))
	require.NoError(t, err)

	out := props.RenderProperties()
	assert.Equal(t, "checkout-flow", out["Name"])
	assert.Equal(t, "shop", out["Project"])
	assert.NotContains(t, out, "Description")
	assert.NotContains(t, out, "SamplingRate")

	assert.Equal(t, []any{map[string]any{
		"Feature":       "new-checkout",
		"TreatmentName": "control",
		"Variation":     "off",
	}}, out["Treatments"])

	assert.Equal(t, map[string]any{
		"ControlTreatmentName": "control",
		"TreatmentWeights": []any{
			map[string]any{"SplitWeight": int64(50000), "Treatment": "control"},
		},
	}, out["OnlineAbConfig"])

	goals, ok := props.MetricGoals().Literal()
	require.True(t, ok)
	require.Len(t, goals, 1)

	goal, ok := goals[0].Literal()
	require.True(t, ok)
	assert.Equal(t, "INCREASE", mustLiteral(t, goal.DesiredChange()))
	assert.False(t, goal.UnitLabel().IsSet())
}

func TestExperimentProps_Equal(t *testing.T) {
	a := evidently.MustNewExperimentProps(experimentArgs(t))
	b := evidently.MustNewExperimentProps(experimentArgs(t))
	assert.True(t, a.Equal(b))

	args := experimentArgs(t)
	args.SamplingRate = cfn.Int(10)

	c := evidently.MustNewExperimentProps(args)
	assert.False(t, a.Equal(c))
	assert.True(t, (*evidently.ExperimentProps)(nil).Equal(nil))
}

func TestFeature_Variations(t *testing.T) {
	stack := cfn.NewStack("")

	project, err := evidently.NewProject(stack, "Shop", evidently.ProjectPropsArgs{
		Name: cfn.String("shop"),
		Tags: cfn.Lit([]cfn.Value[cfn.Tag]{cfn.Lit(cfn.NewTag("team", "web"))}),
	})
	require.NoError(t, err)

	feature, err := evidently.NewFeature(stack, "Checkout", evidently.FeaturePropsArgs{
		Name:    cfn.String("new-checkout"),
		Project: project.AttrARN(),
		Variations: cfn.List(
			evidently.MustNewFeature_VariationObject(evidently.Feature_VariationObjectArgs{
				VariationName: cfn.String("on"),
				BooleanValue:  cfn.Bool(true),
			}),
			evidently.MustNewFeature_VariationObject(evidently.Feature_VariationObjectArgs{
				VariationName: cfn.String("limit"),
				LongValue:     cfn.Int(42),
			}),
		),
	})
	require.NoError(t, err)

	out := feature.RenderProperties()
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Shop", "Arn"}}, out["Project"])
	assert.Equal(t, []any{
		map[string]any{"VariationName": "on", "BooleanValue": true},
		map[string]any{"VariationName": "limit", "LongValue": int64(42)},
	}, out["Variations"])

	assert.Equal(t, []any{map[string]any{"Key": "team", "Value": "web"}}, project.RenderProperties()["Tags"])

	feature.SetDescription(cfn.String("rolls out the new checkout"))
	assert.Equal(t, "rolls out the new checkout", mustLiteral(t, feature.Description()))

	tmpl := stack.Synthesize()
	require.Len(t, tmpl.Resources, 2)
	assert.Equal(t, evidently.FeatureTypeName, tmpl.Resources["Checkout"].Type)

	inspector := cfn.NewTreeInspector()
	feature.Inspect(inspector)
	assert.Equal(t, evidently.FeatureTypeName, inspector.Attributes()["aws:cdk:cloudformation:type"])
}

func TestProject_String(t *testing.T) {
	props := evidently.MustNewProjectProps(evidently.ProjectPropsArgs{
		Name:        cfn.String("shop"),
		Description: cfn.String("storefront"),
	})

	assert.Equal(t, `AWS::Evidently::Project(Name="shop", Description="storefront")`, props.String())

	dest := evidently.MustNewProject_DataDeliveryObject(evidently.Project_DataDeliveryObjectArgs{
		LogGroup: cfn.String("evidently-logs"),
	})
	assert.Equal(t, `AWS::Evidently::Project.DataDeliveryObject(LogGroup="evidently-logs")`, dest.String())
}

func mustLiteral[T any](t *testing.T, v cfn.Value[T]) T {
	t.Helper()

	lit, ok := v.Literal()
	require.True(t, ok)

	return lit
}
