package cfn

import (
	"fmt"
	"regexp"
)

var logicalIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,255}$`)

// Scope receives resources as they are constructed.
type Scope interface {
	AddResource(r *Resource) error
}

// Resource is the base of every generated resource wrapper.
type Resource struct {
	logicalID string
	typeName  string
	props     *Values
}

// NewResource validates the logical id and registers the resource in scope.
// A nil scope creates a detached resource.
func NewResource(scope Scope, logicalID, typeName string, props *Values) (*Resource, error) {
	if !logicalIDPattern.MatchString(logicalID) {
		return nil, fmt.Errorf("invalid logical id %q: must be 1-255 alphanumeric characters", logicalID)
	}

	if props == nil {
		props = NewValues(typeName)
	}

	r := &Resource{logicalID: logicalID, typeName: typeName, props: props}

	if scope != nil {
		if err := scope.AddResource(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// LogicalID returns the id the resource is registered under.
func (r *Resource) LogicalID() string {
	return r.logicalID
}

// TypeName returns the CloudFormation resource type.
func (r *Resource) TypeName() string {
	return r.typeName
}

// Properties returns the live property mapping.
func (r *Resource) Properties() *Values {
	return r.props
}

// RenderProperties converts the properties to wire form.
func (r *Resource) RenderProperties() map[string]any {
	return r.props.Render()
}

// Ref returns a deferred reference to this resource.
func (r *Resource) Ref() Value[string] {
	return Defer[string](Ref(r.logicalID))
}

// GetAtt returns a deferred attribute of this resource.
func (r *Resource) GetAtt(attribute string) Deferred {
	return GetAtt(r.logicalID, attribute)
}

// Inspect records the type and rendered properties in the inspector.
func (r *Resource) Inspect(inspector *TreeInspector) {
	inspector.AddAttribute("aws:cdk:cloudformation:type", r.typeName)
	inspector.AddAttribute("aws:cdk:cloudformation:props", r.RenderProperties())
}

func (r *Resource) String() string {
	return r.logicalID + ": " + r.props.String()
}

// TreeInspector collects attributes for construct tree reports.
type TreeInspector struct {
	attributes map[string]any
}

// NewTreeInspector creates an empty inspector.
func NewTreeInspector() *TreeInspector {
	return &TreeInspector{attributes: make(map[string]any)}
}

// AddAttribute records one attribute.
func (t *TreeInspector) AddAttribute(key string, value any) {
	t.attributes[key] = value
}

// Attributes returns the recorded attributes.
func (t *TreeInspector) Attributes() map[string]any {
	return t.attributes
}
