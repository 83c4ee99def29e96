package cfn

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Stack is a Scope that synthesizes a template document.
type Stack struct {
	mu          sync.Mutex
	description string
	order       []string
	resources   map[string]*Resource
}

// Template is the synthesized document.
type Template struct {
	AWSTemplateFormatVersion string                      `json:"AWSTemplateFormatVersion"`
	Description              string                      `json:"Description,omitempty"`
	Resources                map[string]TemplateResource `json:"Resources"`
}

// TemplateResource is one entry of the Resources section.
type TemplateResource struct {
	Type       string         `json:"Type"`
	Properties map[string]any `json:"Properties,omitempty"`
}

// NewStack creates an empty stack.
func NewStack(description string) *Stack {
	return &Stack{
		description: description,
		resources:   make(map[string]*Resource),
	}
}

// AddResource registers a resource. Logical ids must be unique.
func (s *Stack) AddResource(r *Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[r.LogicalID()]; ok {
		return fmt.Errorf("duplicate logical id %q", r.LogicalID())
	}

	s.resources[r.LogicalID()] = r
	s.order = append(s.order, r.LogicalID())

	return nil
}

// Resource returns a registered resource by logical id.
func (s *Stack) Resource(logicalID string) (*Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.resources[logicalID]

	return r, ok
}

// Resources returns the registered resources in registration order.
func (s *Stack) Resources() []*Resource {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Resource, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.resources[id])
	}

	return out
}

// Synthesize renders every resource into a template.
func (s *Stack) Synthesize() Template {
	t := Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              s.description,
		Resources:                make(map[string]TemplateResource),
	}

	for _, r := range s.Resources() {
		t.Resources[r.LogicalID()] = TemplateResource{
			Type:       r.TypeName(),
			Properties: r.RenderProperties(),
		}
	}

	return t
}

// TemplateJSON returns the synthesized template as indented JSON.
func (s *Stack) TemplateJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.Synthesize(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template: %w", err)
	}

	return data, nil
}
