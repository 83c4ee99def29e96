package check

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template is the subset of a CloudFormation template the checker reads.
type Template struct {
	Resources map[string]TemplateResource `json:"Resources"`
}

// TemplateResource is one entry of the Resources section.
type TemplateResource struct {
	Type       string         `json:"Type"`
	Properties map[string]any `json:"Properties"`
}

// ParseTemplate decodes a JSON or YAML template.
func ParseTemplate(data []byte) (*Template, error) {
	trimmed := bytes.TrimSpace(data)

	var raw []byte

	if len(trimmed) > 0 && trimmed[0] == '{' {
		raw = trimmed
	} else {
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("failed to parse template YAML: %w", err)
		}

		v, err := nodeValue(&node)
		if err != nil {
			return nil, err
		}

		if raw, err = json.Marshal(v); err != nil {
			return nil, fmt.Errorf("failed to convert template YAML: %w", err)
		}
	}

	var t Template
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to decode template: %w", err)
	}

	return &t, nil
}

// nodeValue converts a YAML node to a JSON-compatible value, expanding
// short-form intrinsic tags (!Ref, !GetAtt, !Sub, ...).
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return nodeValue(n.Content[0])

	case yaml.AliasNode:
		return nodeValue(n.Alias)

	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)

		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			m[n.Content[i].Value] = v
		}

		return intrinsic(n, m)

	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))

		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}

			s = append(s, v)
		}

		return intrinsic(n, s)

	case yaml.ScalarNode:
		if isShortForm(n.Tag) {
			if n.Tag == "!GetAtt" {
				logicalID, attr, _ := strings.Cut(n.Value, ".")
				return map[string]any{"Fn::GetAtt": []any{logicalID, attr}}, nil
			}

			return intrinsic(n, n.Value)
		}

		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}

		return v, nil
	}

	return nil, fmt.Errorf("unsupported YAML node kind %v at line %d", n.Kind, n.Line)
}

func isShortForm(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}

func intrinsic(n *yaml.Node, v any) (any, error) {
	if !isShortForm(n.Tag) {
		return v, nil
	}

	name := strings.TrimPrefix(n.Tag, "!")
	if name == "Ref" || name == "Condition" {
		return map[string]any{name: v}, nil
	}

	return map[string]any{"Fn::" + name: v}, nil
}
