package check

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cfn-binding-generator/internal/common"
	"cfn-binding-generator/internal/diagnostic"
	"cfn-binding-generator/internal/schema"
)

// DefaultConcurrency bounds the number of templates checked at once.
const DefaultConcurrency = 8

// Checker validates template resources against the specification.
type Checker struct {
	spec        *schema.Spec
	logger      *zap.Logger
	concurrency int

	mu    sync.Mutex
	cache map[string]*jsonschema.Resolved
}

// NewChecker creates a Checker. A nil logger disables logging.
func NewChecker(spec *schema.Spec, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Checker{
		spec:        spec,
		logger:      logger,
		concurrency: DefaultConcurrency,
		cache:       make(map[string]*jsonschema.Resolved),
	}
}

// SetConcurrency changes how many templates are checked in parallel.
func (c *Checker) SetConcurrency(n int) {
	if n > 0 {
		c.concurrency = n
	}
}

// resolved returns the cached resolved schema of a resource type.
func (c *Checker) resolved(typeName string) (*jsonschema.Resolved, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rs, ok := c.cache[typeName]; ok {
		return rs, nil
	}

	r, err := c.spec.Resource(typeName)
	if err != nil {
		return nil, err
	}

	s, err := ResourceSchema(r)
	if err != nil {
		return nil, err
	}

	rs, err := s.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return nil, fmt.Errorf("resolving schema for %s: %w", typeName, err)
	}

	c.cache[typeName] = rs

	return rs, nil
}

// CheckTemplate validates every resource of a parsed template. name is
// used as the diagnostic subject prefix.
func (c *Checker) CheckTemplate(name string, t *Template) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	for _, id := range common.SortedKeys(t.Resources) {
		r := t.Resources[id]
		subject := name + ":" + id

		if !strings.HasPrefix(r.Type, "AWS::") {
			res.AddInfo("skipped_resource", fmt.Sprintf("type %q is not an AWS resource type", r.Type), subject, "")
			continue
		}

		rs, err := c.resolved(r.Type)
		if err != nil {
			res.AddWarning("unknown_resource_type", err.Error(), subject, "")
			continue
		}

		props := r.Properties
		if props == nil {
			props = map[string]any{}
		}

		if err := rs.Validate(props); err != nil {
			res.AddError("invalid_properties", err.Error(), subject, r.Type)
		}
	}

	return res
}

// CheckFile reads, parses and validates one template file.
func (c *Checker) CheckFile(path string) (diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return diagnostic.Diagnostics{}, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	t, err := ParseTemplate(data)
	if err != nil {
		return diagnostic.Diagnostics{}, fmt.Errorf("%s: %w", path, err)
	}

	return c.CheckTemplate(path, t), nil
}

// Templates validates templates concurrently and merges their diagnostics in
// input order. The first read or parse failure cancels the rest.
func (c *Checker) Templates(ctx context.Context, paths []string) (*diagnostic.Diagnostics, error) {
	results := make([]diagnostic.Diagnostics, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			d, err := c.CheckFile(path)
			if err != nil {
				return err
			}

			c.logger.Debug("checked template",
				zap.String("path", path),
				zap.Int("errors", len(d.Errors)))

			results[i] = d

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &diagnostic.Diagnostics{}
	for _, d := range results {
		merged.Merge(d)
	}

	return merged, nil
}

// SchemaJSON returns the derived JSON Schema of a resource type, indented.
func (c *Checker) SchemaJSON(typeName string) ([]byte, error) {
	rs, err := c.resolved(typeName)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(rs.Schema(), "", "  ")
}
