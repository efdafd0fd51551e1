package config

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates a problem definition from a YAML file.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening problem file: %w", err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("problem file %s: %w", path, err)
	}
	return p, nil
}

// Parse reads and validates a problem definition from a reader.
func Parse(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks structural validity plus cross-references the struct tags
// cannot express: unique task and resource IDs, dependency endpoints that
// exist, and spans inside the horizon.
func (p *Problem) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("validating problem: %w", err)
	}

	taskIDs := make(map[string]struct{}, len(p.Tasks))
	for _, t := range p.Tasks {
		if _, dup := taskIDs[t.ID]; dup {
			return fmt.Errorf("duplicate task ID %q", t.ID)
		}
		taskIDs[t.ID] = struct{}{}
		for _, w := range append(append([]Span{}, t.Windows...), t.ExcludeWindows...) {
			if w.End <= w.Start {
				return fmt.Errorf("task %q: window [%g, %g] is inverted or empty", t.ID, w.Start, w.End)
			}
		}
	}

	resourceIDs := make(map[string]struct{}, len(p.Resources))
	for _, r := range p.Resources {
		if _, dup := resourceIDs[r.ID]; dup {
			return fmt.Errorf("duplicate resource ID %q", r.ID)
		}
		resourceIDs[r.ID] = struct{}{}
	}

	for _, d := range p.Dependencies {
		if _, ok := taskIDs[d.From]; !ok {
			return fmt.Errorf("dependency references unknown task %q", d.From)
		}
		if _, ok := taskIDs[d.To]; !ok {
			return fmt.Errorf("dependency references unknown task %q", d.To)
		}
	}

	return nil
}
