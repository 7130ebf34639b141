package adapter

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	m "minbool.dev/pkg/minbool/internal/model"
)

//go:embed examples.yaml
var examplesYAML []byte

// ExampleCatalog serves the built-in named example expressions.
type ExampleCatalog interface {
	Examples() ([]m.Example, error)
}

type exampleCatalog struct {
	examples []m.Example
}

// NewExampleCatalog loads the embedded catalog.
func NewExampleCatalog() (ExampleCatalog, error) {
	var doc struct {
		Examples []m.Example `yaml:"examples"`
	}

	if err := yaml.Unmarshal(examplesYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse embedded examples: %w", err)
	}

	if len(doc.Examples) == 0 {
		return nil, fmt.Errorf("embedded example catalog is empty")
	}

	return &exampleCatalog{examples: doc.Examples}, nil
}

// Examples returns the catalog entries in file order.
func (c *exampleCatalog) Examples() ([]m.Example, error) {
	out := make([]m.Example, len(c.examples))
	copy(out, c.examples)

	return out, nil
}
