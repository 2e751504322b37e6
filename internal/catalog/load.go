package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lexlens/internal/model"
)

// Load reads a rule catalog from a YAML file and validates it. Any
// rule problem surfaces here as ConfigurationError, before the catalog
// is ever used for analysis.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates YAML catalog data.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &model.ConfigurationError{Reason: fmt.Sprintf("parse catalog: %v", err)}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
