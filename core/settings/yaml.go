package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML merges a flat YAML mapping into the registry. Keys already
// present are overridden; other keys are untouched. Values keep the
// types the YAML decoder assigns (int, string, bool, float64, ...), so
// a YAML integer is retrieved with Get[int].
func LoadYAML(r *Registry, data []byte) error {
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to decode settings yaml: %w", err)
	}
	for name, value := range values {
		r.Set(name, value)
	}
	return nil
}

// LoadYAMLFile is LoadYAML over the contents of a file.
func LoadYAMLFile(r *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return LoadYAML(r, data)
}
