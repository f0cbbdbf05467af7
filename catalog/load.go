package catalog

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a crew file (a YAML or JSON sequence of entries) and indexes it.
func Load(path string, opts ...Option) (*Memory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: read %s", path)
	}
	var entries []Entry
	if err = yaml.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrapf(err, "catalog: decode %s", path)
	}
	m, err := NewMemory(entries, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return m, nil
}
