// Package catalog holds the immutable table of plants that can be grown and
// their base growth durations.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/Iron-Ham/sprout/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed plants.yaml
var defaultsYAML []byte

// ReferenceArea is the planted area, in area units, that a plant's base
// duration refers to.
const ReferenceArea = 100.0

// NoneSelected is the label the plant selector shows before a choice is
// made. It is never a valid plant name.
const NoneSelected = "Selecione..."

// Plant is a single catalog entry.
type Plant struct {
	Name     string `yaml:"name" json:"name" mapstructure:"name"`
	BaseDays int    `yaml:"base_days" json:"base_days" mapstructure:"base_days"`
}

// Catalog is an ordered, read-only set of plants. The zero value is empty;
// build one with New, Default or Parse.
type Catalog struct {
	plants []Plant
	index  map[string]int
}

type catalogFile struct {
	Plants []Plant `yaml:"plants"`
}

// New builds a catalog from the given plants, preserving their order.
// Names must be unique and non-empty, and base days must be at least 1.
func New(plants []Plant) (*Catalog, error) {
	if len(plants) == 0 {
		return nil, errors.ErrEmptyCatalog
	}

	c := &Catalog{
		plants: make([]Plant, 0, len(plants)),
		index:  make(map[string]int, len(plants)),
	}
	for i, p := range plants {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("plant %d: name is empty", i)
		}
		if name == NoneSelected {
			return nil, fmt.Errorf("plant %d: %q is reserved", i, name)
		}
		if p.BaseDays < 1 {
			return nil, fmt.Errorf("plant %q: base_days must be at least 1 (got %d)", name, p.BaseDays)
		}
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("plant %q: duplicate name", name)
		}
		c.index[name] = len(c.plants)
		c.plants = append(c.plants, Plant{Name: name, BaseDays: p.BaseDays})
	}
	return c, nil
}

// Parse reads a catalog from YAML of the form used by plants.yaml.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Plants)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultsYAML)
	if err != nil {
		// plants.yaml is compiled in; a parse failure is a build defect.
		panic(fmt.Sprintf("catalog: embedded defaults are invalid: %v", err))
	}
	return c
}

// Lookup returns the plant with the given name.
func (c *Catalog) Lookup(name string) (Plant, bool) {
	if c == nil {
		return Plant{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Plant{}, false
	}
	return c.plants[i], true
}

// BaseDays returns the base duration for name, or an error wrapping
// ErrPlantNotFound.
func (c *Catalog) BaseDays(name string) (int, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, errors.ErrPlantNotFound)
	}
	return p.BaseDays, nil
}

// Plants returns a copy of the catalog entries in display order.
func (c *Catalog) Plants() []Plant {
	if c == nil {
		return nil
	}
	out := make([]Plant, len(c.plants))
	copy(out, c.plants)
	return out
}

// Names returns the plant names in display order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.plants))
	for i, p := range c.plants {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of plants.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.plants)
}
