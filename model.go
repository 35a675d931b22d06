package assetflow

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownModel is returned when a model portfolio is not in the catalog.
var ErrUnknownModel = errors.New("unknown model portfolio")

// Target is the percentage a model portfolio allocates to one asset class.
type Target struct {
	Class   AssetClass `json:"class"`
	Percent Percent    `json:"percent"`
}

// ModelPortfolio is a named target allocation. It is immutable.
type ModelPortfolio struct {
	name    string
	targets []Target
	index   map[AssetClass]int
}

// NewModelPortfolio creates a model portfolio.
//
// Targets must be whole percentages between 0 and 100, with no duplicated
// class, and must sum to 100.
func NewModelPortfolio(name string, targets ...Target) (*ModelPortfolio, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("model portfolio has no name")
	}
	m := &ModelPortfolio{
		name:    name,
		targets: make([]Target, 0, len(targets)),
		index:   make(map[AssetClass]int, len(targets)),
	}
	var sum Percent
	for _, t := range targets {
		class, err := ParseAssetClass(string(t.Class))
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", name, err)
		}
		if _, exists := m.index[class]; exists {
			return nil, fmt.Errorf("model %q: asset class %q is defined twice", name, class)
		}
		p := t.Percent.Decimal()
		if !p.IsInteger() || p.IsNegative() || p.GreaterThan(hundred) {
			return nil, fmt.Errorf("model %q: target %s for %q is not a whole percentage between 0 and 100", name, p, class)
		}
		m.index[class] = len(m.targets)
		m.targets = append(m.targets, Target{Class: class, Percent: t.Percent})
		sum = sum.Add(t.Percent)
	}
	if !sum.Equal(Pct(100)) {
		return nil, fmt.Errorf("model %q: targets sum to %s, want 100", name, sum)
	}
	return m, nil
}

// Name returns the model portfolio name.
func (m *ModelPortfolio) Name() string { return m.name }

// Targets returns the targets in catalog order.
func (m *ModelPortfolio) Targets() []Target {
	res := make([]Target, len(m.targets))
	copy(res, m.targets)
	return res
}

// Target returns the target percentage for class, or def when the model does
// not mention the class.
func (m *ModelPortfolio) Target(class AssetClass, def Percent) Percent {
	i, exists := m.index[class]
	if !exists {
		return def
	}
	return m.targets[i].Percent
}

// MarshalJSON writes the model as {"name": ..., "targets": [...]}.
func (m *ModelPortfolio) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string   `json:"name"`
		Targets []Target `json:"targets"`
	}{m.name, m.targets})
}

// Catalog is an ordered set of model portfolios looked up by name.
type Catalog struct {
	models []*ModelPortfolio
}

// NewCatalog creates a catalog. Names are unique, regardless of case.
func NewCatalog(models ...*ModelPortfolio) (*Catalog, error) {
	c := &Catalog{}
	for _, m := range models {
		if _, err := c.Lookup(m.Name()); err == nil {
			return nil, fmt.Errorf("model %q is defined twice", m.Name())
		}
		c.models = append(c.models, m)
	}
	return c, nil
}

// Lookup returns the model portfolio named name, ignoring case.
func (c *Catalog) Lookup(name string) (*ModelPortfolio, error) {
	name = strings.TrimSpace(name)
	for _, m := range c.models {
		if strings.EqualFold(m.name, name) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// Names returns the model names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.models))
	for _, m := range c.models {
		names = append(names, m.name)
	}
	return names
}

// Models returns the model portfolios in catalog order.
func (c *Catalog) Models() []*ModelPortfolio {
	res := make([]*ModelPortfolio, len(c.models))
	copy(res, c.models)
	return res
}

// tomlCatalog is the catalog file format.
type tomlCatalog struct {
	Models []struct {
		Name    string `toml:"name"`
		Targets []struct {
			Class   string `toml:"class"`
			Percent int    `toml:"percent"`
		} `toml:"targets"`
	} `toml:"models"`
}

// DecodeCatalog reads a catalog in TOML format.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var tc tomlCatalog
	if err := toml.NewDecoder(r).Decode(&tc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if len(tc.Models) == 0 {
		return nil, errors.New("decoding catalog: no model portfolio defined")
	}
	models := make([]*ModelPortfolio, 0, len(tc.Models))
	for _, tm := range tc.Models {
		targets := make([]Target, 0, len(tm.Targets))
		for _, tt := range tm.Targets {
			targets = append(targets, Target{Class: AssetClass(tt.Class), Percent: Pct(tt.Percent)})
		}
		m, err := NewModelPortfolio(tm.Name, targets...)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return NewCatalog(models...)
}

//go:embed catalog.toml
var defaultCatalogTOML string

var defaultCatalog = mustDecodeCatalog(defaultCatalogTOML)

func mustDecodeCatalog(s string) *Catalog {
	c, err := DecodeCatalog(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the built-in catalog: Income, Growth and Balanced.
func DefaultCatalog() *Catalog { return defaultCatalog }
