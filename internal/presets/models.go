package presets

import (
	"fmt"
	"sort"

	"github.com/stepfield/stepfield/internal/stepper"
)

// Registry represents the entire preset file: named field definitions the
// playground binds editors to.
type Registry struct {
	Version int               `yaml:"version"`
	Fields  map[string]*Field `yaml:"fields,omitempty"` // keyed by preset name
}

// Field describes one editor preset. Values are configuration only; the
// edited value itself is never persisted.
type Field struct {
	Label     string  `yaml:"label"`           // display label, also the alert title
	Unit      string  `yaml:"unit,omitempty"`  // display suffix (e.g. " kg", "%")
	Increment float64 `yaml:"increment"`       // step size, must be positive
	Minimum   float64 `yaml:"minimum"`         // inclusive lower bound
	Maximum   float64 `yaml:"maximum"`         // inclusive upper bound
	Value     float64 `yaml:"value,omitempty"` // starting value
}

// Validate rejects presets an editor could not be constructed from.
func (f *Field) Validate(name string) error {
	if f.Label == "" {
		return fmt.Errorf("preset %q: label is required", name)
	}
	if f.Increment <= 0 {
		return fmt.Errorf("preset %q: increment must be positive, got %v", name, f.Increment)
	}
	if f.Minimum > f.Maximum {
		return fmt.Errorf("preset %q: minimum %v exceeds maximum %v", name, f.Minimum, f.Maximum)
	}
	return nil
}

// Options converts the preset into editor configuration overrides.
func (f *Field) Options() []stepper.Option {
	return []stepper.Option{
		stepper.WithLabel(f.Label),
		stepper.WithUnit(f.Unit),
		stepper.WithIncrement(f.Increment),
		stepper.WithRange(f.Minimum, f.Maximum),
	}
}

// NewRegistry creates a Registry populated with the built-in presets.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Fields: map[string]*Field{
			"temperature": {
				Label:     "Temperature",
				Unit:      "°C",
				Increment: 0.5,
				Minimum:   10,
				Maximum:   45,
				Value:     38,
			},
			"flow": {
				Label:     "Flow",
				Unit:      "%",
				Increment: 5,
				Minimum:   0,
				Maximum:   100,
				Value:     60,
			},
			"duration": {
				Label:     "Duration",
				Unit:      " min",
				Increment: 1,
				Minimum:   1,
				Maximum:   30,
				Value:     10,
			},
		},
	}
}

// Names returns the preset names in sorted order so the playground layout
// is stable across runs.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named preset, or nil.
func (r *Registry) Get(name string) *Field {
	return r.Fields[name]
}
