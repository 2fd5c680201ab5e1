package stepper

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Glyph is a displayable action affordance: a symbol plus its color.
type Glyph struct {
	Symbol string
	Color  lipgloss.Color
}

// Config is the per-editor configuration. It is assembled by applying
// caller overrides onto DefaultConfig and is frozen once an editor is
// constructed from it.
type Config struct {
	Unit      string  // suffix appended to the displayed value, stripped on edit start
	Label     string  // field name, also used as the alert title
	Increment float64 // step size, must be positive
	Minimum   float64
	Maximum   float64

	DecrementGlyph Glyph
	IncrementGlyph Glyph
	DeclineGlyph   Glyph
	ConfirmGlyph   Glyph
	DisabledColor  lipgloss.Color // glyph color when the next step would be a no-op
	LabelOpacity   float64        // in [0,1]; below 1 renders the label faint
}

// DefaultConfig is the base configuration overrides are merged onto.
func DefaultConfig() Config {
	return Config{
		Increment:      0.1,
		Minimum:        0,
		Maximum:        100,
		DecrementGlyph: Glyph{Symbol: "−", Color: AccentColor},
		IncrementGlyph: Glyph{Symbol: "+", Color: AccentColor},
		DeclineGlyph:   Glyph{Symbol: "✕", Color: ErrorColor},
		ConfirmGlyph:   Glyph{Symbol: "✓", Color: SuccessColor},
		DisabledColor:  MutedColor,
		LabelOpacity:   1,
	}
}

// Option overrides a single Config field.
type Option func(*Config)

// WithUnit sets the display suffix (e.g. " kg").
func WithUnit(unit string) Option {
	return func(c *Config) { c.Unit = unit }
}

// WithLabel sets the field label.
func WithLabel(label string) Option {
	return func(c *Config) { c.Label = label }
}

// WithIncrement sets the step size.
func WithIncrement(step float64) Option {
	return func(c *Config) { c.Increment = step }
}

// WithRange sets the inclusive bounds.
func WithRange(minimum, maximum float64) Option {
	return func(c *Config) {
		c.Minimum = minimum
		c.Maximum = maximum
	}
}

// WithDecrementGlyph overrides the decrement affordance.
func WithDecrementGlyph(g Glyph) Option {
	return func(c *Config) { c.DecrementGlyph = g }
}

// WithIncrementGlyph overrides the increment affordance.
func WithIncrementGlyph(g Glyph) Option {
	return func(c *Config) { c.IncrementGlyph = g }
}

// WithDeclineGlyph overrides the cancel affordance.
func WithDeclineGlyph(g Glyph) Option {
	return func(c *Config) { c.DeclineGlyph = g }
}

// WithConfirmGlyph overrides the confirm affordance.
func WithConfirmGlyph(g Glyph) Option {
	return func(c *Config) { c.ConfirmGlyph = g }
}

// WithDisabledColor overrides the at-bound glyph color.
func WithDisabledColor(color lipgloss.Color) Option {
	return func(c *Config) { c.DisabledColor = color }
}

// WithLabelOpacity sets the label opacity in [0,1].
func WithLabelOpacity(opacity float64) Option {
	return func(c *Config) { c.LabelOpacity = opacity }
}

// NewConfig applies opts onto DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	return NewConfigFrom(DefaultConfig(), opts...)
}

// NewConfigFrom applies opts onto a caller-supplied base configuration.
// Unset options inherit the base; explicit options always override it.
func NewConfigFrom(base Config, opts ...Option) (Config, error) {
	cfg := base
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects misconfiguration at construction time instead of
// leaving bound-check precedence to decide at runtime.
func (c Config) validate() error {
	if c.Increment <= 0 {
		return fmt.Errorf("increment must be positive, got %s", FormatDecimal(c.Increment))
	}
	if c.Minimum > c.Maximum {
		return fmt.Errorf("minimum %s exceeds maximum %s", FormatDecimal(c.Minimum), FormatDecimal(c.Maximum))
	}
	if c.LabelOpacity < 0 || c.LabelOpacity > 1 {
		return fmt.Errorf("label opacity must be in [0,1], got %s", FormatDecimal(c.LabelOpacity))
	}
	return nil
}

// checkRange reports a RangeError when v violates a bound. The too-large
// check runs after the too-small check and wins if both fire; validate
// rejects inverted bounds, which keeps that case unreachable for configs
// built through the constructors.
func (c Config) checkRange(v float64) error {
	var err error
	if v < c.Minimum {
		err = &RangeError{Value: v, Bound: c.Minimum, Direction: TooSmall}
	}
	if v > c.Maximum {
		err = &RangeError{Value: v, Bound: c.Maximum, Direction: TooLarge}
	}
	return err
}

// clamp bounds v to the configured range.
func (c Config) clamp(v float64) float64 {
	if v < c.Minimum {
		return c.Minimum
	}
	if v > c.Maximum {
		return c.Maximum
	}
	return v
}

// formatWithUnit renders a value for display, unit suffix included.
func (c Config) formatWithUnit(v float64) string {
	return FormatDecimal(v) + c.Unit
}
