package stepper

// Binding is a caller-owned numeric value the widget displays and edits.
// The widget reads it to render and writes it only after a successful
// validation or a clamped step, so the owner always observes in-range
// values.
type Binding struct {
	v        float64
	onChange func(float64)
}

// NewBinding creates a binding with an initial value.
func NewBinding(v float64) *Binding {
	return &Binding{v: v}
}

// Get returns the current value.
func (b *Binding) Get() float64 {
	return b.v
}

// Set writes a new value and notifies the observer, if any. Writing the
// value already held is a no-op and does not notify.
func (b *Binding) Set(v float64) {
	if b.v == v {
		return
	}
	b.v = v
	if b.onChange != nil {
		b.onChange(v)
	}
}

// OnChange registers a single observer invoked after every effective write,
// whether it came from the widget or from the owner.
func (b *Binding) OnChange(fn func(float64)) {
	b.onChange = fn
}
