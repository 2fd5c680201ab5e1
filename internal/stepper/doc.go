// Package stepper provides a bounded numeric value editor widget for
// Bubble Tea applications.
//
// The widget combines two input modalities over a single caller-owned
// value:
//
//   - Direct text entry: the value is shown as formatted text; opening an
//     edit replaces it with a text input seeded from the current value
//     (unit suffix stripped). Confirming validates the draft against a
//     strict decimal convention and the configured bounds; cancelling
//     restores the last confirmed value without validating.
//   - Stepping: two repeat buttons apply the configured increment. A tap
//     applies exactly one clamped step; press-and-hold repeats steps at an
//     accelerating cadence until release.
//
// # Components
//
//   - Editor: the edit/validate/cancel/confirm state machine. It owns a
//     bubbles textinput as its text-entry surface and two RepeatButtons.
//   - RepeatButton: tap-or-hold stepping with a cancellable, accelerating
//     repeat timer.
//   - Binding: the caller-owned value. The widget reads it to render and
//     writes it only after a successful validation or a clamped step.
//   - Config: per-editor configuration, assembled by merging caller
//     overrides onto DefaultConfig and validated at construction.
//
// # Validation
//
// Draft text must be a plain decimal: one optional leading sign, ASCII
// digits, at most one '.' separator. Grouping separators, exponents, and
// locale-specific forms are rejected. Failures never propagate to the
// owner; they surface as a single Alert (at most one active per editor,
// a new one replaces any prior one) and leave the bound value unchanged.
//
// # Timing
//
// The repeat cadence is recomputed from elapsed hold time on every timer
// firing (Schedule.IntervalFor), so a hold accelerates smoothly toward the
// minimum interval. Releasing a button bumps a generation counter
// synchronously; a timer firing scheduled before the release is dropped
// rather than applying an unwanted extra step.
package stepper
