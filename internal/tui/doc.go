// Package tui implements the stepfield playground: a dashboard of bounded
// numeric editors, one row per preset.
//
// The playground is the "owning application" side of the widget contract.
// It routes keyboard input to the row under the cursor, hit-tests mouse
// presses against each editor's affordance zones, broadcasts pointer
// releases so no press-and-hold outlives its press, and overlays the
// active validation alert.
//
// Keys: up/down select a row, enter opens and commits an edit, esc
// cancels, tab blurs the current edit (committing it) and moves on, +/-
// tap the step buttons, q quits. Mouse: press-and-hold the [−]/[+]
// affordances to step with acceleration, press the value to start an
// edit.
package tui
