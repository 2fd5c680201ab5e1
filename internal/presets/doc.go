// Package presets stores named editor field definitions in a YAML file.
//
// A preset bundles the configuration one editor row needs: label, unit,
// increment, bounds, and a starting value. The playground builds one
// editor per preset. When no preset file exists, a built-in set of
// defaults is used; 'stepfield presets init' writes those defaults to
// disk for customization.
//
// The file lives in the OS-appropriate configuration directory
// (e.g. ~/.config/stepfield/presets.yaml on Linux) and is written
// atomically. Presets that would produce an unconstructible editor
// (non-positive increment, inverted bounds) are rejected at load time.
package presets
