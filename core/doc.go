// Package core contains the select widget's contracts and state machine.
//
// Allowed here:
// - the option model and the single/multiple selection bindings
// - the interaction controller (open state, highlight, focus)
// - key registries and the key subscription bus
//
// Not allowed here:
// - rendering or terminal geometry (widgets, mouse)
// - Bubble Tea component wiring (selectbox)
package core
