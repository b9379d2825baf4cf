// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (theme, badges, select field chrome, option list, overlay compositor)
// - returning the cell geometry of what was drawn so callers can register hit regions
//
// Not allowed here:
// - key handling, open/highlight state transitions, or selection logic
package widgets
