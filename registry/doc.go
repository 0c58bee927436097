// Package registry provides a name- and alias-indexed collection of data
// type definitions.
//
// A registry is the handoff point between a schema front end, which builds
// and registers definitions bottom-up, and consumers that look definitions
// up by name while wiring composites. Names and aliases share one
// case-insensitive namespace; registering a definition whose name or alias
// is already taken fails and leaves the registry unchanged.
//
// Registration and lookup are safe for concurrent use. The definitions
// themselves are not locked by the registry; finish mutating a definition
// before sharing it.
package registry
