// Package datatypes models binary data layouts as a graph of data type
// definitions.
//
// A definition describes the shape of one binary data type (its size, the
// attribute names it exposes, whether it is composed of other definitions)
// without ever touching a concrete byte stream. Schema front ends build
// definition graphs bottom-up; mapping engines walk the graph to read or
// write actual bytes.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	datatypes/           Core definition variants and capability queries
//	├── registry/        Name- and alias-indexed definition registry
//	├── loader/          YAML definitions reader building graphs bottom-up
//	├── errors/          Structured error types for debugging
//	└── cmd/dtinfo/      CLI and TUI inspector over a definitions file
//
// # Key Types
//
//   - Definition: Capability interface every variant implements
//   - Kind: Variant discriminator (boolean, integer, structure, ...)
//   - StructureDefinition: Aggregate of named members with cached
//     attribute-name and byte-size resolution
//   - SequenceDefinition, StreamDefinition, StringDefinition:
//     Homogeneous repeated-element composites
//
// # Byte Size Resolution
//
// ByteSize returns (size, ok). A false ok means the size cannot be
// statically determined, for example when an element count comes from a
// run-time expression. Undetermined-ness propagates through every level of
// composition; it is never an error and never coerced to zero.
//
//	str := datatypes.NewStructure("header")
//	str.AddMember(datatypes.NewStructureMember("magic", uint32Def))
//	str.AddMember(datatypes.NewStructureMember("id", uuidDef))
//	size, ok := str.ByteSize() // 20, true
package datatypes
