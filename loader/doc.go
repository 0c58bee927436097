// Package loader reads data type definitions from YAML documents and builds
// the definition graph bottom-up.
//
// A definitions file is a stream of YAML documents, one definition each.
// References between definitions use the data type name and resolve against
// a registry, so a definition must appear before anything that references
// it:
//
//	name: uint32
//	type: integer
//	attributes:
//	  format: unsigned
//	  size: 4
//	  units: bytes
//	---
//	name: header
//	type: structure
//	members:
//	- name: magic
//	  data_type: uint32
//
// Element counts and data sizes may be literals or expressions. Expressions
// are stored verbatim on the definition for the mapping engine to evaluate;
// the loader never evaluates them.
package loader
