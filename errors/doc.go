// Package errors provides structured error types for the datatypes library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the offending name, the
// data type involved, a detail message and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindUnknownType).
//		Name("header").
//		DataType("int128").
//		Detail("no definition registered under this name").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DuplicateName(errors.PhaseRegister, "int32", "integer")
//	err := errors.UnknownType(errors.PhaseLoad, "magic", "uint128")
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
