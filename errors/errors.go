package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDefine   Phase = "define"   // building a single definition
	PhaseRegister Phase = "register" // definition registration
	PhaseLoad     Phase = "load"     // reading a definitions document
	PhaseResolve  Phase = "resolve"  // resolving references between definitions
)

// Kind categorizes the error
type Kind string

const (
	KindDuplicateName Kind = "duplicate_name"
	KindUnknownType   Kind = "unknown_type"
	KindInvalidInput  Kind = "invalid_input"
	KindUnsupported   Kind = "unsupported"
	KindNotFound      Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Name     string // definition or value name
	DataType string // data type or kind name involved
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Name != "" {
		b.WriteString(": name ")
		b.WriteString(e.Name)
	}
	if e.DataType != "" {
		if e.Name != "" {
			b.WriteString(" (")
			b.WriteString(e.DataType)
			b.WriteByte(')')
		} else {
			b.WriteString(": data type ")
			b.WriteString(e.DataType)
		}
	}

	if e.Detail != "" {
		if e.Name != "" || e.DataType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the context path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Name sets the definition or value name
func (b *Builder) Name(name string) *Builder {
	b.err.Name = name
	return b
}

// DataType sets the data type name
func (b *Builder) DataType(dataType string) *Builder {
	b.err.DataType = dataType
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// DuplicateName creates a duplicate name error
func DuplicateName(phase Phase, name, dataType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindDuplicateName,
		Name:     name,
		DataType: dataType,
		Detail:   "already exists",
	}
}

// UnknownType creates an unknown data type error
func UnknownType(phase Phase, name, dataType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindUnknownType,
		Name:     name,
		DataType: dataType,
		Detail:   "no definition registered under this name",
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, name string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindNotFound,
		Name:  name,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, name, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Name:   name,
		Detail: detail,
	}
}
