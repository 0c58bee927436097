package datatypes

// Definition is one node in a type-description graph. Every variant
// implements the same three capability queries; none of them fails.
type Definition interface {
	// Kind returns the variant discriminator.
	Kind() Kind

	// Base returns the identity and metadata fields shared by every
	// variant.
	Base() *DefinitionBase

	// AttributeNames determines the attribute (or field) names the
	// definition exposes, in declaration order. An empty result means the
	// definition exposes no attributes; it is never an error.
	AttributeNames() []string

	// ByteSize retrieves the byte size of the definition. ok is false
	// when the size cannot be statically determined.
	ByteSize() (size int, ok bool)

	// IsComposite reports whether the definition consists of other
	// definitions.
	IsComposite() bool
}

// DefinitionBase carries the identity and metadata shared by every variant.
// Identity fields are set once at construction; ByteOrder may be overridden
// by whoever wires the definition into a composite.
type DefinitionBase struct {
	Name        string
	Aliases     []string
	Description string
	URLs        []string
	ByteOrder   ByteOrder
}

// Base returns the receiver so that embedding DefinitionBase satisfies the
// Base method of Definition.
func (b *DefinitionBase) Base() *DefinitionBase {
	return b
}
