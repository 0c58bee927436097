package datatypes

// ElementSequenceDefinition is the shared shape of the homogeneous
// repeated-element variants (sequence, stream, string). It wraps one element
// type definition and describes how many elements there are, either as a
// literal or as an opaque expression evaluated by the mapping engine at run
// time. The model itself never evaluates expressions.
type ElementSequenceDefinition struct {
	DefinitionBase

	// ElementType is the wrapped element definition, shared by reference
	// with whichever composite owns it. ElementTypeName is kept for
	// diagnostics only.
	ElementType     Definition
	ElementTypeName string

	// NumberOfElements is the literal element count, 0 when not set.
	// NumberOfElementsExpression holds the run-time expression variant.
	NumberOfElements           int
	NumberOfElementsExpression string

	// ElementsDataSize is the explicit total data size in bytes, 0 when
	// not set. ElementsDataSizeExpression holds the run-time expression
	// variant.
	ElementsDataSize           int
	ElementsDataSizeExpression string
}

func newElementSequence(name string, elementType Definition) ElementSequenceDefinition {
	base := DefinitionBase{Name: name}
	if elementType != nil {
		// Byte order is inherited from the element at construction time.
		base.ByteOrder = elementType.Base().ByteOrder
	}
	return ElementSequenceDefinition{
		DefinitionBase: base,
		ElementType:    elementType,
	}
}

// ByteSize resolves the total byte size: an explicit elements data size
// wins, otherwise a literal element count times a determined element size.
// Expression-based counts or sizes leave the result undetermined.
func (d *ElementSequenceDefinition) ByteSize() (int, bool) {
	if d.ElementType == nil {
		return 0, false
	}
	if d.ElementsDataSize > 0 {
		return d.ElementsDataSize, true
	}
	if d.NumberOfElements > 0 {
		if elementByteSize, ok := d.ElementType.ByteSize(); ok {
			return elementByteSize * d.NumberOfElements, true
		}
	}
	return 0, false
}

func (d *ElementSequenceDefinition) IsComposite() bool {
	return true
}

// SequenceDefinition describes a homogeneous sequence of elements.
type SequenceDefinition struct {
	ElementSequenceDefinition
}

func NewSequence(name string, elementType Definition) *SequenceDefinition {
	return &SequenceDefinition{
		ElementSequenceDefinition: newElementSequence(name, elementType),
	}
}

func (d *SequenceDefinition) Kind() Kind {
	return KindSequence
}

func (d *SequenceDefinition) AttributeNames() []string {
	return []string{"elements"}
}

// StreamDefinition describes a stream of elements, typically bytes.
type StreamDefinition struct {
	ElementSequenceDefinition
}

func NewStream(name string, elementType Definition) *StreamDefinition {
	return &StreamDefinition{
		ElementSequenceDefinition: newElementSequence(name, elementType),
	}
}

func (d *StreamDefinition) Kind() Kind {
	return KindStream
}

func (d *StreamDefinition) AttributeNames() []string {
	return []string{"stream"}
}

// StringDefinition describes a string of character elements with an encoding
// and an optional terminator element value marking end-of-string.
type StringDefinition struct {
	ElementSequenceDefinition

	Encoding   string
	Terminator *int64
}

// NewString returns a string definition with the default "ascii" encoding.
func NewString(name string, elementType Definition) *StringDefinition {
	return &StringDefinition{
		ElementSequenceDefinition: newElementSequence(name, elementType),
		Encoding:                  "ascii",
	}
}

func (d *StringDefinition) Kind() Kind {
	return KindString
}

func (d *StringDefinition) AttributeNames() []string {
	return []string{"string"}
}
