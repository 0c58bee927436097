package datatypes

// ConstantDefinition describes a named value with no byte representation.
// Constants are referenced, never stored, so their byte size is always
// undetermined.
type ConstantDefinition struct {
	DefinitionBase

	Value int64
}

func NewConstant(name string, value int64) *ConstantDefinition {
	return &ConstantDefinition{
		DefinitionBase: DefinitionBase{Name: name},
		Value:          value,
	}
}

func (d *ConstantDefinition) Kind() Kind {
	return KindConstant
}

func (d *ConstantDefinition) AttributeNames() []string {
	return []string{"constant"}
}

func (d *ConstantDefinition) ByteSize() (int, bool) {
	return 0, false
}

func (d *ConstantDefinition) IsComposite() bool {
	return false
}
