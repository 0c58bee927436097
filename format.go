package datatypes

// FormatDefinition represents an entire named format or container. It is a
// logical grouping rather than a physical layout: it exposes no attributes
// of its own and its byte size is always undetermined.
type FormatDefinition struct {
	DefinitionBase
}

func NewFormat(name string) *FormatDefinition {
	return &FormatDefinition{
		DefinitionBase: DefinitionBase{Name: name},
	}
}

func (d *FormatDefinition) Kind() Kind {
	return KindFormat
}

func (d *FormatDefinition) AttributeNames() []string {
	return nil
}

func (d *FormatDefinition) ByteSize() (int, bool) {
	return 0, false
}

func (d *FormatDefinition) IsComposite() bool {
	return true
}
