package datatypes

import (
	"github.com/wippyai/datatypes/errors"
)

// EnumerationValue is one named value of an enumeration. It is a plain
// record with no behavior.
type EnumerationValue struct {
	Name        string
	Value       int64
	Aliases     []string
	Description string
}

// EnumerationDefinition describes a fixed-size value drawn from a named set
// of enumeration values. Values keep insertion order and are indexed by
// exact name.
type EnumerationDefinition struct {
	FixedSizeDefinition

	values       []*EnumerationValue
	valuesByName map[string]*EnumerationValue
}

func NewEnumeration(name string) *EnumerationDefinition {
	return &EnumerationDefinition{
		FixedSizeDefinition: FixedSizeDefinition{
			DefinitionBase: DefinitionBase{Name: name},
		},
		valuesByName: make(map[string]*EnumerationValue),
	}
}

func (d *EnumerationDefinition) Kind() Kind {
	return KindEnumeration
}

// AddValue adds an enumeration value. A value whose name already exists is
// rejected and the enumeration is left unchanged.
//
// TODO: check if aliases already exist.
// TODO: check if the value already exists.
func (d *EnumerationDefinition) AddValue(name string, value int64, aliases []string, description string) error {
	if d.valuesByName == nil {
		d.valuesByName = make(map[string]*EnumerationValue)
	}
	if _, exists := d.valuesByName[name]; exists {
		return errors.DuplicateName(errors.PhaseDefine, name, KindEnumeration.String())
	}

	enumerationValue := &EnumerationValue{
		Name:        name,
		Value:       value,
		Aliases:     aliases,
		Description: description,
	}
	d.values = append(d.values, enumerationValue)
	d.valuesByName[name] = enumerationValue
	return nil
}

// Values returns the enumeration values in insertion order.
func (d *EnumerationDefinition) Values() []*EnumerationValue {
	return d.values
}

// Value looks up an enumeration value by exact name. Lookup by alias or by
// value is not supported.
func (d *EnumerationDefinition) Value(name string) (*EnumerationValue, bool) {
	value, ok := d.valuesByName[name]
	return value, ok
}
