package datatypes

// FixedSizeDefinition is the shared shape of the leaf variants that carry an
// explicit size. It is embedded by the concrete variants, never used on its
// own.
type FixedSizeDefinition struct {
	DefinitionBase

	// Size is the declared size in Units, 0 when not set. Variable-width
	// encodings declare their allowed sizes in Sizes instead.
	Size  int
	Sizes []int
	Units SizeUnits
}

func (d *FixedSizeDefinition) AttributeNames() []string {
	return []string{"value"}
}

func (d *FixedSizeDefinition) ByteSize() (int, bool) {
	if d.Units != UnitsBytes || d.Size <= 0 {
		return 0, false
	}
	return d.Size, true
}

func (d *FixedSizeDefinition) IsComposite() bool {
	return false
}

// BooleanDefinition describes a boolean stored as a fixed-size value.
//
// TrueValue and FalseValue are the sentinel encodings. A nil sentinel means
// any value other than the opposite sentinel. The model does not validate
// sentinel combinations.
type BooleanDefinition struct {
	FixedSizeDefinition

	TrueValue  *int64
	FalseValue *int64
}

// NewBoolean returns a boolean definition where 0 encodes false and any
// other value encodes true.
func NewBoolean(name string) *BooleanDefinition {
	falseValue := int64(0)
	return &BooleanDefinition{
		FixedSizeDefinition: FixedSizeDefinition{
			DefinitionBase: DefinitionBase{Name: name},
		},
		FalseValue: &falseValue,
	}
}

func (d *BooleanDefinition) Kind() Kind {
	return KindBoolean
}

// CharacterDefinition describes a single character value.
type CharacterDefinition struct {
	FixedSizeDefinition
}

func NewCharacter(name string) *CharacterDefinition {
	return &CharacterDefinition{
		FixedSizeDefinition: FixedSizeDefinition{
			DefinitionBase: DefinitionBase{Name: name},
		},
	}
}

func (d *CharacterDefinition) Kind() Kind {
	return KindCharacter
}

// FloatingPointDefinition describes a floating-point value.
type FloatingPointDefinition struct {
	FixedSizeDefinition
}

func NewFloatingPoint(name string) *FloatingPointDefinition {
	return &FloatingPointDefinition{
		FixedSizeDefinition: FixedSizeDefinition{
			DefinitionBase: DefinitionBase{Name: name},
		},
	}
}

func (d *FloatingPointDefinition) Kind() Kind {
	return KindFloatingPoint
}

// IntegerDefinition describes an integer value with a signed or unsigned
// format.
type IntegerDefinition struct {
	FixedSizeDefinition

	Format IntegerFormat
}

func NewInteger(name string) *IntegerDefinition {
	return &IntegerDefinition{
		FixedSizeDefinition: FixedSizeDefinition{
			DefinitionBase: DefinitionBase{Name: name},
		},
	}
}

func (d *IntegerDefinition) Kind() Kind {
	return KindInteger
}

// UUIDByteSize is the fixed size of a UUID (or GUID) value.
const UUIDByteSize = 16

// UUIDDefinition describes a UUID (or GUID) value. UUIDs are composite:
// their value consists of multiple integer parts.
type UUIDDefinition struct {
	FixedSizeDefinition
}

func NewUUID(name string) *UUIDDefinition {
	return &UUIDDefinition{
		FixedSizeDefinition: FixedSizeDefinition{
			DefinitionBase: DefinitionBase{Name: name},
			Size:           UUIDByteSize,
		},
	}
}

func (d *UUIDDefinition) Kind() Kind {
	return KindUUID
}

func (d *UUIDDefinition) IsComposite() bool {
	return true
}
