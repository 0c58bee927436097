package datatypes

// Kind identifies the concrete definition variant.
type Kind uint8

const (
	// KindUndefined is the zero value, reported by wrappers that do not
	// hold a definition yet.
	KindUndefined Kind = iota
	KindBoolean
	KindCharacter
	KindConstant
	KindEnumeration
	KindFloatingPoint
	KindFormat
	KindInteger
	KindSequence
	KindStream
	KindString
	KindStructure
	KindUUID
)

var kindNames = [...]string{
	KindUndefined:     "undefined",
	KindBoolean:       "boolean",
	KindCharacter:     "character",
	KindConstant:      "constant",
	KindEnumeration:   "enumeration",
	KindFloatingPoint: "floating-point",
	KindFormat:        "format",
	KindInteger:       "integer",
	KindSequence:      "sequence",
	KindStream:        "stream",
	KindString:        "string",
	KindStructure:     "structure",
	KindUUID:          "uuid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a kind name to its Kind value.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if Kind(k) != KindUndefined && name == s {
			return Kind(k), true
		}
	}
	return KindUndefined, false
}

// ByteOrder is the endianness associated with a definition. Composites
// inherit it from their constituent elements unless overridden.
type ByteOrder uint8

const (
	ByteOrderNative ByteOrder = iota
	ByteOrderBigEndian
	ByteOrderLittleEndian
	ByteOrderMiddleEndian
)

var byteOrderNames = [...]string{
	ByteOrderNative:       "native",
	ByteOrderBigEndian:    "big-endian",
	ByteOrderLittleEndian: "little-endian",
	ByteOrderMiddleEndian: "middle-endian",
}

func (o ByteOrder) String() string {
	if int(o) < len(byteOrderNames) {
		return byteOrderNames[o]
	}
	return "unknown"
}

// ParseByteOrder maps a byte-order name to its ByteOrder value.
func ParseByteOrder(s string) (ByteOrder, bool) {
	for o, name := range byteOrderNames {
		if name == s {
			return ByteOrder(o), true
		}
	}
	return ByteOrderNative, false
}

// IntegerFormat indicates whether an integer definition is signed.
type IntegerFormat uint8

const (
	FormatSigned IntegerFormat = iota
	FormatUnsigned
)

var integerFormatNames = [...]string{
	FormatSigned:   "signed",
	FormatUnsigned: "unsigned",
}

func (f IntegerFormat) String() string {
	if int(f) < len(integerFormatNames) {
		return integerFormatNames[f]
	}
	return "unknown"
}

// ParseIntegerFormat maps an integer format name to its IntegerFormat value.
func ParseIntegerFormat(s string) (IntegerFormat, bool) {
	for f, name := range integerFormatNames {
		if name == s {
			return IntegerFormat(f), true
		}
	}
	return FormatSigned, false
}

// SizeUnits is the unit of a fixed-size definition's declared size. Only
// bytes participate in byte-size resolution.
type SizeUnits uint8

const (
	UnitsBytes SizeUnits = iota
	UnitsBits
)

var sizeUnitsNames = [...]string{
	UnitsBytes: "bytes",
	UnitsBits:  "bits",
}

func (u SizeUnits) String() string {
	if int(u) < len(sizeUnitsNames) {
		return sizeUnitsNames[u]
	}
	return "unknown"
}

// ParseSizeUnits maps a size-units name to its SizeUnits value.
func ParseSizeUnits(s string) (SizeUnits, bool) {
	for u, name := range sizeUnitsNames {
		if name == s {
			return SizeUnits(u), true
		}
	}
	return UnitsBytes, false
}
