package datatypes

import "testing"

func TestFixedSizeByteSize(t *testing.T) {
	tests := []struct {
		name     string
		def      Definition
		wantSize int
		wantOK   bool
	}{
		{
			name: "integer 4 bytes",
			def: func() Definition {
				d := NewInteger("uint32")
				d.Size = 4
				return d
			}(),
			wantSize: 4,
			wantOK:   true,
		},
		{
			name: "character 1 byte",
			def: func() Definition {
				d := NewCharacter("char")
				d.Size = 1
				return d
			}(),
			wantSize: 1,
			wantOK:   true,
		},
		{
			name: "floating-point 8 bytes",
			def: func() Definition {
				d := NewFloatingPoint("float64")
				d.Size = 8
				return d
			}(),
			wantSize: 8,
			wantOK:   true,
		},
		{
			name: "boolean 1 byte",
			def: func() Definition {
				d := NewBoolean("bool")
				d.Size = 1
				return d
			}(),
			wantSize: 1,
			wantOK:   true,
		},
		{
			name:     "uuid fixed 16 bytes",
			def:      NewUUID("uuid"),
			wantSize: 16,
			wantOK:   true,
		},
		{
			name: "size in bits is undetermined",
			def: func() Definition {
				d := NewInteger("int12")
				d.Size = 12
				d.Units = UnitsBits
				return d
			}(),
			wantOK: false,
		},
		{
			name:   "size not set is undetermined",
			def:    NewInteger("int"),
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			size, ok := tc.def.ByteSize()
			if ok != tc.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOK)
			}
			if ok && size != tc.wantSize {
				t.Errorf("size: got %d, want %d", size, tc.wantSize)
			}
		})
	}
}

func TestFixedSizeAttributeNames(t *testing.T) {
	defs := []Definition{
		NewBoolean("bool"),
		NewCharacter("char"),
		NewFloatingPoint("float32"),
		NewInteger("int32"),
		NewUUID("uuid"),
		NewEnumeration("colors"),
	}

	for _, def := range defs {
		t.Run(def.Kind().String(), func(t *testing.T) {
			names := def.AttributeNames()
			if len(names) != 1 || names[0] != "value" {
				t.Errorf("attribute names: got %v, want [value]", names)
			}
		})
	}
}

func TestBooleanDefaults(t *testing.T) {
	d := NewBoolean("bool")

	if d.FalseValue == nil || *d.FalseValue != 0 {
		t.Errorf("false value: got %v, want 0", d.FalseValue)
	}
	if d.TrueValue != nil {
		t.Errorf("true value: got %v, want unset", *d.TrueValue)
	}
}

func TestIntegerFormatDefault(t *testing.T) {
	d := NewInteger("int32")
	if d.Format != FormatSigned {
		t.Errorf("format: got %s, want signed", d.Format)
	}

	d.Format = FormatUnsigned
	if d.Format != FormatUnsigned {
		t.Errorf("format: got %s, want unsigned", d.Format)
	}
}

func TestVariableWidthSizes(t *testing.T) {
	d := NewCharacter("wchar")
	d.Sizes = []int{1, 2, 4}

	if _, ok := d.ByteSize(); ok {
		t.Error("a variable-width definition without a single size should be undetermined")
	}
}

func TestConstantDefinition(t *testing.T) {
	d := NewConstant("maximum_number_of_streams", 100)

	if d.Kind() != KindConstant {
		t.Errorf("kind: got %s, want constant", d.Kind())
	}
	if d.Value != 100 {
		t.Errorf("value: got %d, want 100", d.Value)
	}
	if names := d.AttributeNames(); len(names) != 1 || names[0] != "constant" {
		t.Errorf("attribute names: got %v, want [constant]", names)
	}
	if _, ok := d.ByteSize(); ok {
		t.Error("constant byte size should be undetermined")
	}
	if d.IsComposite() {
		t.Error("constant should not be composite")
	}
}

func TestDefinitionMetadata(t *testing.T) {
	d := NewInteger("int32le")
	d.Aliases = []string{"INT32LE"}
	d.Description = "32-bit little-endian signed integer"
	d.URLs = []string{"https://en.wikipedia.org/wiki/Integer_(computer_science)"}
	d.ByteOrder = ByteOrderLittleEndian

	base := d.Base()
	if base.Name != "int32le" {
		t.Errorf("name: got %q", base.Name)
	}
	if len(base.Aliases) != 1 || base.Aliases[0] != "INT32LE" {
		t.Errorf("aliases: got %v", base.Aliases)
	}
	if base.ByteOrder != ByteOrderLittleEndian {
		t.Errorf("byte order: got %s", base.ByteOrder)
	}
}
