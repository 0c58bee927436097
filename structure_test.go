package datatypes

import "testing"

func TestStructureAttributeNames(t *testing.T) {
	s := NewStructure("point3d")
	s.AddMember(NewStructureMember("x", newTestInteger("int32", 4)))
	s.AddMember(NewStructureMember("y", newTestInteger("int32", 4)))
	s.AddMember(NewStructureMember("z", newTestInteger("int32", 4)))

	names := s.AttributeNames()
	want := []string{"x", "y", "z"}
	if len(names) != len(want) {
		t.Fatalf("attribute names: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("attribute %d: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestStructureByteSize(t *testing.T) {
	tests := []struct {
		name     string
		members  []*StructureMemberDefinition
		wantSize int
		wantOK   bool
	}{
		{
			name: "sum of member sizes",
			members: []*StructureMemberDefinition{
				NewStructureMember("a", newTestInteger("uint8", 1)),
				NewStructureMember("b", newTestInteger("uint16", 2)),
				NewStructureMember("c", newTestInteger("uint32", 4)),
			},
			wantSize: 7,
			wantOK:   true,
		},
		{
			name: "permuted members give the same sum",
			members: []*StructureMemberDefinition{
				NewStructureMember("c", newTestInteger("uint32", 4)),
				NewStructureMember("a", newTestInteger("uint8", 1)),
				NewStructureMember("b", newTestInteger("uint16", 2)),
			},
			wantSize: 7,
			wantOK:   true,
		},
		{
			name:   "empty structure is undetermined",
			wantOK: false,
		},
		{
			name: "undetermined member short-circuits",
			members: []*StructureMemberDefinition{
				NewStructureMember("a", newTestInteger("uint8", 1)),
				NewStructureMember("b", NewInteger("int")),
				NewStructureMember("c", newTestInteger("uint32", 4)),
			},
			wantOK: false,
		},
		{
			name: "member wrapping nothing is undetermined",
			members: []*StructureMemberDefinition{
				NewStructureMember("a", nil),
			},
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStructure("test")
			for _, m := range tc.members {
				s.AddMember(m)
			}

			size, ok := s.ByteSize()
			if ok != tc.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOK)
			}
			if ok && size != tc.wantSize {
				t.Errorf("size: got %d, want %d", size, tc.wantSize)
			}
		})
	}
}

func TestStructureNested(t *testing.T) {
	inner := NewStructure("inner")
	inner.AddMember(NewStructureMember("a", newTestInteger("uint16", 2)))
	inner.AddMember(NewStructureMember("b", newTestInteger("uint16", 2)))

	outer := NewStructure("outer")
	outer.AddMember(NewStructureMember("header", newTestInteger("uint32", 4)))
	outer.AddMember(NewStructureMember("payload", inner))

	size, ok := outer.ByteSize()
	if !ok || size != 8 {
		t.Fatalf("byte size: got %d, %v, want 8, true", size, ok)
	}

	// An undetermined leaf deep in the nesting propagates all the way up.
	inner.AddMember(NewStructureMember("c", NewInteger("int")))
	if _, ok := outer.ByteSize(); ok {
		t.Error("nested undetermined size should propagate")
	}
}

func TestStructureCacheInvalidation(t *testing.T) {
	s := NewStructure("record")
	s.AddMember(NewStructureMember("first", newTestInteger("uint32", 4)))

	if size, ok := s.ByteSize(); !ok || size != 4 {
		t.Fatalf("byte size: got %d, %v, want 4, true", size, ok)
	}
	if names := s.AttributeNames(); len(names) != 1 {
		t.Fatalf("attribute names: got %v", names)
	}

	s.AddMember(NewStructureMember("second", newTestInteger("uint64", 8)))

	if size, ok := s.ByteSize(); !ok || size != 12 {
		t.Errorf("byte size after mutation: got %d, %v, want 12, true", size, ok)
	}
	names := s.AttributeNames()
	if len(names) != 2 || names[1] != "second" {
		t.Errorf("attribute names after mutation: got %v", names)
	}
}

func TestStructureUndeterminedBecomesDetermined(t *testing.T) {
	s := NewStructure("record")
	late := NewInteger("int")
	s.AddMember(NewStructureMember("field", late))

	if _, ok := s.ByteSize(); ok {
		t.Fatal("size should start undetermined")
	}

	// Resolving the leaf is visible without a structure mutation since an
	// undetermined result is never memoized.
	late.Size = 4
	if size, ok := s.ByteSize(); !ok || size != 4 {
		t.Errorf("byte size: got %d, %v, want 4, true", size, ok)
	}
}

func TestStructureMemberDelegation(t *testing.T) {
	element := newTestInteger("uint32", 4)
	inner := NewStructure("inner")
	inner.AddMember(NewStructureMember("a", element))

	tests := []struct {
		name          string
		member        *StructureMemberDefinition
		wantKind      Kind
		wantComposite bool
		wantOK        bool
		wantSize      int
		wantAttrs     int
	}{
		{
			name:          "integer member",
			member:        NewStructureMember("count", element),
			wantKind:      KindInteger,
			wantComposite: false,
			wantOK:        true,
			wantSize:      4,
			wantAttrs:     1,
		},
		{
			name:          "structure member",
			member:        NewStructureMember("payload", inner),
			wantKind:      KindStructure,
			wantComposite: true,
			wantOK:        true,
			wantSize:      4,
			wantAttrs:     1,
		},
		{
			name:          "empty member",
			member:        NewStructureMember("pending", nil),
			wantKind:      KindUndefined,
			wantComposite: false,
			wantOK:        false,
			wantAttrs:     0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.member.Kind(); got != tc.wantKind {
				t.Errorf("kind: got %s, want %s", got, tc.wantKind)
			}
			if got := tc.member.IsComposite(); got != tc.wantComposite {
				t.Errorf("composite: got %v, want %v", got, tc.wantComposite)
			}
			size, ok := tc.member.ByteSize()
			if ok != tc.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOK)
			}
			if ok && size != tc.wantSize {
				t.Errorf("size: got %d, want %d", size, tc.wantSize)
			}
			if got := len(tc.member.AttributeNames()); got != tc.wantAttrs {
				t.Errorf("attribute names: got %d, want %d", got, tc.wantAttrs)
			}
		})
	}
}

func TestStructureMemberByteOrderInherited(t *testing.T) {
	wrapped := newTestInteger("uint32be", 4)
	wrapped.ByteOrder = ByteOrderBigEndian

	m := NewStructureMember("magic", wrapped)
	if m.ByteOrder != ByteOrderBigEndian {
		t.Errorf("byte order: got %s, want big-endian", m.ByteOrder)
	}

	// Wiring-time override does not touch the wrapped definition.
	m.ByteOrder = ByteOrderLittleEndian
	if wrapped.ByteOrder != ByteOrderBigEndian {
		t.Error("override must not mutate the wrapped definition")
	}
}

func TestSharedElementDefinition(t *testing.T) {
	// One element definition reused by several composites.
	element := newTestInteger("uint16", 2)

	first := NewSequence("first", element)
	first.NumberOfElements = 4
	second := NewSequence("second", element)
	second.NumberOfElements = 8

	if size, ok := first.ByteSize(); !ok || size != 8 {
		t.Errorf("first: got %d, %v, want 8, true", size, ok)
	}
	if size, ok := second.ByteSize(); !ok || size != 16 {
		t.Errorf("second: got %d, %v, want 16, true", size, ok)
	}
}
