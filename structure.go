package datatypes

// StructureDefinition describes an ordered aggregate of heterogeneous named
// members.
//
// Attribute names and byte size are computed lazily and memoized. Adding a
// member invalidates both caches unconditionally, so queries always reflect
// the current member list regardless of how additions and queries
// interleave. A determined byte size is reused until the next mutation; an
// undetermined result is recomputed on the next query.
type StructureDefinition struct {
	DefinitionBase

	members []*StructureMemberDefinition

	attributeNames []string
	attributesSet  bool
	byteSize       int
	byteSizeSet    bool
}

func NewStructure(name string) *StructureDefinition {
	return &StructureDefinition{
		DefinitionBase: DefinitionBase{Name: name},
	}
}

func (d *StructureDefinition) Kind() Kind {
	return KindStructure
}

// AddMember appends a member and invalidates the attribute-name and
// byte-size caches.
func (d *StructureDefinition) AddMember(member *StructureMemberDefinition) {
	d.attributeNames = nil
	d.attributesSet = false
	d.byteSizeSet = false
	d.members = append(d.members, member)
}

// Members returns the member definitions in declaration order.
func (d *StructureDefinition) Members() []*StructureMemberDefinition {
	return d.members
}

func (d *StructureDefinition) AttributeNames() []string {
	if !d.attributesSet {
		names := make([]string, 0, len(d.members))
		for _, member := range d.members {
			names = append(names, member.Name)
		}
		d.attributeNames = names
		d.attributesSet = true
	}
	return d.attributeNames
}

// ByteSize is the sum of all member byte sizes. The size is all-or-nothing:
// an empty member list or any member with an undetermined size makes the
// whole structure undetermined.
func (d *StructureDefinition) ByteSize() (int, bool) {
	if d.byteSizeSet {
		return d.byteSize, true
	}
	if len(d.members) == 0 {
		return 0, false
	}

	total := 0
	for _, member := range d.members {
		memberByteSize, ok := member.ByteSize()
		if !ok {
			return 0, false
		}
		total += memberByteSize
	}

	d.byteSize = total
	d.byteSizeSet = true
	return total, true
}

func (d *StructureDefinition) IsComposite() bool {
	return true
}

// StructureMemberDefinition wraps exactly one definition of any variant as a
// named structure member. All capability queries delegate to the wrapped
// definition; a member wrapping nothing reports undetermined size, no
// attributes and not composite, so partially specified definitions remain
// usable for reflection.
type StructureMemberDefinition struct {
	DefinitionBase

	// MemberType is the wrapped definition. MemberTypeName is kept for
	// diagnostics only.
	MemberType     Definition
	MemberTypeName string
}

func NewStructureMember(name string, memberType Definition) *StructureMemberDefinition {
	base := DefinitionBase{Name: name}
	if memberType != nil {
		// Byte order is inherited from the wrapped definition at
		// construction time.
		base.ByteOrder = memberType.Base().ByteOrder
	}
	return &StructureMemberDefinition{
		DefinitionBase: base,
		MemberType:     memberType,
	}
}

func (d *StructureMemberDefinition) Kind() Kind {
	if d.MemberType != nil {
		return d.MemberType.Kind()
	}
	return KindUndefined
}

func (d *StructureMemberDefinition) AttributeNames() []string {
	if d.MemberType != nil {
		return d.MemberType.AttributeNames()
	}
	return nil
}

func (d *StructureMemberDefinition) ByteSize() (int, bool) {
	if d.MemberType != nil {
		return d.MemberType.ByteSize()
	}
	return 0, false
}

func (d *StructureMemberDefinition) IsComposite() bool {
	return d.MemberType != nil && d.MemberType.IsComposite()
}
