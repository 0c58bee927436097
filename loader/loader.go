package loader

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/datatypes"
	"github.com/wippyai/datatypes/errors"
	"github.com/wippyai/datatypes/registry"
)

// definitionDoc is the YAML shape of one definition document.
type definitionDoc struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	URLs        []string `yaml:"urls"`

	Attributes attributesDoc `yaml:"attributes"`

	Members []memberDoc `yaml:"members"`
	Values  []valueDoc  `yaml:"values"`

	ElementDataType    string    `yaml:"element_data_type"`
	NumberOfElements   yaml.Node `yaml:"number_of_elements"`
	ElementsDataSize   yaml.Node `yaml:"elements_data_size"`
	ElementsTerminator *int64    `yaml:"elements_terminator"`
	Encoding           string    `yaml:"encoding"`

	Value *int64 `yaml:"value"`
}

type attributesDoc struct {
	ByteOrder  string    `yaml:"byte_order"`
	Format     string    `yaml:"format"`
	Size       yaml.Node `yaml:"size"`
	Units      string    `yaml:"units"`
	TrueValue  *int64    `yaml:"true_value"`
	FalseValue *int64    `yaml:"false_value"`
}

type memberDoc struct {
	Name        string `yaml:"name"`
	DataType    string `yaml:"data_type"`
	Description string `yaml:"description"`
	ByteOrder   string `yaml:"byte_order"`
}

type valueDoc struct {
	Name        string   `yaml:"name"`
	Number      int64    `yaml:"number"`
	Aliases     []string `yaml:"aliases"`
	Description string   `yaml:"description"`
}

// Loader builds definitions from YAML documents and registers them.
type Loader struct {
	registry *registry.Registry
}

// New returns a loader that registers what it loads in reg.
func New(reg *registry.Registry) *Loader {
	return &Loader{registry: reg}
}

// LoadFile reads a definitions file.
func (l *Loader) LoadFile(path string) ([]datatypes.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definitions file: %w", err)
	}
	defer f.Close()

	defs, err := l.LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// LoadReader reads a stream of YAML documents, building and registering one
// definition per document in order.
func (l *Loader) LoadReader(r io.Reader) ([]datatypes.Definition, error) {
	decoder := yaml.NewDecoder(r)

	var defs []datatypes.Definition
	for index := 0; ; index++ {
		var doc definitionDoc
		if err := decoder.Decode(&doc); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path(docPath(index)).
				Detail("malformed YAML document").
				Cause(err).
				Build()
		}

		def, err := l.buildDefinition(index, &doc)
		if err != nil {
			return nil, err
		}
		if err := l.registry.Register(def); err != nil {
			return nil, err
		}

		Logger().Debug("loaded definition",
			zap.String("name", doc.Name),
			zap.String("kind", def.Kind().String()))
		defs = append(defs, def)
	}

	Logger().Info("loaded definitions", zap.Int("count", len(defs)))
	return defs, nil
}

func docPath(index int) string {
	return fmt.Sprintf("doc%d", index)
}

func (l *Loader) buildDefinition(index int, doc *definitionDoc) (datatypes.Definition, error) {
	if doc.Name == "" {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Path(docPath(index)).
			Detail("definition has no name").
			Build()
	}

	kind, ok := datatypes.ParseKind(doc.Type)
	if !ok {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupported).
			Path(docPath(index)).
			Name(doc.Name).
			DataType(doc.Type).
			Detail("unsupported definition type").
			Build()
	}

	var (
		def datatypes.Definition
		err error
	)
	switch kind {
	case datatypes.KindBoolean:
		d := datatypes.NewBoolean(doc.Name)
		if doc.Attributes.TrueValue != nil {
			d.TrueValue = doc.Attributes.TrueValue
		}
		if doc.Attributes.FalseValue != nil {
			d.FalseValue = doc.Attributes.FalseValue
		}
		err = l.applyFixedAttributes(index, doc, &d.FixedSizeDefinition)
		def = d

	case datatypes.KindCharacter:
		d := datatypes.NewCharacter(doc.Name)
		err = l.applyFixedAttributes(index, doc, &d.FixedSizeDefinition)
		def = d

	case datatypes.KindConstant:
		if doc.Value == nil {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path(docPath(index)).
				Name(doc.Name).
				Detail("constant has no value").
				Build()
		}
		def = datatypes.NewConstant(doc.Name, *doc.Value)

	case datatypes.KindEnumeration:
		d := datatypes.NewEnumeration(doc.Name)
		if err = l.applyFixedAttributes(index, doc, &d.FixedSizeDefinition); err == nil {
			for _, value := range doc.Values {
				if addErr := d.AddValue(value.Name, value.Number, value.Aliases, value.Description); addErr != nil {
					return nil, addErr
				}
			}
		}
		def = d

	case datatypes.KindFloatingPoint:
		d := datatypes.NewFloatingPoint(doc.Name)
		err = l.applyFixedAttributes(index, doc, &d.FixedSizeDefinition)
		def = d

	case datatypes.KindFormat:
		def = datatypes.NewFormat(doc.Name)

	case datatypes.KindInteger:
		d := datatypes.NewInteger(doc.Name)
		if doc.Attributes.Format != "" {
			format, formatOK := datatypes.ParseIntegerFormat(doc.Attributes.Format)
			if !formatOK {
				return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
					Path(docPath(index)).
					Name(doc.Name).
					Detail("unknown integer format %q", doc.Attributes.Format).
					Build()
			}
			d.Format = format
		}
		err = l.applyFixedAttributes(index, doc, &d.FixedSizeDefinition)
		def = d

	case datatypes.KindSequence:
		element, elemErr := l.resolveElement(index, doc)
		if elemErr != nil {
			return nil, elemErr
		}
		d := datatypes.NewSequence(doc.Name, element)
		d.ElementTypeName = doc.ElementDataType
		err = l.applyElementCounts(index, doc, &d.ElementSequenceDefinition)
		def = d

	case datatypes.KindStream:
		element, elemErr := l.resolveElement(index, doc)
		if elemErr != nil {
			return nil, elemErr
		}
		d := datatypes.NewStream(doc.Name, element)
		d.ElementTypeName = doc.ElementDataType
		err = l.applyElementCounts(index, doc, &d.ElementSequenceDefinition)
		def = d

	case datatypes.KindString:
		element, elemErr := l.resolveElement(index, doc)
		if elemErr != nil {
			return nil, elemErr
		}
		d := datatypes.NewString(doc.Name, element)
		d.ElementTypeName = doc.ElementDataType
		if doc.Encoding != "" {
			d.Encoding = doc.Encoding
		}
		d.Terminator = doc.ElementsTerminator
		err = l.applyElementCounts(index, doc, &d.ElementSequenceDefinition)
		def = d

	case datatypes.KindStructure:
		d := datatypes.NewStructure(doc.Name)
		for _, member := range doc.Members {
			built, memberErr := l.buildMember(index, doc.Name, member)
			if memberErr != nil {
				return nil, memberErr
			}
			d.AddMember(built)
		}
		def = d

	case datatypes.KindUUID:
		d := datatypes.NewUUID(doc.Name)
		err = l.applyFixedAttributes(index, doc, &d.FixedSizeDefinition)
		def = d
	}
	if err != nil {
		return nil, err
	}

	base := def.Base()
	base.Aliases = doc.Aliases
	base.Description = doc.Description
	base.URLs = doc.URLs
	if doc.Attributes.ByteOrder != "" {
		order, orderOK := datatypes.ParseByteOrder(doc.Attributes.ByteOrder)
		if !orderOK {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path(docPath(index)).
				Name(doc.Name).
				Detail("unknown byte order %q", doc.Attributes.ByteOrder).
				Build()
		}
		base.ByteOrder = order
	}

	return def, nil
}

func (l *Loader) applyFixedAttributes(index int, doc *definitionDoc, fixed *datatypes.FixedSizeDefinition) error {
	if doc.Attributes.Units != "" {
		units, ok := datatypes.ParseSizeUnits(doc.Attributes.Units)
		if !ok {
			return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path(docPath(index)).
				Name(doc.Name).
				Detail("unknown size units %q", doc.Attributes.Units).
				Build()
		}
		fixed.Units = units
	}

	if doc.Attributes.Size.IsZero() {
		return nil
	}
	// The size is a single integer or, for variable-width encodings, a
	// list of allowed sizes.
	var size int
	if err := doc.Attributes.Size.Decode(&size); err == nil {
		fixed.Size = size
		return nil
	}
	var sizes []int
	if err := doc.Attributes.Size.Decode(&sizes); err == nil {
		fixed.Sizes = sizes
		return nil
	}
	return errors.New(errors.PhaseLoad, errors.KindInvalidInput).
		Path(docPath(index)).
		Name(doc.Name).
		Detail("size is neither an integer nor a list of integers").
		Build()
}

func (l *Loader) applyElementCounts(index int, doc *definitionDoc, seq *datatypes.ElementSequenceDefinition) error {
	count, countExpr, err := intOrExpression(index, doc.Name, &doc.NumberOfElements)
	if err != nil {
		return err
	}
	seq.NumberOfElements = count
	seq.NumberOfElementsExpression = countExpr

	size, sizeExpr, err := intOrExpression(index, doc.Name, &doc.ElementsDataSize)
	if err != nil {
		return err
	}
	seq.ElementsDataSize = size
	seq.ElementsDataSizeExpression = sizeExpr
	return nil
}

// intOrExpression decodes a YAML node that holds either a literal integer
// or a run-time expression string.
func intOrExpression(index int, name string, node *yaml.Node) (int, string, error) {
	if node.IsZero() {
		return 0, "", nil
	}
	var literal int
	if err := node.Decode(&literal); err == nil {
		return literal, "", nil
	}
	var expression string
	if err := node.Decode(&expression); err == nil {
		return 0, expression, nil
	}
	return 0, "", errors.New(errors.PhaseLoad, errors.KindInvalidInput).
		Path(docPath(index)).
		Name(name).
		Detail("expected an integer or an expression string").
		Build()
}

func (l *Loader) resolveElement(index int, doc *definitionDoc) (datatypes.Definition, error) {
	if doc.ElementDataType == "" {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Path(docPath(index)).
			Name(doc.Name).
			Detail("missing element_data_type").
			Build()
	}
	element, ok := l.registry.Find(doc.ElementDataType)
	if !ok {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnknownType).
			Path(docPath(index)).
			Name(doc.Name).
			DataType(doc.ElementDataType).
			Detail("no definition registered under this name").
			Build()
	}
	return element, nil
}

func (l *Loader) buildMember(index int, structureName string, doc memberDoc) (*datatypes.StructureMemberDefinition, error) {
	if doc.Name == "" {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Path(docPath(index), structureName).
			Detail("member has no name").
			Build()
	}

	memberType, ok := l.registry.Find(doc.DataType)
	if !ok {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnknownType).
			Path(docPath(index), structureName, doc.Name).
			Name(doc.Name).
			DataType(doc.DataType).
			Detail("no definition registered under this name").
			Build()
	}

	member := datatypes.NewStructureMember(doc.Name, memberType)
	member.MemberTypeName = doc.DataType
	member.Description = doc.Description
	if doc.ByteOrder != "" {
		order, orderOK := datatypes.ParseByteOrder(doc.ByteOrder)
		if !orderOK {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
				Path(docPath(index), structureName, doc.Name).
				Name(doc.Name).
				Detail("unknown byte order %q", doc.ByteOrder).
				Build()
		}
		member.ByteOrder = order
	}
	return member, nil
}
