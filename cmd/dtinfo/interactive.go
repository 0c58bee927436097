package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/datatypes"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	undeterminedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseState int

const (
	stateBrowse browseState = iota
	stateDetail
)

type browserModel struct {
	filename string
	defs     []datatypes.Definition
	visible  []datatypes.Definition
	filter   textinput.Model
	selected int
	state    browseState
}

func newBrowserModel(filename string, defs []datatypes.Definition) *browserModel {
	filter := textinput.New()
	filter.Placeholder = "filter by name"
	filter.Prompt = "/ "
	filter.Width = 40
	filter.Focus()

	return &browserModel{
		filename: filename,
		defs:     defs,
		visible:  defs,
		filter:   filter,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
				return m, nil
			}
			return m, tea.Quit

		case "up":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			if m.state == stateBrowse && len(m.visible) > 0 {
				m.state = stateDetail
			} else {
				m.state = stateBrowse
			}
			return m, nil
		}
	}

	if m.state == stateBrowse {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

func (m *browserModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	if needle == "" {
		m.visible = m.defs
	} else {
		var visible []datatypes.Definition
		for _, def := range m.defs {
			if strings.Contains(strings.ToLower(def.Base().Name), needle) {
				visible = append(visible, def)
			}
		}
		m.visible = visible
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Data Type Definitions"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")

		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no matching definitions"))
			b.WriteString("\n")
		}
		for i, def := range m.visible {
			line := formatListLine(def)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter details • esc quit"))

	case stateDetail:
		def := m.visible[m.selected]
		b.WriteString(renderDetail(def))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc back"))
	}

	return b.String()
}

func formatListLine(def datatypes.Definition) string {
	return fmt.Sprintf("%s %s %s",
		nameStyle.Render(fmt.Sprintf("%-24s", def.Base().Name)),
		kindStyle.Render(fmt.Sprintf("%-14s", def.Kind().String())),
		renderByteSize(def))
}

func renderByteSize(def datatypes.Definition) string {
	if size, ok := def.ByteSize(); ok {
		return sizeStyle.Render(fmt.Sprintf("%d bytes", size))
	}
	return undeterminedStyle.Render("undetermined")
}

func renderDetail(def datatypes.Definition) string {
	var b strings.Builder
	base := def.Base()

	b.WriteString(nameStyle.Render(base.Name))
	b.WriteString(" ")
	b.WriteString(kindStyle.Render(def.Kind().String()))
	b.WriteString("\n\n")

	if base.Description != "" {
		b.WriteString(base.Description)
		b.WriteString("\n\n")
	}

	writeField := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", label, value))
	}

	if len(base.Aliases) > 0 {
		writeField("aliases", strings.Join(base.Aliases, ", "))
	}
	writeField("byte order", base.ByteOrder.String())
	writeField("byte size", renderByteSize(def))
	writeField("composite", fmt.Sprintf("%v", def.IsComposite()))
	if attrs := def.AttributeNames(); len(attrs) > 0 {
		writeField("attributes", strings.Join(attrs, ", "))
	}
	for _, url := range base.URLs {
		writeField("url", url)
	}

	switch d := def.(type) {
	case *datatypes.IntegerDefinition:
		writeField("format", d.Format.String())

	case *datatypes.BooleanDefinition:
		writeField("false value", renderSentinel(d.FalseValue))
		writeField("true value", renderSentinel(d.TrueValue))

	case *datatypes.StringDefinition:
		writeField("encoding", d.Encoding)
		if d.Terminator != nil {
			writeField("terminator", fmt.Sprintf("%d", *d.Terminator))
		}
		b.WriteString(renderElementInfo(&d.ElementSequenceDefinition))

	case *datatypes.SequenceDefinition:
		b.WriteString(renderElementInfo(&d.ElementSequenceDefinition))

	case *datatypes.StreamDefinition:
		b.WriteString(renderElementInfo(&d.ElementSequenceDefinition))

	case *datatypes.EnumerationDefinition:
		b.WriteString("\n  values:\n")
		for _, value := range d.Values() {
			b.WriteString(fmt.Sprintf("    %-20s %d\n", value.Name, value.Value))
		}

	case *datatypes.StructureDefinition:
		b.WriteString("\n  members:\n")
		for _, member := range d.Members() {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				nameStyle.Render(fmt.Sprintf("%-20s", member.Name)),
				kindStyle.Render(fmt.Sprintf("%-14s", member.Kind().String())),
				renderByteSize(member)))
		}

	case *datatypes.ConstantDefinition:
		writeField("value", fmt.Sprintf("%d", d.Value))
	}

	return b.String()
}

func renderSentinel(value *int64) string {
	if value == nil {
		return "any other value"
	}
	return fmt.Sprintf("%d", *value)
}

func renderElementInfo(seq *datatypes.ElementSequenceDefinition) string {
	var b strings.Builder
	b.WriteString("\n  element:\n")
	if seq.ElementType != nil {
		b.WriteString(fmt.Sprintf("    %s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-20s", seq.ElementType.Base().Name)),
			kindStyle.Render(fmt.Sprintf("%-14s", seq.ElementType.Kind().String())),
			renderByteSize(seq.ElementType)))
	}
	if seq.NumberOfElements > 0 {
		b.WriteString(fmt.Sprintf("    count: %d\n", seq.NumberOfElements))
	}
	if seq.NumberOfElementsExpression != "" {
		b.WriteString(fmt.Sprintf("    count expression: %s\n", seq.NumberOfElementsExpression))
	}
	if seq.ElementsDataSize > 0 {
		b.WriteString(fmt.Sprintf("    data size: %d\n", seq.ElementsDataSize))
	}
	if seq.ElementsDataSizeExpression != "" {
		b.WriteString(fmt.Sprintf("    data size expression: %s\n", seq.ElementsDataSizeExpression))
	}
	return b.String()
}

func runInteractive(filename string, defs []datatypes.Definition) error {
	p := tea.NewProgram(newBrowserModel(filename, defs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
