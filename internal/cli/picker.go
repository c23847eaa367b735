package cli

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/materials"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PropertyListModel - Interactive axis property selection
// =============================================================================

// PropertyListModel is the bubbletea model for picking one axis property
// from the properties present in a dataset.
type PropertyListModel struct {
	Title      string
	Properties []string
	Cursor     int
	Selected   string
	Height     int
	Offset     int
}

// NewPropertyListModel creates a property list model titled for one axis.
func NewPropertyListModel(title string, props []string) PropertyListModel {
	return PropertyListModel{
		Title:      title,
		Properties: props,
		Height:     15,
	}
}

func (m PropertyListModel) Init() tea.Cmd {
	return nil
}

func (m PropertyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Properties)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Properties[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PropertyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Properties) {
		end = len(m.Properties)
	}

	for i := m.Offset; i < end; i++ {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(m.Properties[i]))
		b.WriteString("\n")
	}
	return b.String()
}

// datasetProperties returns the sorted distinct property names present in
// the dataset.
func datasetProperties(ds *materials.Dataset) []string {
	seen := make(map[materials.Property]struct{})
	for _, rec := range ds.Records {
		for p := range rec.Props {
			seen[p] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, string(p))
	}
	sort.Strings(out)
	return out
}

// pickProperties fills in whichever axis properties are missing by running
// the interactive picker. Pre-set values pass through untouched.
func pickProperties(ds *materials.Dataset, x, y string) (string, string, error) {
	props := datasetProperties(ds)
	if len(props) < 2 {
		return "", "", errors.New(errors.ErrCodeInvalidData,
			"dataset has %d properties; plotting needs at least 2", len(props))
	}

	if x == "" {
		picked, err := runPicker("Select x axis property", props)
		if err != nil {
			return "", "", err
		}
		x = picked
	}
	if y == "" {
		picked, err := runPicker("Select y axis property", props)
		if err != nil {
			return "", "", err
		}
		y = picked
	}
	return x, y, nil
}

func runPicker(title string, props []string) (string, error) {
	final, err := tea.NewProgram(NewPropertyListModel(title, props)).Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "property picker")
	}
	m, ok := final.(PropertyListModel)
	if !ok || m.Selected == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "no property selected")
	}
	return m.Selected, nil
}
