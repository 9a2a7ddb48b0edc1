// Package ui contains the interactive schema browser behind "tether browse".
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tether/internal/schema"
)

type row struct {
	depth  int
	kind   schema.ItemKind
	path   string
	label  string
	symbol string
	docs   schema.Docs
}

type browseModel struct {
	rows     []row
	cursor   int
	width    int
	height   int
	docView  viewport.Model
	ready    bool
	quitting bool
}

var (
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	rowModStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	rowFnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	rowEnumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	symStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	docPaneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// NewBrowseModel returns a Bubble Tea model browsing the schema tree.
func NewBrowseModel(root *schema.Module) tea.Model {
	m := &browseModel{width: 80, height: 24}
	m.flattenModule(root.Name, root, 0)
	return m
}

func (m *browseModel) flattenModule(path string, mod *schema.Module, depth int) {
	m.rows = append(m.rows, row{
		depth: depth, kind: schema.ItemModule, path: path,
		label: mod.Name, docs: mod.Docs,
	})
	for _, it := range mod.Items {
		childPath := path + "." + it.Name()
		switch it.Kind {
		case schema.ItemModule:
			m.flattenModule(childPath, it.Mod, depth+1)
		case schema.ItemFunction:
			m.rows = append(m.rows, row{
				depth: depth + 1, kind: schema.ItemFunction, path: childPath,
				label: it.Fn.Name, symbol: it.Fn.Symbol, docs: it.Fn.Docs,
			})
		case schema.ItemEnum:
			m.rows = append(m.rows, row{
				depth: depth + 1, kind: schema.ItemEnum, path: childPath,
				label: "enum " + it.Enum.Name, docs: it.Enum.Docs,
			})
		}
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.syncDoc()
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				m.syncDoc()
			}
		case "g":
			m.cursor = 0
			m.syncDoc()
		case "G":
			m.cursor = len(m.rows) - 1
			m.syncDoc()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		docHeight := m.docHeight()
		if !m.ready {
			m.docView = viewport.New(msg.Width, docHeight)
			m.ready = true
		} else {
			m.docView.Width = msg.Width
			m.docView.Height = docHeight
		}
		m.syncDoc()
	}
	var cmd tea.Cmd
	if m.ready {
		m.docView, cmd = m.docView.Update(msg)
	}
	return m, cmd
}

func (m *browseModel) docHeight() int {
	h := m.height / 3
	if h < 4 {
		h = 4
	}
	return h
}

func (m *browseModel) syncDoc() {
	if !m.ready || len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]
	var b strings.Builder
	b.WriteString(r.path)
	if r.symbol != "" {
		b.WriteString("  (" + r.symbol + ")")
	}
	b.WriteString("\n\n")
	for _, line := range r.docs {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	m.docView.SetContent(docPaneStyle.Render(b.String()))
	m.docView.GotoTop()
}

func (m *browseModel) View() string {
	if m.quitting || len(m.rows) == 0 {
		return ""
	}
	listHeight := m.height - m.docHeight() - 2
	if listHeight < 3 {
		listHeight = 3
	}

	// Keep the cursor visible inside the list window.
	top := 0
	if m.cursor >= listHeight {
		top = m.cursor - listHeight + 1
	}

	var b strings.Builder
	for i := top; i < len(m.rows) && i < top+listHeight; i++ {
		r := m.rows[i]
		line := strings.Repeat("  ", r.depth) + r.label
		if r.symbol != "" {
			line += "  " + symStyle.Render(r.symbol)
		}
		line = truncate(line, m.width-2)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + styleFor(r.kind).Render(line))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	if m.ready {
		b.WriteString(m.docView.View())
	}
	b.WriteString(helpLineStyle.Render(fmt.Sprintf("\n%d items - j/k move, q quit", len(m.rows))))
	return b.String()
}

func styleFor(kind schema.ItemKind) lipgloss.Style {
	switch kind {
	case schema.ItemModule:
		return rowModStyle
	case schema.ItemEnum:
		return rowEnumStyle
	default:
		return rowFnStyle
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
