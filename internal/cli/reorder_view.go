package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidmontoya/vesper/internal/cli/formatter"
	"github.com/davidmontoya/vesper/internal/domain"
)

// itemsReloadedMsg signals that the plan's items were reloaded after a move.
type itemsReloadedMsg struct {
	items []domain.PlanItem
	err   error
}

// reorderModel is a minimal list the user moves stops around in. Plain
// up/down moves the cursor; shift moves the stop under it, each move
// persisted immediately through the plan service.
type reorderModel struct {
	app    *App
	planID string
	items  []domain.PlanItem
	cursor int
	moved  bool
	err    error
}

func newReorderModel(app *App, planID string, items []domain.PlanItem) *reorderModel {
	return &reorderModel{app: app, planID: planID, items: items}
}

func (m *reorderModel) keys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "cursor up")),
		key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "cursor down")),
		key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move stop up")),
		key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move stop down")),
		key.NewBinding(key.WithKeys("q", "esc", "enter"), key.WithHelp("q", "done")),
	}
}

func (m *reorderModel) Init() tea.Cmd { return nil }

func (m *reorderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsReloadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.items = msg.items
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "K", "shift+up":
			if m.cursor > 0 {
				return m.move(m.cursor, m.cursor-1)
			}
		case "J", "shift+down":
			if m.cursor < len(m.items)-1 {
				return m.move(m.cursor, m.cursor+1)
			}
		case "q", "esc", "enter", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// move persists one single-step move and reloads the list.
func (m *reorderModel) move(from, to int) (tea.Model, tea.Cmd) {
	app, planID := m.app, m.planID
	m.cursor = to
	m.moved = true
	return m, func() tea.Msg {
		items, err := app.Plans.ReorderItems(context.Background(), planID, from, to)
		return itemsReloadedMsg{items: items, err: err}
	}
}

func (m *reorderModel) View() string {
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if len(m.items) == 0 {
		return "\n  " + formatter.Dim("This plan has no stops to reorder.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor, item.Position+1, item.Name))
	}
	b.WriteString("\n  " + formatter.Dim(m.helpLine()) + "\n")
	return b.String()
}

// helpLine renders the key bindings as a single dim footer line.
func (m *reorderModel) helpLine() string {
	parts := make([]string, 0, 8)
	for _, kb := range m.keys() {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// runReorderView opens the interactive reorder picker for a plan.
func runReorderView(app *App, planID string) error {
	items, err := app.Plans.Items(context.Background(), planID)
	if err != nil {
		return err
	}
	if len(items) < 2 {
		return fmt.Errorf("plan needs at least two stops to reorder")
	}

	model := newReorderModel(app, planID, items)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return err
	}
	return model.err
}
