// Package board is the interactive terminal front end: record outcomes with
// single keys and watch the statistics and prediction update.
package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runger/taixiu/internal/history"
	"github.com/runger/taixiu/internal/markov"
	"github.com/runger/taixiu/internal/outcome"
)

// defaultShowLimit is how many outcomes the history row shows.
const defaultShowLimit = 50

// Options configures the board.
type Options struct {
	ExportName string // Passed to Store.Export; empty uses the store default
	ShowLimit  int    // Outcomes shown in the history row
}

// Model is the Bubble Tea model for the board.
type Model struct {
	store      *history.Store
	keys       keyMap
	help       help.Model
	exportName string
	showLimit  int

	// info is the status line for the last action.
	info    string
	infoErr bool

	// seenDegraded is how many storage degradations have been reported.
	seenDegraded int

	width int
}

// New creates a board over store.
func New(store *history.Store, opts Options) Model {
	limit := opts.ShowLimit
	if limit < 1 {
		limit = defaultShowLimit
	}
	m := Model{
		store:      store,
		keys:       defaultKeyMap(),
		help:       help.New(),
		exportName: opts.ExportName,
		showLimit:  limit,
		info:       "History is saved on this device.",
	}
	// Report a failed load once, on the first frame.
	if deg := store.Degraded(); len(deg) > 0 {
		m.info = "Warning: " + deg[len(deg)-1].Error()
		m.infoErr = true
		m.seenDegraded = len(deg)
	}
	return m
}

// Info returns the current status line.
func (m Model) Info() string {
	return m.info
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tai):
		m.add(outcome.Tai)

	case key.Matches(msg, m.keys.Xiu):
		m.add(outcome.Xiu)

	case key.Matches(msg, m.keys.Clear):
		m.store.Clear()
		m.setInfo("History cleared.", false)
		m.checkDegraded()

	case key.Matches(msg, m.keys.Export):
		path, err := m.store.Export(m.exportName)
		if err != nil {
			m.setInfo("Export error: "+err.Error(), true)
		} else {
			m.setInfo("Exported: "+path, false)
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) add(o outcome.Outcome) {
	if err := m.store.AppendOutcome(o); err != nil {
		m.setInfo("Error: "+err.Error(), true)
		return
	}
	m.setInfo("Added: "+o.String(), false)
	m.checkDegraded()
}

// checkDegraded appends a warning when the last action could not be persisted.
func (m *Model) checkDegraded() {
	deg := m.store.Degraded()
	if len(deg) <= m.seenDegraded {
		return
	}
	m.seenDegraded = len(deg)
	m.setInfo(m.info+" (not saved: "+deg[len(deg)-1].Err.Error()+")", true)
}

func (m *Model) setInfo(s string, isErr bool) {
	m.info = s
	m.infoErr = isErr
}

// --- View rendering ---

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	taiStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	xiuStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tai Xiu tracker"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("History (newest first)"))
	b.WriteRune('\n')
	b.WriteString(m.viewHistory())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Statistics"))
	b.WriteRune('\n')
	b.WriteString(m.viewStats())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Prediction (Markov)"))
	b.WriteRune('\n')
	b.WriteString(m.viewPrediction())
	b.WriteString("\n\n")

	if m.infoErr {
		b.WriteString(errorStyle.Render(m.info))
	} else {
		b.WriteString(infoStyle.Render(m.info))
	}
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewHistory renders up to showLimit outcomes on one line, cut to the
// terminal width.
func (m Model) viewHistory() string {
	seq := m.store.Outcomes()
	if len(seq) == 0 {
		return dimStyle.Render("(empty)")
	}
	if len(seq) > m.showLimit {
		seq = seq[:m.showLimit]
	}

	var cells []string
	used := 0
	for i, o := range seq {
		cell := o.String()
		w := runewidth.StringWidth(cell)
		if i > 0 {
			w++ // separator
		}
		// Leave room for the ellipsis.
		if m.width > 0 && used+w > m.width-2 {
			cells = append(cells, dimStyle.Render("…"))
			break
		}
		used += w
		if o == outcome.Tai {
			cells = append(cells, taiStyle.Render(cell))
		} else {
			cells = append(cells, xiuStyle.Render(cell))
		}
	}
	return strings.Join(cells, " ")
}

func (m Model) viewStats() string {
	st := m.store.Stats()
	if st.Total == 0 {
		return dimStyle.Render("(no data)")
	}
	return strings.Join([]string{
		fmt.Sprintf("Total: %d", st.Total),
		fmt.Sprintf("TAI: %d (%.1f%%)", st.CountTai, st.PctTai),
		fmt.Sprintf("XIU: %d (%.1f%%)", st.CountXiu, st.PctXiu),
		fmt.Sprintf("Longest TAI run: %d", st.LongestTai),
		fmt.Sprintf("Longest XIU run: %d", st.LongestXiu),
	}, "\n")
}

func (m Model) viewPrediction() string {
	p, ok := m.store.Predict()
	if !ok {
		return dimStyle.Render(markov.InsufficientDataMessage)
	}
	line := p.String()
	if p.Fallback {
		line += dimStyle.Render("  (base rate)")
	}
	return line
}
