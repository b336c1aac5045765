package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// statusInfo holds the label, colour and progress weight of a Status.
var statusInfo = [...]struct {
	label  string
	style  lipgloss.Style
	weight float64
}{
	StatusQueued:  {"queued", fg("7"), 0},
	StatusWorking: {"diagnosing", fg("6"), 0.5},
	StatusDone:    {"done", fg("2"), 1},
	StatusError:   {"error", fg("1"), 1},
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	errorStyle   = fg("1")
	warningStyle = fg("3")
)

func fg(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

const (
	labelWidth  = 12
	countsWidth = 24
	minName     = 20
)

type fileRow struct {
	path     string
	status   Status
	errors   int
	warnings int
}

type progressModel struct {
	title    string
	events   <-chan Event
	spinner  spinner.Model
	bar      progress.Model
	rows     []fileRow
	byPath   map[string]int
	note     string
	width    int
	finished int
	done     bool
}

type (
	eventMsg Event
	doneMsg  struct{}
)

// NewProgressModel renders per-file progress of a diagnostics run over
// files. The program quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan Event) tea.Model {
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(fg("6"))),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i].path = f
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd { return tea.Batch(m.spinner.Tick, m.listenForEvent()) }

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case eventMsg:
		cmd = tea.Batch(m.applyEvent(Event(msg)), m.listenForEvent())
	case doneMsg:
		m.done = true
		cmd = tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			cmd = tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width, m.bar.Width = msg.Width, msg.Width-4
		}
	case spinner.TickMsg:
		if !m.done {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	case progress.FrameMsg:
		var bar tea.Model
		bar, cmd = m.bar.Update(msg)
		m.bar = bar.(progress.Model)
	}
	return m, cmd
}

// listenForEvent waits for the next event; a closed channel ends the run.
func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) applyEvent(ev Event) tea.Cmd {
	if ev.File == "" {
		if ev.Note != "" {
			m.note = ev.Note
		}
		return nil
	}
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	row := &m.rows[i]
	if row.status < StatusDone && ev.Status >= StatusDone {
		m.finished++
	}
	row.status, row.errors, row.warnings = ev.Status, ev.Errors, ev.Warnings
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.rows {
		sum += statusInfo[r.status].weight
	}
	return sum / float64(len(m.rows))
}

func (m *progressModel) header() string {
	h := fmt.Sprintf("%s (%d/%d)", m.title, m.finished, len(m.rows))
	if m.note != "" {
		h += ": " + m.note
	}
	if m.done {
		return headerStyle.Render("done: " + h)
	}
	return headerStyle.Render(m.spinner.View() + " " + h)
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.header() + "\n\n")

	nameWidth := max(m.width-labelWidth-countsWidth-4, minName)
	for _, r := range m.rows {
		info := statusInfo[r.status]
		fmt.Fprintf(&b, "  %s %s", info.style.Render(fmt.Sprintf("%*s", labelWidth, info.label)), truncate(r.path, nameWidth))
		if counts := formatCounts(r); counts != "" {
			b.WriteString("  " + counts)
		}
		b.WriteByte('\n')
	}

	bar := m.bar.View()
	if m.done {
		bar = m.bar.ViewAs(1)
	}
	b.WriteString("\n" + bar + "\n")
	return b.String()
}

func formatCounts(r fileRow) string {
	if r.status < StatusDone {
		return ""
	}
	var parts []string
	if r.errors > 0 {
		parts = append(parts, errorStyle.Render(plural(r.errors, "error")))
	}
	if r.warnings > 0 {
		parts = append(parts, warningStyle.Render(plural(r.warnings, "warning")))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n != 1 {
		word += "s"
	}
	return fmt.Sprintf("%d %s", n, word)
}

// truncate shortens value to width display columns, with an ellipsis when
// there is room for one. A width of 0 disables truncation.
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
