package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/dochazka/internal/cli/formatter"
	"github.com/alexanderramin/dochazka/internal/domain"
	"github.com/alexanderramin/dochazka/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// trackerChangedMsg reports that the tracker's state moved (a tick or a
// command) and the view should be redrawn.
type trackerChangedMsg struct{}

// openShiftIndex marks a time edit aimed at the open shift rather than a
// saved entry.
const openShiftIndex = -1

// trackerModel is the interactive host of a service.Tracker. Open shift
// state is always read from the tracker at render time; only the saved
// list is cached, and reloaded after each command.
type trackerModel struct {
	tracker *service.Tracker
	changes <-chan struct{}

	keys  trackerKeyMap
	help  help.Model
	name  textinput.Model
	width int

	shifts   []domain.Shift
	selected int
	err      error

	// Set while the time form is open.
	form      *huh.Form
	timeValue *string
	timeIndex int

	quitting bool
}

func newTrackerModel(tracker *service.Tracker, changes <-chan struct{}) *trackerModel {
	ti := textinput.New()
	ti.Placeholder = "Zadejte jméno"
	ti.Prompt = ""
	ti.CharLimit = 64

	m := &trackerModel{
		tracker: tracker,
		changes: changes,
		keys:    newTrackerKeyMap(),
		help:    help.New(),
		name:    ti,
	}
	m.reload()
	m.syncInput()
	m.syncKeys()
	return m
}

func (m *trackerModel) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// waitForChange blocks until the tracker signals a change.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		<-changes
		return trackerChangedMsg{}
	}
}

func (m *trackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case trackerChangedMsg:
		cmd = waitForChange(m.changes)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.syncKeys()
	return m, cmd
}

func (m *trackerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.syncKeys()
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.ForceQuit, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Start):
		m.err = nil
		m.tracker.StartShift()
		m.syncInput()

	case key.Matches(msg, m.keys.Stop):
		m.tracker.StopShift()

	case key.Matches(msg, m.keys.Save):
		m.err = m.tracker.SaveShift(ctx)
		m.reload()
		m.syncInput()

	case key.Matches(msg, m.keys.SetTime):
		open, _ := m.tracker.OpenShift()
		return m.openTimeForm(openShiftIndex, open)

	case key.Matches(msg, m.keys.Edit):
		m.err = nil
		m.tracker.EditShift(m.shifts[m.selected])
		m.syncInput()

	case key.Matches(msg, m.keys.AdjustTime):
		return m.openTimeForm(m.selected, m.shifts[m.selected])

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.shifts)-1 {
			m.selected++
		}

	default:
		return m.updateName(msg)
	}
	return nil
}

// updateName feeds keys to the name input and mirrors edits into the
// open shift.
func (m *trackerModel) updateName(msg tea.Msg) tea.Cmd {
	if _, open := m.tracker.OpenShift(); !open {
		return nil
	}
	before := m.name.Value()
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	if v := m.name.Value(); v != before {
		m.tracker.RenameOpenShift(v)
	}
	return cmd
}

func (m *trackerModel) openTimeForm(index int, target domain.Shift) tea.Cmd {
	value := strconv.Itoa(target.Seconds)
	m.timeValue = &value
	m.timeIndex = index

	title := "Čas ve směně (sekundy)"
	if target.Name != "" {
		title = fmt.Sprintf("Čas směny %s (sekundy)", target.Name)
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Lze jen zvýšit; menší hodnota se ignoruje.").
				Value(m.timeValue),
		),
	).WithTheme(dochazkaHuhTheme()).WithShowHelp(false)
	return m.form.Init()
}

func (m *trackerModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}
	// Ticks keep arriving while the form is open.
	if _, ok := msg.(trackerChangedMsg); ok {
		return m, waitForChange(m.changes)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyTimeEdit(*m.timeValue)
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// applyTimeEdit coerces the form input and applies it to its target.
func (m *trackerModel) applyTimeEdit(input string) {
	seconds := domain.ParseSeconds(input)
	if m.timeIndex == openShiftIndex {
		m.tracker.SetOpenShiftTime(seconds)
	} else {
		m.err = m.tracker.AdjustShiftTime(context.Background(), m.timeIndex, seconds)
	}
	m.reload()
	m.syncInput()
}

func (m *trackerModel) closeForm() {
	m.form = nil
	m.timeValue = nil
	m.syncKeys()
}

// reload refreshes the cached saved list and keeps the selection in range.
func (m *trackerModel) reload() {
	shifts, err := m.tracker.Shifts(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.shifts = shifts
	if m.selected >= len(m.shifts) {
		m.selected = max(len(m.shifts)-1, 0)
	}
}

// syncInput points the name input at the open shift, or blurs it.
func (m *trackerModel) syncInput() {
	open, ok := m.tracker.OpenShift()
	if !ok {
		m.name.Blur()
		m.name.SetValue("")
		return
	}
	m.name.SetValue(open.Name)
	m.name.CursorEnd()
	m.name.Focus()
}

// syncKeys enables exactly the actions the current state permits.
func (m *trackerModel) syncKeys() {
	_, open := m.tracker.OpenShift()
	hasShifts := len(m.shifts) > 0

	m.keys.Start.SetEnabled(m.tracker.CanStart())
	m.keys.Stop.SetEnabled(m.tracker.CanStop())
	m.keys.Save.SetEnabled(m.tracker.CanSave())
	m.keys.SetTime.SetEnabled(open)
	m.keys.Edit.SetEnabled(!open && hasShifts)
	m.keys.AdjustTime.SetEnabled(!open && hasShifts)
	// j/k would otherwise be swallowed while typing a name.
	m.keys.Up.SetEnabled(!open && hasShifts)
	m.keys.Down.SetEnabled(!open && hasShifts)
	m.keys.Quit.SetEnabled(!open)
}

func (m *trackerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Docházkový systém"))
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.form.View())
		b.WriteString("\n")
		b.WriteString(formatter.Dim("enter potvrdit • esc zrušit"))
		return b.String()
	}

	if open, ok := m.tracker.OpenShift(); ok {
		fmt.Fprintf(&b, "%s %s\n", formatter.Bold("Jméno:"), m.name.View())
		fmt.Fprintf(&b, "%s %s  %s\n",
			formatter.Bold("Čas ve směně:"),
			formatter.FormatSeconds(open.Seconds),
			formatter.TimerIndicator(m.tracker.IsRunning()))
	} else {
		b.WriteString(formatter.Dim("Žádná otevřená směna."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(formatter.Header("Seznam směn"))
	b.WriteString("\n")
	if len(m.shifts) == 0 {
		b.WriteString(formatter.Dim("Zatím žádné směny."))
		b.WriteString("\n")
	}
	_, open := m.tracker.OpenShift()
	for i, s := range m.shifts {
		cursor := "  "
		if i == m.selected && !open {
			cursor = formatter.StyleHeader.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %s, %s %s\n",
			cursor,
			formatter.Bold("Jméno:"), s.Name,
			formatter.Bold("Čas:"), formatter.FormatShiftDuration(s.Seconds))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(formatter.ErrorLine(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
