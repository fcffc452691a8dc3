package ui

import (
	"alarmclock/internal/models"
	"alarmclock/internal/providers"
	"alarmclock/internal/services"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusTTL = 3 * time.Second

type tickMsg time.Time

type statusMsg struct {
	message string
	color   string
}

func showStatus(msg string, color string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{message: msg, color: color}
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	service services.AlarmServiceInterface
	logger  providers.Logger

	tick     time.Duration
	now      time.Time
	table    table.Model
	alarms   models.AlarmList
	revision uint64
	ringing  models.AlarmList

	adding bool
	inputs []textinput.Model
	focus  int

	statusMsg    string
	statusColor  string
	statusExpiry time.Time
	width        int
	height       int
}

func newModel(service services.AlarmServiceInterface, logger providers.Logger, tick time.Duration) model {
	if tick <= 0 {
		tick = time.Second
	}
	m := model{
		service:     service,
		logger:      logger,
		tick:        tick,
		now:         time.Now(),
		statusColor: colorInfo,
	}
	m.setupTable()
	m.refresh()
	return m
}

func (m *model) setupTable() {
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Time", Width: 7},
			{Title: "Status", Width: 10},
			{Title: "Tone", Width: 16},
			{Title: "Snoozed until", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("86"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table.SetStyles(s)
}

func (m *model) adjustLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	tableHeight := m.height - 12
	if tableHeight < 5 {
		tableHeight = 5
	}
	m.table.SetHeight(tableHeight)
}

func (m *model) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.alarms))
	for i, alarm := range m.alarms {
		status := inactiveStyle.Render("off")
		if alarm.IsActive {
			status = activeStyle.Render("on")
		}
		snoozed := ""
		if alarm.SnoozedUntil != nil {
			snoozed = snoozedStyle.Render(alarm.SnoozedUntil.Local().Format(time.TimeOnly))
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			alarm.Time,
			status,
			alarm.Tone,
			snoozed,
		})
	}
	return rows
}

// refresh reloads the list when the service has changed since the last render.
func (m *model) refresh() {
	rev := m.service.Revision()
	if rev == m.revision && m.alarms != nil {
		return
	}
	m.revision = rev
	m.alarms = m.service.Alarms()
	m.table.SetRows(m.rows())
	if c := m.table.Cursor(); c >= len(m.alarms) && len(m.alarms) > 0 {
		m.table.SetCursor(len(m.alarms) - 1)
	}
}

func (m *model) setStatus(msg, color string) {
	m.statusMsg = msg
	m.statusColor = color
	m.statusExpiry = time.Now().Add(statusTTL)
}

// selected returns the index and alarm under the cursor.
func (m *model) selected() (int, models.Alarm, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.alarms) {
		return 0, models.Alarm{}, false
	}
	return c, m.alarms[c], true
}

// target is the alarm snooze and dismiss act on: the ringing one first,
// otherwise the selected row.
func (m *model) target() (models.Alarm, bool) {
	if len(m.ringing) > 0 {
		return m.ringing[0], true
	}
	_, alarm, ok := m.selected()
	return alarm, ok
}

func (m *model) silence(clock string) {
	kept := m.ringing[:0]
	for _, a := range m.ringing {
		if a.Time != clock {
			kept = append(kept, a)
		}
	}
	m.ringing = kept
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		m.onTick()
		return m, tickCmd(m.tick)

	case statusMsg:
		m.setStatus(msg.message, msg.color)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustLayout()
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.handleAddKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m *model) onTick() {
	fired := m.service.CheckAndTrigger(m.now)
	for _, alarm := range fired {
		m.logger.Infof(providers.TypeUI, "Alarm %s ringing", alarm.Time)
		if m.ringing.IndexOfTime(alarm.Time) == -1 {
			m.ringing = append(m.ringing, alarm)
		}
	}
	if len(fired) > 0 {
		m.setStatus(fmt.Sprintf("Alarm %s ringing", fired[0].Time), colorError)
	}
	m.refresh()
}

func (m model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k", "down", "j", "home", "end", "pgup", "pgdown":
		m.table, _ = m.table.Update(msg)
	case "a", "n":
		cmd := m.startAdding()
		return m, cmd
	case " ":
		idx, _, ok := m.selected()
		if !ok {
			return m, nil
		}
		list := m.service.ToggleAlarm(idx)
		m.refresh()
		if idx >= len(list) {
			return m, nil
		}
		state := "off"
		if list[idx].IsActive {
			state = "on"
		}
		m.setStatus(fmt.Sprintf("Alarm %s switched %s", list[idx].Time, state), colorInfo)
	case "d", "delete":
		idx, alarm, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.service.DeleteAlarm(idx)
		m.silence(alarm.Time)
		m.refresh()
		m.setStatus(fmt.Sprintf("Alarm %s deleted", alarm.Time), colorWarn)
	case "s":
		alarm, ok := m.target()
		if !ok {
			return m, nil
		}
		m.service.SnoozeAlarm(alarm)
		m.silence(alarm.Time)
		m.refresh()
		m.setStatus(fmt.Sprintf("Alarm %s snoozed for %d min", alarm.Time, m.service.SnoozeMinutes()), colorWarn)
	case "x":
		alarm, ok := m.target()
		if !ok {
			return m, nil
		}
		m.service.DismissAlarm(alarm)
		m.silence(alarm.Time)
		m.refresh()
		m.setStatus(fmt.Sprintf("Alarm %s dismissed", alarm.Time), colorOK)
	case "esc":
		if len(m.ringing) > 0 {
			m.ringing = nil
			m.setStatus("Silenced", colorInfo)
		}
	}
	return m, nil
}

func (m *model) startAdding() tea.Cmd {
	clock := textinput.New()
	clock.Placeholder = "HH:MM"
	clock.CharLimit = 5
	clock.Width = 8
	clock.SetValue(models.FormatClock(m.now))

	tone := textinput.New()
	tone.Placeholder = models.DefaultTone
	tone.CharLimit = 32
	tone.Width = 20

	m.adding = true
	m.focus = 0
	m.inputs = []textinput.Model{clock, tone}
	return m.inputs[0].Focus()
}

func (m *model) focusInput(i int) tea.Cmd {
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m.inputs[m.focus].Focus()
}

func (m model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.inputs = nil
		return m, showStatus("Add cancelled", colorError)
	case "tab", "down":
		cmd := m.focusInput(m.focus + 1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.focusInput(m.focus - 1)
		return m, cmd
	case "enter":
		clock, err := models.NormalizeClock(m.inputs[0].Value())
		if err != nil {
			m.setStatus(err.Error(), colorError)
			cmd := m.focusInput(0)
			return m, cmd
		}
		tone := strings.TrimSpace(m.inputs[1].Value())
		m.service.AddAlarm(clock, tone)
		m.adding = false
		m.inputs = nil
		m.refresh()
		m.table.SetCursor(len(m.alarms) - 1)
		return m, showStatus(fmt.Sprintf("Alarm %s saved", clock), colorOK)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		headerStyle.Render("Alarm Clock"),
		"  ",
		clockStyle.Render(m.now.Format(time.TimeOnly)),
		"  ",
		dateStyle.Render(m.now.Format("Monday, 02 January 2006")),
	)

	sections := []string{header, ""}
	if len(m.ringing) > 0 {
		names := make([]string, len(m.ringing))
		for i, a := range m.ringing {
			names[i] = a.Time + " (" + a.Tone + ")"
		}
		sections = append(sections, ringingStyle.Render("RINGING  "+strings.Join(names, ", ")), "")
	}

	if m.adding {
		sections = append(sections, m.addView())
	} else if len(m.alarms) == 0 {
		sections = append(sections, inactiveStyle.Render("No alarms yet. Press a to add one."))
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, "", m.commandRow())
	return lipgloss.JoinVertical(lipgloss.Top, sections...)
}

func (m model) addView() string {
	labels := []string{"Time", "Tone"}
	fields := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		fields[i] = labelStyle.Render(fmt.Sprintf("%-5s", labels[i])) + " " + input.View()
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("New alarm"),
		"",
		strings.Join(fields, "\n"),
	)
	return modalStyle.Render(body)
}

func (m model) commandRow() string {
	var commands []string
	if m.adding {
		commands = append(commands, keyStyle.Render("tab")+": "+actionStyle.Render("next field"))
		commands = append(commands, keyStyle.Render("enter")+": "+actionStyle.Render("save"))
		commands = append(commands, keyStyle.Render("esc")+": "+actionStyle.Render("cancel"))
	} else {
		commands = append(commands, keyStyle.Render("↑↓")+": "+actionStyle.Render("navigate"))
		commands = append(commands, keyStyle.Render("a")+": "+actionStyle.Render("add"))
		commands = append(commands, keyStyle.Render("space")+": "+actionStyle.Render("toggle"))
		commands = append(commands, keyStyle.Render("d")+": "+actionStyle.Render("delete"))
		commands = append(commands, keyStyle.Render("s")+": "+actionStyle.Render("snooze"))
		commands = append(commands, keyStyle.Render("x")+": "+actionStyle.Render("dismiss"))
		commands = append(commands, keyStyle.Render("q")+": "+actionStyle.Render("quit"))
	}
	row := strings.Join(commands, bulletStyle.Render(" • "))

	if m.statusMsg != "" && time.Now().Before(m.statusExpiry) {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.statusColor))
		row += "\n> " + statusStyle.Render(m.statusMsg)
	}
	return row
}
