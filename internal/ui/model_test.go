package ui

import (
	"alarmclock/internal/models"
	"alarmclock/internal/services"
	"alarmclock/internal/structures"
	"alarmclock/internal/testutil"
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	model   model
	service services.AlarmServiceInterface
	store   *testutil.MockAlarmStore
	trigger *testutil.MockTrigger
}

func newFixture(t *testing.T, stored models.AlarmList) *fixture {
	t.Helper()
	conf := &structures.Config{Clock: structures.ClockConfig{SnoozeMinutes: 5, DefaultTone: "Default"}}
	store := &testutil.MockAlarmStore{Stored: stored}
	trigger := &testutil.MockTrigger{}
	logger := &testutil.MockLogger{}
	svc := services.NewAlarmService(conf, store, trigger, logger)
	svc.Restore()
	return &fixture{
		model:   newModel(svc, logger, time.Second),
		service: svc,
		store:   store,
		trigger: trigger,
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (f *fixture) send(t *testing.T, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = f.model.Update(msg)
		f.model = next.(model)
	}
	return cmd
}

func (f *fixture) typeText(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (f *fixture) clearInput(t *testing.T) {
	t.Helper()
	for range f.model.inputs[f.model.focus].Value() {
		f.send(t, key("backspace"))
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, time.Local)
}

func TestNewModel_LoadsAlarms(t *testing.T) {
	f := newFixture(t, models.AlarmList{{Time: "07:00", IsActive: true, Tone: "Default"}})

	assert.Len(t, f.model.alarms, 1)
	assert.Len(t, f.model.table.Rows(), 1)
	assert.NotNil(t, f.model.Init())
	assert.Contains(t, f.model.View(), "07:00")
}

func TestModel_EmptyView(t *testing.T) {
	f := newFixture(t, nil)

	assert.Contains(t, f.model.View(), "No alarms yet")
}

func TestModel_AddAlarm(t *testing.T) {
	f := newFixture(t, nil)

	cmd := f.send(t, key("a"))
	require.True(t, f.model.adding)
	assert.NotNil(t, cmd)
	assert.Contains(t, f.model.View(), "New alarm")

	f.clearInput(t)
	f.typeText(t, "6:45")
	f.send(t, key("tab"))
	f.typeText(t, "Chimes")
	cmd = f.send(t, key("enter"))

	assert.False(t, f.model.adding)
	require.NotNil(t, cmd)
	status, ok := cmd().(statusMsg)
	require.True(t, ok)
	assert.Equal(t, "Alarm 06:45 saved", status.message)

	list := f.service.Alarms()
	require.Len(t, list, 1)
	assert.Equal(t, "06:45", list[0].Time)
	assert.Equal(t, "Chimes", list[0].Tone)
	assert.True(t, list[0].IsActive)
	assert.Len(t, f.model.table.Rows(), 1)
}

func TestModel_AddAlarmInvalidTimeKeepsModal(t *testing.T) {
	f := newFixture(t, nil)

	f.send(t, key("a"))
	f.clearInput(t)
	f.typeText(t, "99:99")
	f.send(t, key("enter"))

	assert.True(t, f.model.adding)
	assert.Contains(t, f.model.statusMsg, "invalid alarm time")
	assert.Empty(t, f.service.Alarms())
}

func TestModel_AddAlarmCancel(t *testing.T) {
	f := newFixture(t, nil)

	f.send(t, key("a"))
	cmd := f.send(t, key("esc"))

	assert.False(t, f.model.adding)
	require.NotNil(t, cmd)
	f.send(t, cmd())
	assert.Equal(t, "Add cancelled", f.model.statusMsg)
	assert.Empty(t, f.service.Alarms())
}

func TestModel_ToggleAndDeleteSelected(t *testing.T) {
	f := newFixture(t, models.AlarmList{
		{Time: "07:00", IsActive: true},
		{Time: "08:00", IsActive: true},
	})

	f.send(t, key("down"), key("space"))
	list := f.service.Alarms()
	assert.True(t, list[0].IsActive)
	assert.False(t, list[1].IsActive)
	assert.Equal(t, "Alarm 08:00 switched off", f.model.statusMsg)

	f.send(t, key("d"))
	list = f.service.Alarms()
	require.Len(t, list, 1)
	assert.Equal(t, "07:00", list[0].Time)
	assert.Equal(t, 0, f.model.table.Cursor())
}

func TestModel_KeysOnEmptyListAreNoops(t *testing.T) {
	f := newFixture(t, nil)

	f.send(t, key("space"), key("d"), key("s"), key("x"))

	_, calls := f.store.Saved()
	assert.Zero(t, calls)
}

func TestModel_TickFiresAndRings(t *testing.T) {
	f := newFixture(t, models.AlarmList{{Time: "07:00", IsActive: true, Tone: "Default"}})

	cmd := f.send(t, tickMsg(at(7, 0)))

	assert.NotNil(t, cmd)
	assert.Equal(t, 1, f.trigger.Count())
	require.Len(t, f.model.ringing, 1)
	assert.Contains(t, f.model.View(), "RINGING")
	assert.False(t, f.service.Alarms()[0].IsActive)

	// fired alarm is inactive so the next tick in the same minute does nothing
	f.send(t, tickMsg(at(7, 0).Add(time.Second)))
	assert.Equal(t, 1, f.trigger.Count())
	assert.Len(t, f.model.ringing, 1)
}

func TestModel_SnoozeRingingAlarm(t *testing.T) {
	f := newFixture(t, models.AlarmList{
		{Time: "06:00", IsActive: true},
		{Time: "07:00", IsActive: true},
	})

	f.send(t, tickMsg(at(7, 0)))
	f.send(t, key("s"))

	assert.Empty(t, f.model.ringing)
	list := f.service.Alarms()
	require.Len(t, list, 2)
	assert.Equal(t, "06:00", list[0].Time)
	assert.True(t, list[1].IsActive)
	assert.NotNil(t, list[1].SnoozedUntil)
	assert.Contains(t, f.model.statusMsg, "snoozed for 5 min")
}

func TestModel_DismissSelected(t *testing.T) {
	f := newFixture(t, models.AlarmList{
		{Time: "07:00", IsActive: true},
		{Time: "07:00", IsActive: false},
		{Time: "08:00", IsActive: true},
	})

	f.send(t, key("x"))

	list := f.service.Alarms()
	require.Len(t, list, 1)
	assert.Equal(t, "08:00", list[0].Time)
	assert.Equal(t, "Alarm 07:00 dismissed", f.model.statusMsg)
}

func TestModel_EscSilences(t *testing.T) {
	f := newFixture(t, models.AlarmList{{Time: "07:00", IsActive: true}})

	f.send(t, tickMsg(at(7, 0)), key("esc"))

	assert.Empty(t, f.model.ringing)
	assert.Len(t, f.service.Alarms(), 1)
}

func TestModel_StatusExpires(t *testing.T) {
	f := newFixture(t, nil)

	f.send(t, statusMsg{message: "hello", color: colorInfo})
	assert.Contains(t, f.model.View(), "hello")

	f.model.statusExpiry = time.Now().Add(-time.Second)
	assert.NotContains(t, f.model.View(), "hello")
}

func TestModel_Quit(t *testing.T) {
	f := newFixture(t, nil)

	cmd := f.send(t, key("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowResize(t *testing.T) {
	f := newFixture(t, nil)

	f.send(t, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, f.model.width)
	assert.Equal(t, 40, f.model.height)
}

func TestProgram_RunTearsDownOnCancel(t *testing.T) {
	conf := &structures.Config{AppName: "AlarmClock", Clock: structures.ClockConfig{TickInterval: time.Second}}
	store := &testutil.MockAlarmStore{}
	trigger := &testutil.MockTrigger{}
	logger := &testutil.MockLogger{}
	svc := services.NewAlarmService(conf, store, trigger, logger)
	scheduler := &programTestScheduler{service: svc}

	p := NewProgram(conf, logger, svc, scheduler, trigger, store)
	p.options = []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(io.Discard)}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, p.Run(ctx))

	assert.Equal(t, 1, scheduler.restores)
	assert.Equal(t, 1, scheduler.persists)
	assert.True(t, trigger.Closed)
	assert.True(t, store.Closed)
}

type programTestScheduler struct {
	service            services.AlarmServiceInterface
	restores, persists int
}

func (s *programTestScheduler) Init() {}
func (s *programTestScheduler) Stop() {}
func (s *programTestScheduler) Tick() {}
func (s *programTestScheduler) Restore() error {
	s.restores++
	s.service.Restore()
	return nil
}
func (s *programTestScheduler) Persist() error {
	s.persists++
	s.service.Persist()
	return nil
}
