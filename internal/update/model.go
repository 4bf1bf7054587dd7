package update

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/focusboard/internal/alerts"
	"github.com/sandeepkv93/focusboard/internal/board"
	"github.com/sandeepkv93/focusboard/internal/leaderboard"
	"github.com/sandeepkv93/focusboard/internal/model"
	"github.com/sandeepkv93/focusboard/internal/notify"
	"github.com/sandeepkv93/focusboard/internal/pomodoro"
	"github.com/sandeepkv93/focusboard/internal/storage"
)

type View string

const (
	ViewTasks       View = "Tasks"
	ViewPomodoro    View = "Pomodoro"
	ViewLeaderboard View = "Leaderboard"
)

// StatusBar carries the transient message line. Seq lets a delayed clear
// recognize it has been superseded by a newer message and leave it alone.
type StatusBar struct {
	Text    string
	IsError bool
	Seq     int
}

type GlobalKeyMap struct {
	Tasks       string
	Pomodoro    string
	Leaderboard string
	Theme       string
	Permission  string
	Help        string
	Quit        string
}

type Model struct {
	CurrentView View
	Board       *board.Board
	Session     *pomodoro.Session
	Ledger      *leaderboard.Ledger
	Theme       model.Theme

	Cursor      int
	InputActive bool
	NewPriority model.Priority

	NewDayPrompt bool
	LastVisit    time.Time
	ResetPrompt  string

	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	Alerts *alerts.Engine
	Notify *notify.Service
	Audio  notify.AudioPlayer
	store  storage.Store
	clock  func() time.Time

	taskInput     textinput.Model
	nameInput     textinput.Model
	focusProgress progress.Model
	boardTable    table.Model

	focusTickGen int
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct {
	Seq int
}

type AppErrorMsg struct {
	Err error
}

// ClockTickMsg recomputes the overdue split and re-syncs the alert queue
// once a minute.
type ClockTickMsg struct{}

// FocusTickMsg advances the countdown by one second. Gen names the tick
// stream that scheduled it; any pause, reset, or mode switch starts a new
// stream and orphans ticks still in flight from the old one.
type FocusTickMsg struct {
	Gen int
}

type AlertDueMsg struct {
	Event alerts.Event
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewTasks,
		Board:       board.New(nil),
		Session:     pomodoro.NewSession(pomodoro.DefaultDurations()),
		Ledger:      leaderboard.New(nil, ""),
		Theme:       model.ThemeLight,
		InputActive: true,
		NewPriority: model.PriorityMedium,
		Notify:      notify.NewService(notify.NoopNotifier{}),
		Audio:       notify.NoopAudioPlayer{},
		clock:       func() time.Time { return time.Now().UTC() },
		Keys: GlobalKeyMap{
			Tasks:       "1",
			Pomodoro:    "2",
			Leaderboard: "3",
			Theme:       "T",
			Permission:  "P",
			Help:        "?",
			Quit:        "q",
		},
	}
	m.initComponents()
	return m
}

type Deps struct {
	Store    storage.Store
	Alerts   *alerts.Engine
	Notifier notify.Notifier
	Audio    notify.AudioPlayer
}

func NewModelWithConfig(deps Deps, cfg RuntimeConfig) Model {
	m := NewModel()
	m.store = deps.Store
	m.Alerts = deps.Alerts
	if deps.Notifier != nil {
		m.Notify = notify.NewService(deps.Notifier)
	}
	if deps.Audio != nil {
		m.Audio = deps.Audio
	}
	durations := pomodoro.Durations{
		Work:       time.Duration(cfg.WorkMinutes) * time.Minute,
		ShortBreak: time.Duration(cfg.ShortBreakMinutes) * time.Minute,
		LongBreak:  time.Duration(cfg.LongBreakMinutes) * time.Minute,
	}
	m.Session = pomodoro.NewSession(durations)
	if cfg.DesktopNotifications {
		m.Notify.SetPermission(notify.PermissionGranted)
	}
	m.loadPersistedState()
	if !m.NewDayPrompt {
		m.LastVisit = m.clock()
		m.persistLastVisit()
	}
	return m
}

func (m *Model) initComponents() {
	taskInput := textinput.New()
	taskInput.Placeholder = "add a task (append due:2006-01-02T15:04 for a deadline)"
	taskInput.CharLimit = 200
	taskInput.Focus()
	m.taskInput = taskInput

	nameInput := textinput.New()
	nameInput.Placeholder = "your name"
	nameInput.CharLimit = 40
	m.nameInput = nameInput

	m.focusProgress = progress.New(progress.WithDefaultGradient())

	m.boardTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Name", Width: 20},
			{Title: "Minutes", Width: 8},
		}),
		table.WithHeight(8),
	)
}

// SetClock fixes the time source, used by tests to pin bucket boundaries.
func (m *Model) SetClock(clock func() time.Time) {
	if clock != nil {
		m.clock = clock
	}
}

func (m Model) Now() time.Time {
	return m.clock()
}
