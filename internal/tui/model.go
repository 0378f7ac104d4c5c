package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studyhall/studyhall/internal/store"
)

type SessionState int

const (
	StateOverview SessionState = iota
	StateHabits
	StateTasks
)

var tabTitles = []string{"Overview", "Habits", "Assignments"}

// tickMsg refreshes the displayed clock. The tick drives countdowns and
// highlighting only; it never mutates persisted state.
type tickMsg time.Time

type Model struct {
	store    *store.Store
	state    SessionState
	keys     KeyMap
	help     help.Model
	now      time.Time
	cursor   int
	width    int
	height   int
	quitting bool
}

func New(s *store.Store) Model {
	return Model{
		store: s,
		state: StateOverview,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		now:   time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
