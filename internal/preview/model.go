// Package preview is a live viewer that re-renders the status display on a
// 100ms tick so animated themes can be inspected in a terminal.
package preview

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/prismline/internal/colors"
	"github.com/alexisbeaulieu97/prismline/internal/gitstate"
	"github.com/alexisbeaulieu97/prismline/internal/input"
	"github.com/alexisbeaulieu97/prismline/internal/logger"
	"github.com/alexisbeaulieu97/prismline/internal/render"
)

// TickInterval matches the decisecond animation clock.
const TickInterval = 100 * time.Millisecond

type tickMsg time.Time

// Options configures a preview session.
type Options struct {
	Themes      []string
	Start       string
	AllowHidden bool
	ChipStyle   render.ChipStyle
	Input       input.RenderInput
	Repo        gitstate.State
	ColorsPath  string
	Overrides   colors.Overrides
	Log         *logger.Logger
}

// Model is the preview state.
type Model struct {
	themes      []string
	index       int
	allowHidden bool
	chip        render.ChipStyle
	in          input.RenderInput
	repo        gitstate.State
	overrides   colors.Overrides
	colorsPath  string
	log         *logger.Logger

	now     time.Time
	width   int
	notice  string
	keys    KeyMap
	watcher *colorsWatcher
}

// NewModel creates a preview positioned on opts.Start, or the first theme
// when Start is not in the list.
func NewModel(opts Options) Model {
	m := Model{
		themes:      opts.Themes,
		allowHidden: opts.AllowHidden,
		chip:        opts.ChipStyle,
		in:          opts.Input,
		repo:        opts.Repo,
		overrides:   opts.Overrides,
		colorsPath:  opts.ColorsPath,
		log:         opts.Log.Component("preview"),
		now:         time.Now(),
		width:       80,
		keys:        DefaultKeyMap(),
	}
	for i, name := range opts.Themes {
		if name == opts.Start {
			m.index = i
			break
		}
	}
	return m
}

// Theme returns the theme currently shown.
func (m Model) Theme() string {
	if len(m.themes) == 0 {
		return ""
	}
	return m.themes[m.index]
}

// Init starts the tick loop and, when a colors path is set, the file watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.watcher != nil {
		cmds = append(cmds, waitForOverrides(m.watcher.sub), waitForWatcherErr(m.watcher.errc))
	}
	return tea.Batch(cmds...)
}

// Watch attaches a colors file watcher. The returned stop func must be called
// once the program exits.
func (m Model) Watch() (Model, func(), error) {
	if m.colorsPath == "" {
		return m, func() {}, nil
	}
	w := newColorsWatcher(m.colorsPath)
	if err := w.start(); err != nil {
		return m, func() {}, err
	}
	m.watcher = w
	return m, w.stop, nil
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case overridesMsg:
		m.overrides = msg.overrides
		m.notice = "reloaded " + m.colorsPath
		m.log.WithFields(map[string]any{"path": m.colorsPath, "keys": len(msg.overrides)}).
			Debug("custom colors reloaded")
		if m.watcher == nil {
			return m, nil
		}
		return m, waitForOverrides(m.watcher.sub)

	case watcherErrMsg:
		m.notice = "watch error: " + msg.err.Error()
		m.log.Error(msg.err, "colors watcher failed")
		if m.watcher == nil {
			return m, nil
		}
		return m, waitForWatcherErr(m.watcher.errc)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		if n := len(m.themes); n > 0 {
			m.index = (m.index + 1) % n
		}
	case key.Matches(msg, m.keys.Prev):
		if n := len(m.themes); n > 0 {
			m.index = (m.index - 1 + n) % n
		}
	case key.Matches(msg, m.keys.Chip):
		if m.chip == render.ChipPipe {
			m.chip = render.ChipBadge
		} else {
			m.chip = render.ChipPipe
		}
	}
	return m, nil
}

// Frame renders the current theme at the model's clock.
func (m Model) Frame() string {
	return render.RenderTheme(render.Request{
		ThemeName:   m.Theme(),
		AllowHidden: m.allowHidden,
		Input:       m.in,
		Repo:        m.repo,
		Now:         m.now,
		ChipStyle:   m.chip,
		Overrides:   m.overrides,
		Log:         m.log,
	})
}
