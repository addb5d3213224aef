package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/simon/internal/events"
	"github.com/muurk/simon/internal/launch"
	"github.com/muurk/simon/internal/nav"
)

// MuxFactory builds a fresh event stream. It is called at startup and after
// every refresh.
type MuxFactory func() (*events.Mux, error)

// SizeFunc reports the terminal geometry.
type SizeFunc func() (width, height int)

// Player runs a launch request. *launch.Launcher satisfies it.
type Player interface {
	Launch(ctx context.Context, tmpl launch.Template, path string) (events.Effect, error)
}

type (
	// eventMsg carries one event read from mux.
	eventMsg struct {
		ev  events.Event
		mux *events.Mux
	}
	// streamClosedMsg reports that mux has been stopped.
	streamClosedMsg struct {
		mux *events.Mux
	}
	// launchDoneMsg is delivered once the player has exited.
	launchDoneMsg struct {
		req *nav.LaunchRequest
		err error
	}
)

// Model drives the browser: it pulls events from the current Mux, feeds
// them to the navigation machine and acts on the resulting effects.
// Messages from a Mux that has since been replaced are ignored.
type Model struct {
	ctx     context.Context
	machine *nav.Machine
	newMux  MuxFactory
	mux     *events.Mux
	player  Player
	size    SizeFunc
	logger  *zap.Logger
	help    help.Model

	width, height int
	refreshes     int
	launching     bool
	err           error
}

// Options configures a Model.
type Options struct {
	Machine *nav.Machine
	NewMux  MuxFactory
	Player  Player
	Size    SizeFunc
	Logger  *zap.Logger
}

// NewModel creates the model and starts the first Mux.
func NewModel(ctx context.Context, opts Options) (*Model, error) {
	if opts.Machine == nil || opts.NewMux == nil || opts.Player == nil {
		return nil, errors.New("ui: machine, mux factory and player are required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Size == nil {
		opts.Size = func() (int, int) { return 80, 24 }
	}

	mux, err := opts.NewMux()
	if err != nil {
		return nil, err
	}

	m := &Model{
		ctx:     ctx,
		machine: opts.Machine,
		newMux:  opts.NewMux,
		mux:     mux,
		player:  opts.Player,
		size:    opts.Size,
		logger:  opts.Logger,
		help:    help.New(),
	}
	m.width, m.height = m.size()
	return m, nil
}

// Err returns the fatal error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Refreshes returns how many times the event stream has been rebuilt.
func (m *Model) Refreshes() int {
	return m.refreshes
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.mux)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		if msg.mux != m.mux {
			return m, nil
		}
		return m.handle(msg.ev)

	case streamClosedMsg:
		if msg.mux != m.mux {
			return m, nil
		}
		m.logger.Warn("Event stream closed unexpectedly")
		return m, m.quit()

	case launchDoneMsg:
		m.launching = false
		if msg.err != nil {
			m.err = msg.err
			return m, m.quit()
		}
		return m, m.refresh()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}
	return m, nil
}

func (m *Model) handle(ev events.Event) (tea.Model, tea.Cmd) {
	tr := m.machine.Handle(ev)
	if tr.Effect != events.EffectNone {
		m.logger.Debug("Effect",
			zap.Stringer("event", ev),
			zap.Stringer("effect", tr.Effect),
			zap.Stringer("scope", m.machine.Scope()),
		)
	}

	switch tr.Effect {
	case events.EffectQuit:
		return m, m.quit()

	case events.EffectRefresh:
		m.stopMux()
		if tr.Launch != nil {
			m.launching = true
			return m, m.launch(tr.Launch)
		}
		return m, m.refresh()
	}

	if !ev.IsInput() {
		if w, h := m.size(); w != m.width || h != m.height {
			m.width, m.height = w, h
		}
	}
	return m, waitForEvent(m.mux)
}

// launch hands the terminal to the player. Bubble Tea suspends its renderer
// for the duration; the raw-mode hand-off is done by the Player.
func (m *Model) launch(req *nav.LaunchRequest) tea.Cmd {
	cmd := &launchCommand{ctx: m.ctx, player: m.player, req: req}
	return tea.Exec(cmd, func(err error) tea.Msg {
		return launchDoneMsg{req: req, err: err}
	})
}

// refresh replaces the event stream and re-reads the geometry.
func (m *Model) refresh() tea.Cmd {
	m.stopMux()
	mux, err := m.newMux()
	if err != nil {
		m.err = err
		return tea.Quit
	}
	m.mux = mux
	m.refreshes++
	m.width, m.height = m.size()

	m.logger.Info("Refreshed",
		zap.Int("refreshes", m.refreshes),
		zap.Int("width", m.width),
		zap.Int("height", m.height),
	)
	return tea.Batch(tea.ClearScreen, waitForEvent(mux))
}

func (m *Model) quit() tea.Cmd {
	m.stopMux()
	return tea.Quit
}

// Close stops the current event stream. Run calls it once the program is
// done; it is safe to call more than once.
func (m *Model) Close() {
	m.stopMux()
}

func (m *Model) stopMux() {
	if m.mux == nil {
		return
	}
	m.mux.Stop()
	m.mux = nil
}

func waitForEvent(mux *events.Mux) tea.Cmd {
	if mux == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := mux.Next()
		if !ok {
			return streamClosedMsg{mux: mux}
		}
		return eventMsg{ev: ev, mux: mux}
	}
}

// launchCommand adapts a launch request to tea.ExecCommand. The player
// keeps the real stdin; Bubble Tea's own input is a placeholder.
type launchCommand struct {
	ctx    context.Context
	player Player
	req    *nav.LaunchRequest

	stdout, stderr io.Writer
}

func (c *launchCommand) Run() error {
	if l, ok := c.player.(*launch.Launcher); ok {
		if c.stdout != nil {
			l.Stdout = c.stdout
		}
		if c.stderr != nil {
			l.Stderr = c.stderr
		}
	}
	_, err := c.player.Launch(c.ctx, c.req.Template, c.req.Path)
	return err
}

func (c *launchCommand) SetStdin(io.Reader)    {}
func (c *launchCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *launchCommand) SetStderr(w io.Writer) { c.stderr = w }
