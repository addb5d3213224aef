package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/cancelreader"
	"go.uber.org/zap"
)

const (
	// DefaultTickInterval is how often the ticker fires when unconfigured.
	DefaultTickInterval = 250 * time.Millisecond
	// DefaultExitKey ends the keyboard reader when unconfigured.
	DefaultExitKey = "q"

	defaultBuffer = 16
	readBufSize   = 256
)

// Config controls a Mux.
type Config struct {
	// TickInterval is the period of Tick events. Default: 250ms.
	TickInterval time.Duration
	// ExitKey is the key string (as reported by tea.Key.String) after which
	// the keyboard reader stops on its own. Default: "q".
	ExitKey string
	// Buffer is the capacity of the merged stream. Default: 16.
	Buffer int
	// Logger receives producer lifecycle messages. Default: no-op.
	Logger *zap.Logger
}

// DefaultConfig returns a Config with the defaults filled in.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.ExitKey == "" {
		c.ExitKey = DefaultExitKey
	}
	if c.Buffer <= 0 {
		c.Buffer = defaultBuffer
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Mux merges the keyboard reader and the ticker into one stream.
type Mux struct {
	cfg    Config
	input  cancelreader.CancelReader
	events chan Event

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stopOnce sync.Once
}

// New starts both producers. input is normally the terminal's stdin in raw
// mode; it is not closed by the Mux.
func New(input io.Reader, cfg Config) (*Mux, error) {
	if input == nil {
		return nil, errors.New("events: nil input reader")
	}
	cfg = cfg.withDefaults()

	reader, err := cancelreader.NewReader(input)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap input reader: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Mux{
		cfg:    cfg,
		input:  reader,
		events: make(chan Event, cfg.Buffer),
		ctx:    ctx,
		cancel: cancel,
	}

	m.wg.Add(2)
	go m.readKeys()
	go m.tick()

	cfg.Logger.Debug("event mux started",
		zap.Duration("tick_interval", cfg.TickInterval),
		zap.String("exit_key", cfg.ExitKey),
	)
	return m, nil
}

// Next blocks until an event is available. ok is false once the Mux has
// been stopped.
func (m *Mux) Next() (Event, bool) {
	ev, ok := <-m.events
	return ev, ok
}

// Events exposes the merged stream for select-based consumers.
func (m *Mux) Events() <-chan Event {
	return m.events
}

// Stop ends both producers and closes the stream. It is safe to call more
// than once and from several goroutines; every call returns after the
// producers have exited.
func (m *Mux) Stop() {
	m.stopOnce.Do(func() {
		m.cancel()
		canceled := m.input.Cancel()
		m.wg.Wait()
		_ = m.input.Close()

		dropped := m.drain()
		close(m.events)

		m.cfg.Logger.Debug("event mux stopped",
			zap.Bool("read_canceled", canceled),
			zap.Int("dropped_events", dropped),
		)
	})
}

func (m *Mux) drain() int {
	n := 0
	for {
		select {
		case <-m.events:
			n++
		default:
			return n
		}
	}
}

// emit delivers ev unless the Mux is stopping. A false return tells the
// producer to exit.
func (m *Mux) emit(ev Event) bool {
	select {
	case <-m.ctx.Done():
		return false
	default:
	}

	select {
	case <-m.ctx.Done():
		return false
	case m.events <- ev:
		return true
	}
}

func (m *Mux) readKeys() {
	defer m.wg.Done()

	buf := make([]byte, readBufSize)
	for {
		n, err := m.input.Read(buf)
		if n > 0 {
			for _, k := range DecodeKeys(buf[:n]) {
				if !m.emit(Input(k)) {
					return
				}
				if m.isExitKey(k) {
					m.cfg.Logger.Debug("keyboard reader saw exit key", zap.String("key", k.String()))
					return
				}
			}
		}
		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) && !errors.Is(err, io.EOF) {
				m.cfg.Logger.Debug("keyboard reader stopped", zap.Error(err))
			}
			return
		}

		select {
		case <-m.ctx.Done():
			return
		default:
		}
	}
}

func (m *Mux) isExitKey(k tea.Key) bool {
	return k.String() == m.cfg.ExitKey
}

func (m *Mux) tick() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			if !m.emit(Tick()) {
				return
			}
		}
	}
}
