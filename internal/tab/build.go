package tab

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/simon/internal/config"
	"github.com/muurk/simon/internal/library"
	"github.com/muurk/simon/internal/selectloop"
)

// BuildError reports a tab that could not be constructed.
type BuildError struct {
	Tab string
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("tab %q: %v", e.Tab, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Builder turns validated settings into tabs.
type Builder struct {
	Scanner *library.Scanner
	Logger  *zap.Logger
}

// NewBuilder creates a builder that scans with its own scanner.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{Scanner: library.NewScanner(logger), Logger: logger}
}

// Build creates every configured tab, ordered by priority then name, and
// returns them as the selection loop the browser navigates. A media tab
// whose scan finds no files is an error wrapping
// selectloop.ErrEmptySelection.
func (b *Builder) Build(settings *config.Settings) (*selectloop.SelectLoop[*Tab], error) {
	var tabs []*Tab
	for _, ts := range settings.SortedTabs() {
		t, err := b.BuildTab(ts)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, t)
	}

	loop, err := selectloop.New(tabs)
	if err != nil {
		return nil, fmt.Errorf("no tabs to show: %w", err)
	}
	return loop, nil
}

// BuildTab creates one tab from its settings.
func (b *Builder) BuildTab(ts *config.TabSettings) (*Tab, error) {
	t := &Tab{
		Name:     ts.Name,
		Priority: ts.Priority,
		Style:    NewStyle(ts.BaseColor, ts.HighlightColor),
		Kind:     Kind(ts.Kind),
	}

	switch t.Kind {
	case KindMedia:
		media, err := b.buildMedia(ts)
		if err != nil {
			return nil, &BuildError{Tab: ts.Name, Err: err}
		}
		t.Media = media
	default:
		return nil, &BuildError{Tab: ts.Name, Err: fmt.Errorf("unsupported kind %q", ts.Kind)}
	}

	b.Logger.Info("Tab built",
		zap.String("tab", t.Name),
		zap.Int("priority", t.Priority),
		zap.Int("items", t.Media.Items.Len()),
		zap.Bool("subtitles", t.Media.Subtitles != nil),
	)
	return t, nil
}

func (b *Builder) buildMedia(ts *config.TabSettings) (*MediaTab, error) {
	if ts.Command == nil {
		return nil, fmt.Errorf("no command configured")
	}

	files := b.Scanner.Scan(ts.MediaDirs, ts.MediaTypes)
	items, err := selectloop.New(files)
	if err != nil {
		return nil, fmt.Errorf("no %v files found in %v: %w", ts.MediaTypes, ts.MediaDirs, err)
	}

	media := &MediaTab{
		Items:   items,
		Cursor:  ListOut,
		Command: *ts.Command,
	}

	if ts.HasSubtitles() {
		subs, err := selectloop.New(b.Scanner.Scan(ts.SubsDirs, ts.SubsTypes))
		if err != nil {
			b.Logger.Warn("No subtitles found, subtitle list hidden",
				zap.String("tab", ts.Name),
				zap.Strings("subs_dirs", ts.SubsDirs),
			)
		} else {
			media.Subtitles = subs
		}
	}

	return media, nil
}
