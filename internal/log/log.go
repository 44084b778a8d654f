package log

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
)

var (
	sectionsMu      sync.RWMutex
	enabledSections = []string{
		"cmd",
	}
)

var level = new(slog.LevelVar)

var LoggerOpts = &slog.HandlerOptions{
	AddSource: false,
	Level:     level,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

var DefaultLogger = slog.New(&filteringHandler{underlying: slog.NewTextHandler(os.Stderr, LoggerOpts)})

// SetLevel changes the minimum level of DefaultLogger
func SetLevel(l slog.Level) {
	level.Set(l)
}

// EnableSections makes records below slog.LevelWarn visible for the given sections.
// A section matches when its name has one of the enabled sections as prefix.
func EnableSections(sections ...string) {
	sectionsMu.Lock()
	defer sectionsMu.Unlock()
	for _, s := range sections {
		if !slices.Contains(enabledSections, s) {
			enabledSections = append(enabledSections, s)
		}
	}
}

func sectionEnabled(section string) bool {
	sectionsMu.RLock()
	defer sectionsMu.RUnlock()
	return slices.ContainsFunc(enabledSections, func(enabled string) bool {
		return strings.HasPrefix(section, enabled)
	})
}

var _ slog.Handler = &filteringHandler{}

type filteringHandler struct {
	underlying slog.Handler
	sections   []string
}

func (f filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.underlying.Enabled(ctx, level)
}

func (f filteringHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return f.underlying.Handle(ctx, record)
	}
	wantSection := slices.ContainsFunc(f.sections, sectionEnabled)
	if !wantSection {
		record.Attrs(func(attr slog.Attr) bool {
			wantSection = attr.Key == "section" && sectionEnabled(attr.Value.String())
			// iterate as long as we have not found our section
			return !wantSection
		})
	}
	if !wantSection {
		return nil
	}
	return f.underlying.Handle(ctx, record)
}

func (f filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sections := slices.Clone(f.sections)
	for _, attr := range attrs {
		if attr.Key == "section" {
			sections = append(sections, attr.Value.String())
		}
	}
	return &filteringHandler{
		underlying: f.underlying.WithAttrs(attrs),
		sections:   sections,
	}
}

func (f filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{
		underlying: f.underlying.WithGroup(name),
		sections:   f.sections,
	}
}
