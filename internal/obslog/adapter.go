package obslog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// formatterHandler adapts a LogFormatter to slog.Handler, so TextFormatter,
// JSONFormatter, and ColorFormatter back a real *slog.Logger instead of
// sitting beside it unused. Group names are flattened into dotted attribute
// keys since LogEntry.Fields has no nested representation.
type formatterHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	formatter LogFormatter
	level     slog.Leveler
	attrs     []slog.Attr
	groups    []string
}

func newFormatterHandler(w io.Writer, formatter LogFormatter, level slog.Leveler) *formatterHandler {
	return &formatterHandler{mu: &sync.Mutex{}, w: w, formatter: formatter, level: level}
}

// Enabled reports whether level meets the handler's minimum level.
func (h *formatterHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return level >= min
}

// Handle renders one slog.Record through the underlying LogFormatter.
func (h *formatterHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]interface{}, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		fields[h.qualify(a.Key)] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[h.qualify(a.Key)] = a.Value.Any()
		return true
	})

	entry := LogEntry{
		Timestamp: r.Time,
		Level:     fromSlogLevel(r.Level),
		Message:   r.Message,
		Fields:    fields,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.w, h.formatter.Format(entry))
	return err
}

func (h *formatterHandler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

// WithAttrs returns a handler that carries the given attributes on every
// subsequent record.
func (h *formatterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup returns a handler whose attribute keys are namespaced under name.
func (h *formatterHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

// fromSlogLevel maps slog's level scale onto LogLevel's DEBUG, INFO, WARN
// and ERROR buckets; it never yields FATAL.
func fromSlogLevel(l slog.Level) LogLevel {
	switch {
	case l < slog.LevelInfo:
		return DEBUG
	case l < slog.LevelWarn:
		return INFO
	case l < slog.LevelError:
		return WARN
	default:
		return ERROR
	}
}
