// Package log configures the apex/log logger shared by the linetools binaries.
//
// Standard output carries filter data, so every log entry goes to a separate
// writer (standard error in production).
package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/apex/log"
)

// Levels accepted by Init, lowest first.
var Levels = []string{"debug", "info", "warn", "error", "fatal"}

// DefaultLevel is used when no level is configured.
const DefaultLevel = "error"

// ParseLevel maps a level name to an apex level. Empty means DefaultLevel.
func ParseLevel(name string) (log.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultLevel
	}
	switch name {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	case "fatal":
		return log.FatalLevel, nil
	default:
		return log.InvalidLevel, fmt.Errorf("unknown log level %q (use one of %s)", name, strings.Join(Levels, ", "))
	}
}

// Init installs a Handler writing to w and sets the level.
// A nil writer means os.Stderr.
func Init(level string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}
	log.SetHandler(NewHandler(w))
	log.SetLevel(lvl)
	return nil
}

// Handler writes one compact line per entry: "<L> <prog>: message key=value".
type Handler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHandler creates a Handler writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	var sb strings.Builder
	sb.WriteString(levelLetter(e.Level))
	sb.WriteByte(' ')
	sb.WriteString(e.Message)

	names := e.Fields.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, " %s=%v", name, e.Fields.Get(name))
	}
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func levelLetter(l log.Level) string {
	switch l {
	case log.DebugLevel:
		return "D"
	case log.InfoLevel:
		return "I"
	case log.WarnLevel:
		return "W"
	case log.ErrorLevel:
		return "E"
	case log.FatalLevel:
		return "F"
	default:
		return "?"
	}
}
