package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/SethHamilton/var/types"
)

// Tracer provides tracing of conformance runs and config loads for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// New creates a tracer writing to writer (stderr when nil).
// An empty filter list traces everything.
func New(enabled bool, filters []string, writer io.Writer) *Tracer {
	if writer == nil {
		writer = os.Stderr
	}
	return &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	globalTracer = New(enabled, filters, writer)
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a case name or config key matches any of the filter patterns
func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func (t *Tracer) active(name string) bool {
	return t != nil && t.enabled && t.matchesFilter(name)
}

// CaseStart logs the start of a conformance case
func (t *Tracer) CaseStart(file, name string, input types.Variant) {
	if !t.active(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] CASE %s:%s input=%s(%q)\n",
		file, name, input.Kind(), input.String())
}

// Coercion logs one accessor call made while checking a case
func (t *Tracer) Coercion(name string, from types.Kind, to types.Kind, result any) {
	if !t.active(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE]   %s -> %s = %v\n", from, to, result)
}

// CaseResult logs the outcome of a conformance case
func (t *Tracer) CaseResult(name string, passed bool, err error) {
	if !t.active(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if passed {
		fmt.Fprintf(t.writer, "[TRACE] PASS %s\n", name)
	} else {
		fmt.Fprintf(t.writer, "[TRACE] FAIL %s: %v\n", name, err)
	}
}

// ConfigKey logs a scalar loaded from a config document
func (t *Tracer) ConfigKey(key string, v types.Variant) {
	if !t.active(key) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Truncate long values for readability, on a rune boundary
	display := v.String()
	if utf8.RuneCountInString(display) > 60 {
		display = string([]rune(display)[:57]) + "..."
	}

	fmt.Fprintf(t.writer, "[TRACE] CONFIG %s %s %q\n", key, v.Kind(), display)
}

// ConfigSkip logs a config leaf that cannot be held in a Variant
func (t *Tracer) ConfigSkip(key string, reason string) {
	if !t.active(key) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] CONFIG %s skipped: %s\n", key, reason)
}

// Global convenience functions

// Global returns the global tracer, or nil before Init
func Global() *Tracer {
	return globalTracer
}

// CaseStart logs a case start using the global tracer
func CaseStart(file, name string, input types.Variant) {
	globalTracer.CaseStart(file, name, input)
}

// Coercion logs an accessor call using the global tracer
func Coercion(name string, from types.Kind, to types.Kind, result any) {
	globalTracer.Coercion(name, from, to, result)
}

// CaseResult logs a case outcome using the global tracer
func CaseResult(name string, passed bool, err error) {
	globalTracer.CaseResult(name, passed, err)
}

// ConfigKey logs a loaded config scalar using the global tracer
func ConfigKey(key string, v types.Variant) {
	globalTracer.ConfigKey(key, v)
}

// ConfigSkip logs a skipped config leaf using the global tracer
func ConfigSkip(key string, reason string) {
	globalTracer.ConfigSkip(key, reason)
}
