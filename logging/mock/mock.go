package mock

import (
	"sync"

	"github.com/tarmac-project/hostlog"
	"github.com/tarmac-project/hostlog/logging"
)

// Config configures the mock host.
type Config struct {
	// Platform is the platform the host reports.
	Platform hostlog.Platform
}

// Entry is a single write received by the Host.
type Entry struct {
	Priority logging.Priority
	Tag      string
	Message  string
}

// Host implements logging.Host for tests. It is safe for concurrent use.
type Host struct {
	mu       sync.Mutex
	platform hostlog.Platform
	entries  []Entry
}

// Ensure Host satisfies the logging.Host interface at compile time.
var _ logging.Host = (*Host)(nil)

// New creates a new mock host.
func New(cfg Config) *Host {
	return &Host{platform: cfg.Platform}
}

// Platform implements logging.Host.
func (h *Host) Platform() hostlog.Platform {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.platform
}

// SetPlatform changes the platform reported from now on.
func (h *Host) SetPlatform(p hostlog.Platform) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.platform = p
}

// Log implements logging.Host.
func (h *Host) Log(tag, message string) { h.record(logging.PriorityLog, tag, message) }

// Debug implements logging.Host.
func (h *Host) Debug(tag, message string) { h.record(logging.PriorityDebug, tag, message) }

// Error implements logging.Host.
func (h *Host) Error(tag, message string) { h.record(logging.PriorityError, tag, message) }

func (h *Host) record(p logging.Priority, tag, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, Entry{Priority: p, Tag: tag, Message: message})
}

// Entries returns a copy of every write received so far, in order.
func (h *Host) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entry(nil), h.entries...)
}

// Messages returns the message of every write received so far, in order.
func (h *Host) Messages() []string {
	entries := h.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

// Reset discards all recorded writes.
func (h *Host) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}
