package logging

import (
	"sync"

	"github.com/tarmac-project/hostlog"
)

// recordingHost is a minimal Host for tests inside the package; the mock
// subpackage cannot be imported here.
type recordingHost struct {
	mu       sync.Mutex
	platform hostlog.Platform
	writes   []recordedWrite
}

type recordedWrite struct {
	priority Priority
	tag      string
	message  string
}

func (h *recordingHost) Platform() hostlog.Platform { return h.platform }
func (h *recordingHost) Log(tag, message string)    { h.record(PriorityLog, tag, message) }
func (h *recordingHost) Debug(tag, message string)  { h.record(PriorityDebug, tag, message) }
func (h *recordingHost) Error(tag, message string)  { h.record(PriorityError, tag, message) }

func (h *recordingHost) record(p Priority, tag, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writes = append(h.writes, recordedWrite{priority: p, tag: tag, message: message})
}

func newTestClient(p hostlog.Platform, caller CallerFunc) (*Client, *recordingHost) {
	h := &recordingHost{platform: p}
	c, err := New(Config{Host: h, Caller: caller})
	if err != nil {
		panic(err)
	}
	return c, h
}
