package logging

import (
	"sync"
	"sync/atomic"
)

var (
	defaultMu     sync.Mutex
	defaultClient atomic.Pointer[Client]
)

// SetDefault binds the process-wide Client used by the package-level
// functions. It can only succeed once, and not after Default has bound a
// waPC backed Client on first use.
func SetDefault(c *Client) error {
	if c == nil {
		return ErrClientNil
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if !defaultClient.CompareAndSwap(nil, c) {
		return ErrDefaultBound
	}
	return nil
}

// Default returns the process-wide Client, binding one over the waPC host in
// the default namespace if none is bound yet.
func Default() *Client {
	if c := defaultClient.Load(); c != nil {
		return c
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if c := defaultClient.Load(); c != nil {
		return c
	}
	// New only fails on negative limits.
	c, _ := New(Config{})
	defaultClient.Store(c)
	return c
}

func Log(message string)                { Default().print(PriorityLog, message, nil) }
func LogWith(message string, err error) { Default().print(PriorityLog, message, err) }
func LogErr(err error)                  { Default().print(PriorityLog, "", err) }

func Debug(message string)                { Default().print(PriorityDebug, message, nil) }
func DebugWith(message string, err error) { Default().print(PriorityDebug, message, err) }
func DebugErr(err error)                  { Default().print(PriorityDebug, "", err) }

func Error(message string)                { Default().print(PriorityError, message, nil) }
func ErrorWith(message string, err error) { Default().print(PriorityError, message, err) }
func ErrorErr(err error)                  { Default().print(PriorityError, "", err) }

// Tag returns the tag the process-wide Client would use for the caller.
func Tag() string { return Default().tag(callDepthPublic) }
