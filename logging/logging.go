package logging

import (
	"errors"
	"fmt"

	"github.com/tarmac-project/hostlog"
)

const (
	// DefaultMaxTagLength is the longest tag a restricted platform accepts.
	DefaultMaxTagLength = 23

	// DefaultMaxLineLength is the longest single entry, in bytes, a restricted platform accepts.
	DefaultMaxLineLength = 4000
)

var (
	// ErrStackTooShallow is the panic value, wrapped, raised when the call stack
	// does not reach the logging caller. Frame information has been stripped.
	ErrStackTooShallow = errors.New("call stack did not have enough frames")

	// ErrUnknownPriority is the panic value, wrapped, raised for a Priority outside the defined set.
	ErrUnknownPriority = errors.New("unsupported priority")

	// ErrInvalidLimit is returned when a configured length limit is negative.
	ErrInvalidLimit = errors.New("length limit must not be negative")

	// ErrInvalidEntry is returned when a log write payload cannot be decoded.
	ErrInvalidEntry = errors.New("log entry payload is invalid")

	// ErrClientNil is returned when SetDefault is given a nil Client.
	ErrClientNil = errors.New("client cannot be nil")

	// ErrDefaultBound is returned when the process-wide Client is already bound.
	ErrDefaultBound = errors.New("default client is already bound")
)

// Config controls how a Client is built.
type Config struct {
	// Host receives every entry. When nil, a waPC backed Host is created from
	// SDKConfig and HostCall.
	Host Host

	// SDKConfig provides the runtime namespace for the default Host.
	SDKConfig hostlog.RuntimeConfig

	// HostCall overrides the waPC host function used by the default Host.
	HostCall HostCall

	// Caller overrides stack inspection.
	Caller CallerFunc

	// MaxTagLength caps tags on restricted platforms. Zero means DefaultMaxTagLength.
	MaxTagLength int

	// MaxLineLength caps entries on restricted platforms. Zero means DefaultMaxLineLength.
	MaxLineLength int
}

// Client is the logging facade. It is safe for concurrent use when its Host is.
type Client struct {
	host          Host
	caller        CallerFunc
	maxTagLength  int
	maxLineLength int
}

// New creates a Client bound to the configured Host.
func New(cfg Config) (*Client, error) {
	if cfg.MaxTagLength < 0 || cfg.MaxLineLength < 0 {
		return nil, ErrInvalidLimit
	}

	host := cfg.Host
	if host == nil {
		h, err := NewHost(HostConfig{SDKConfig: cfg.SDKConfig, HostCall: cfg.HostCall})
		if err != nil {
			return nil, err
		}
		host = h
	}

	c := &Client{
		host:          host,
		caller:        cfg.Caller,
		maxTagLength:  cfg.MaxTagLength,
		maxLineLength: cfg.MaxLineLength,
	}
	if c.caller == nil {
		c.caller = runtimeCaller
	}
	if c.maxTagLength == 0 {
		c.maxTagLength = DefaultMaxTagLength
	}
	if c.maxLineLength == 0 {
		c.maxLineLength = DefaultMaxLineLength
	}
	return c, nil
}

// Host returns the Host the Client writes to.
func (c *Client) Host() Host { return c.host }

func (c *Client) Log(message string)                { c.print(PriorityLog, message, nil) }
func (c *Client) LogWith(message string, err error) { c.print(PriorityLog, message, err) }
func (c *Client) LogErr(err error)                  { c.print(PriorityLog, "", err) }

func (c *Client) Debug(message string)                { c.print(PriorityDebug, message, nil) }
func (c *Client) DebugWith(message string, err error) { c.print(PriorityDebug, message, err) }
func (c *Client) DebugErr(err error)                  { c.print(PriorityDebug, "", err) }

func (c *Client) Error(message string)                { c.print(PriorityError, message, nil) }
func (c *Client) ErrorWith(message string, err error) { c.print(PriorityError, message, err) }
func (c *Client) ErrorErr(err error)                  { c.print(PriorityError, "", err) }

// print composes the entry and writes it, in chunks when the platform
// restricts line length. It must be called directly by an exported logging
// function so the caller sits at callDepthPrivate.
func (c *Client) print(p Priority, message string, err error) {
	tag := c.tag(callDepthPrivate)

	if err != nil {
		message += "\n" + StackTraceString(err)
	}

	if !c.host.Platform().Restricted() || len(message) <= c.maxLineLength {
		c.write(p, tag, message)
		return
	}

	splitLines(message, c.maxLineLength, func(chunk string) {
		c.write(p, tag, chunk)
	})
}

func (c *Client) write(p Priority, tag, message string) {
	switch p {
	case PriorityLog:
		c.host.Log(tag, message)
	case PriorityDebug:
		c.host.Debug(tag, message)
	case PriorityError:
		c.host.Error(tag, message)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownPriority, int(p)))
	}
}
