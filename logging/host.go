package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tarmac-project/hostlog"
	wapc "github.com/wapc/wapc-guest-tinygo"
	pb "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	capabilityName = "logging"
	fnLog          = "log"
	fnDebug        = "debug"
	fnError        = "error"
	fnPlatform     = "platform"

	fieldTag     = "tag"
	fieldMessage = "message"
)

// HostCall defines the waPC host function signature used by logging operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Host is the logging backend owned by the host runtime.
type Host interface {
	// Platform reports the kind of runtime the host is running on.
	Platform() hostlog.Platform

	// Log writes an informational entry.
	Log(tag, message string)

	// Debug writes a debug entry.
	Debug(tag, message string)

	// Error writes an error entry.
	Error(tag, message string)
}

// HostConfig controls how a WAPCHost interacts with the host runtime.
type HostConfig struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig hostlog.RuntimeConfig

	// HostCall overrides the waPC host function used for logging operations.
	HostCall HostCall

	// Platform, when not PlatformUnknown, is used instead of asking the host.
	Platform hostlog.Platform
}

// WAPCHost is a Host that forwards entries through waPC host calls.
type WAPCHost struct {
	runtime  hostlog.RuntimeConfig
	hostCall HostCall

	platformOnce sync.Once
	platform     hostlog.Platform
}

// Ensure WAPCHost satisfies the Host interface at compile time.
var _ Host = (*WAPCHost)(nil)

// NewHost creates a waPC backed Host with namespace defaults and optional host-call override.
func NewHost(cfg HostConfig) (*WAPCHost, error) {
	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	h := &WAPCHost{
		runtime:  cfg.SDKConfig.WithDefaults(),
		hostCall: hostCall,
	}
	if cfg.Platform != hostlog.PlatformUnknown {
		h.platformOnce.Do(func() { h.platform = cfg.Platform })
	}
	return h, nil
}

// Platform asks the host for its platform on first use and caches the answer.
// A host that cannot answer is treated as PlatformUnknown.
func (h *WAPCHost) Platform() hostlog.Platform {
	h.platformOnce.Do(func() {
		p, err := h.fetchPlatform()
		if err != nil {
			p = hostlog.PlatformUnknown
		}
		h.platform = p
	})
	return h.platform
}

func (h *WAPCHost) fetchPlatform() (hostlog.Platform, error) {
	resp, err := h.hostCall(h.runtime.Namespace, capabilityName, fnPlatform, nil)
	if err != nil {
		return hostlog.PlatformUnknown, fmt.Errorf("%w: %w", hostlog.ErrHostCall, err)
	}

	var v wrapperspb.StringValue
	if err := pb.Unmarshal(resp, &v); err != nil {
		return hostlog.PlatformUnknown, fmt.Errorf("%w: %w", hostlog.ErrHostResponseInvalid, err)
	}
	return hostlog.ParsePlatform(v.GetValue()), nil
}

func (h *WAPCHost) Log(tag, message string)   { h.write(fnLog, tag, message) }
func (h *WAPCHost) Debug(tag, message string) { h.write(fnDebug, tag, message) }
func (h *WAPCHost) Error(tag, message string) { h.write(fnError, tag, message) }

// write is best effort; a failed host call drops the entry.
func (h *WAPCHost) write(fn, tag, message string) {
	payload, err := EncodeEntry(tag, message)
	if err != nil {
		return
	}
	_, _ = h.hostCall(h.runtime.Namespace, capabilityName, fn, payload)
}

// EncodeEntry builds the payload of a log write: a google.protobuf.Struct
// holding the string fields "tag" and "message". Invalid UTF-8 is replaced
// with U+FFFD.
func EncodeEntry(tag, message string) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		fieldTag:     strings.ToValidUTF8(tag, "\uFFFD"),
		fieldMessage: strings.ToValidUTF8(message, "\uFFFD"),
	})
	if err != nil {
		return nil, err
	}
	return pb.Marshal(s)
}

// DecodeEntry is the inverse of EncodeEntry.
func DecodeEntry(payload []byte) (tag, message string, err error) {
	var s structpb.Struct
	if err := pb.Unmarshal(payload, &s); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	fields := s.GetFields()
	t, ok := fields[fieldTag]
	if !ok {
		return "", "", fmt.Errorf("%w: missing %s", ErrInvalidEntry, fieldTag)
	}
	m, ok := fields[fieldMessage]
	if !ok {
		return "", "", fmt.Errorf("%w: missing %s", ErrInvalidEntry, fieldMessage)
	}
	return t.GetStringValue(), m.GetStringValue(), nil
}
