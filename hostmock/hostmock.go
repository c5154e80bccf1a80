package hostmock

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tarmac-project/hostlog"
	pb "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Call records a single host invocation received by the Mock.
type Call struct {
	Namespace  string
	Capability string
	Function   string
	Payload    []byte
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	// Empty matches any namespace.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	// Empty matches any capability.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	// Empty matches any function.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Responses overrides Response for specific function names.
	Responses map[string]func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool
}

// Mock simulates a host call interface with validation and configurable responses.
type Mock struct {
	cfg Config

	mu    sync.Mutex
	calls []Call
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{cfg: config}, nil
}

// Calls returns a copy of every invocation the Mock has received, in order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallsTo returns the recorded invocations of a single function.
func (m *Mock) CallsTo(function string) []Call {
	var out []Call
	for _, c := range m.Calls() {
		if c.Function == function {
			out = append(out, c)
		}
	}
	return out
}

// HostCall simulates a host call, validating inputs and returning a response or error.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{
		Namespace:  namespace,
		Capability: capability,
		Function:   function,
		Payload:    append([]byte(nil), payload...),
	})
	m.mu.Unlock()

	// Return user-defined error if Fail is set
	if m.cfg.Fail && m.cfg.Error != nil {
		return nil, m.cfg.Error
	}

	// Return default error if Fail is set but no custom error is provided
	if m.cfg.Fail {
		return nil, ErrOperationFailed
	}

	if err := expect(ErrUnexpectedNamespace, "namespace", m.cfg.ExpectedNamespace, namespace); err != nil {
		return nil, err
	}
	if err := expect(ErrUnexpectedCapability, "capability", m.cfg.ExpectedCapability, capability); err != nil {
		return nil, err
	}
	if err := expect(ErrUnexpectedFunction, "function", m.cfg.ExpectedFunction, function); err != nil {
		return nil, err
	}

	// Validate payload using user-defined validator, if provided
	if m.cfg.PayloadValidator != nil {
		if err := m.cfg.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	if r, ok := m.cfg.Responses[function]; ok && r != nil {
		return r(), nil
	}

	// Return user-defined response if provided
	if m.cfg.Response != nil {
		return m.cfg.Response(), nil
	}

	// Default to no response
	return nil, nil
}

func expect(sentinel error, field, want, got string) error {
	if want == "" || want == got {
		return nil
	}
	return fmt.Errorf("%w: expected %s %s, got %s", sentinel, field, want, got)
}

// PlatformResponse returns a Response that reports p the way a host answers a platform query.
func PlatformResponse(p hostlog.Platform) func() []byte {
	return RawPlatformResponse(p.String())
}

// RawPlatformResponse is PlatformResponse for an arbitrary platform name.
func RawPlatformResponse(name string) func() []byte {
	return func() []byte {
		b, _ := pb.Marshal(wrapperspb.String(name))
		return b
	}
}
