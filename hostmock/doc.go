/*
Package hostmock provides a friendly pretend host for waPC calls.

It's designed for SDK development and tests where you want to validate exactly
what the logging client sends to the host, without needing a real host
running.

Why use hostmock?

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Inspect payloads: plug in a PayloadValidator, or read back Calls after the fact.
  - Script responses: return custom bytes per function or simulate failures.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "logging",
	  Responses: map[string]func() []byte{
	    "platform": hostmock.PlatformResponse(hostlog.PlatformAndroid),
	  },
	})

	host, _ := logging.NewHost(logging.HostConfig{HostCall: m.HostCall})
	host.Log("Widget", "hello")

	for _, c := range m.CallsTo("log") {
	  tag, msg, _ := logging.DecodeEntry(c.Payload)
	  // assert tag and msg
	}

Behavior

  - Every invocation is recorded, including ones that fail.
  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces ExpectedNamespace/Capability/Function and runs
    PayloadValidator when provided. Responses[function] wins over Response;
    with neither set it returns nil.

Tips

  - Leave Expected fields blank when you want a wildcard; hostmock only enforces values you set.
  - Prefer logging/mock unless you truly need wire-level checks.
*/
package hostmock
