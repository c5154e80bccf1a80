/*
Package mock provides an in-memory logging.Host for testing code that logs.

The Host records every write the logging client makes, so tests can assert
tags, messages, and priorities without a host runtime. The reported platform
is configurable, which makes the restricted-platform behavior (tag
truncation and message chunking) easy to exercise.

# Basic Usage

	h := mock.New(mock.Config{Platform: hostlog.PlatformAndroid})
	log, _ := logging.New(logging.Config{Host: h})

	log.Error("boom")

	for _, e := range h.Entries() {
		// e.Priority, e.Tag, e.Message
	}
*/
package mock
