package logging

import (
	"fmt"
	"net"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// stackTracer is implemented by errors created or wrapped with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTraceString renders err and its causal chain, one block per distinct
// error, with the frames of any attached github.com/pkg/errors stack trace.
//
// It returns "" for a nil error, and for an error that is or wraps a
// *net.DNSError. A failed host lookup is the ordinary state of a device
// without network access and is not worth a trace.
func StackTraceString(err error) string {
	if err == nil {
		return ""
	}

	if hostUnresolved(err) {
		return ""
	}

	var b strings.Builder
	writeChain(&b, err, "")
	return b.String()
}

// hostUnresolved reports whether err or any error it links to is a
// *net.DNSError. It follows the same links as writeChain.
func hostUnresolved(err error) bool {
	for err != nil {
		if _, ok := err.(*net.DNSError); ok {
			return true
		}

		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				if hostUnresolved(e) {
					return true
				}
			}
			return false
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Cause() error }:
			err = u.Cause()
		default:
			err = nil
		}
	}
	return false
}

func writeChain(b *strings.Builder, err error, prefix string) {
	var (
		last   string
		traced bool
	)
	for first := true; err != nil; first = false {
		msg := err.Error()

		// Wrappers that only attach a stack repeat their cause's message;
		// they belong to the same block.
		if first || msg != last {
			p := prefix
			if !first {
				p = "Caused by: "
			}
			fmt.Fprintf(b, "%s%T: %s\n", p, err, msg)
			last, traced = msg, false
		}

		if st, ok := err.(stackTracer); ok && !traced {
			for _, f := range st.StackTrace() {
				fmt.Fprintf(b, "\tat %n (%s:%d)\n", f, f, f)
			}
			traced = true
		}

		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				if e != nil {
					writeChain(b, e, "Suppressed: ")
				}
			}
			return
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Cause() error }:
			err = u.Cause()
		default:
			err = nil
		}
	}
}
