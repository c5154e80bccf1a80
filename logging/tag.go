package logging

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
	"unicode/utf8"
)

// Depths are counted from tag itself, which is frame 0.
const (
	// tag <- print <- Log, LogWith, Debug... (method or package function) <- caller
	callDepthPrivate = 3

	// tag <- Tag (method or package function) <- caller
	callDepthPublic = 2
)

// CallerFunc reports the qualified owner name of the frame skip levels above
// the function that invoked it, where skip 0 is that function itself. A
// qualified owner name is a package path plus an optional type, such as
// "example.com/game.Player". ok is false when the stack is not deep enough.
type CallerFunc func(skip int) (name string, ok bool)

var (
	// anonymousSuffix matches synthetic nested type markers such as "$1$2".
	anonymousSuffix = regexp.MustCompile(`(\$\d+)+$`)

	// closureSuffix matches the compiler generated names of function
	// literals and go/defer wrappers, e.g. ".func1.2" or ".gowrap1".
	closureSuffix = regexp.MustCompile(`(\.(func|gowrap|deferwrap)?\d+)+$`)

	// typeParams matches instantiated type parameter lists.
	typeParams = regexp.MustCompile(`\[[^\]]*\]`)
)

// runtimeCaller is the default CallerFunc. It walks logical frames so that
// inlined calls count the same as real ones.
func runtimeCaller(skip int) (string, bool) {
	// runtime.Callers(1) starts at runtimeCaller, so the invoker is frame 1.
	want := skip + 1
	pcs := make([]uintptr, want+8)
	n := runtime.Callers(1, pcs)
	if n == 0 {
		return "", false
	}

	frames := runtime.CallersFrames(pcs[:n])
	for i := 0; ; i++ {
		frame, more := frames.Next()
		if i == want {
			return ownerName(frame.Function), frame.Function != ""
		}
		if !more {
			return "", false
		}
	}
}

// ownerName maps a Go symbol to the package path and, for methods, the
// receiver type that owns it.
//
//	example.com/game.(*Player).Jump.func1  -> example.com/game.Player
//	example.com/game.Player.Name           -> example.com/game.Player
//	example.com/game.spawn.func2           -> example.com/game
//	gopkg.in/yaml%2ev3.(*Decoder).Decode   -> gopkg.in/yaml.v3.Decoder
func ownerName(symbol string) string {
	dir, rest := "", symbol
	if i := strings.LastIndex(symbol, "/"); i >= 0 {
		dir, rest = symbol[:i+1], symbol[i+1:]
	}

	rest = typeParams.ReplaceAllString(rest, "")
	rest = closureSuffix.ReplaceAllString(rest, "")
	rest = strings.TrimSuffix(rest, ".glob.")

	// The runtime escapes dots in the last path element, so the first
	// unescaped dot ends the package path.
	parts := strings.Split(rest, ".")
	pkg := dir + strings.ReplaceAll(parts[0], "%2e", ".")
	if len(parts) < 3 {
		return pkg
	}

	recv := strings.TrimPrefix(parts[1], "(")
	recv = strings.TrimPrefix(recv, "*")
	recv = strings.TrimSuffix(recv, ")")
	return pkg + "." + recv
}

// simpleName strips anonymous markers and every qualifier from an owner name.
func simpleName(owner string) string {
	name := anonymousSuffix.ReplaceAllString(owner, "")
	name = name[strings.LastIndex(name, "/")+1:]
	return name[strings.LastIndex(name, ".")+1:]
}

// truncateRunes returns the first limit characters of s.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

// tag derives the tag for the frame at depth. It panics when the stack is
// too shallow: that means frame information was stripped and any tag would
// be wrong.
func (c *Client) tag(depth int) string {
	owner, ok := c.caller(depth)
	if !ok {
		panic(fmt.Errorf("%w: no frame at depth %d", ErrStackTooShallow, depth))
	}

	tag := simpleName(owner)
	if !c.host.Platform().Restricted() {
		return tag
	}
	return truncateRunes(tag, c.maxTagLength)
}

// Tag returns the tag the Client would use for an entry logged by the caller.
func (c *Client) Tag() string {
	return c.tag(callDepthPublic)
}
