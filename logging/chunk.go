package logging

import (
	"strings"
	"unicode/utf8"
)

// splitLines emits message in pieces of at most limit bytes. A newline always
// ends a piece and is itself dropped, so each line is emitted whole when it
// fits and as limit-sized pieces plus a remainder when it does not. An empty
// line emits an empty piece. Pieces never end inside a UTF-8 sequence.
func splitLines(message string, limit int, emit func(string)) {
	length := len(message)
	for i := 0; i < length; i++ {
		newline := strings.IndexByte(message[i:], '\n')
		if newline < 0 {
			newline = length
		} else {
			newline += i
		}

		for {
			end := runeBoundary(message, i, min(newline, i+limit))
			emit(message[i:end])
			i = end
			if i >= newline {
				break
			}
		}
	}
}

// runeBoundary moves end back to the start of the rune it falls in, without
// going back to start.
func runeBoundary(s string, start, end int) int {
	if end >= len(s) {
		return end
	}
	for e := end; e > start; e-- {
		if utf8.RuneStart(s[e]) {
			return e
		}
	}
	return end
}
