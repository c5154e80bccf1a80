package logging

// Priority selects which host write handles an entry.
type Priority int

const (
	PriorityLog Priority = iota
	PriorityDebug
	PriorityError
)

func (p Priority) String() string {
	switch p {
	case PriorityLog:
		return "LOG"
	case PriorityDebug:
		return "DEBUG"
	case PriorityError:
		return "ERROR"
	}
	return "UNKNOWN"
}
