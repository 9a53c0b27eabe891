package statistics

// element identifies a node in the statistics document vocabulary.
type element int

const (
	// elementNone is the sentinel reported when the stack is empty.
	elementNone element = iota
	elementStatistics
	elementDay
	elementWorktime
	elementBreaktime
)

func (e element) String() string {
	switch e {
	case elementStatistics:
		return "statistics"
	case elementDay:
		return "day"
	case elementWorktime:
		return "worktime"
	case elementBreaktime:
		return "breaktime"
	default:
		return "none"
	}
}

// elementFromName maps a local element name to its tag. The vocabulary is
// closed and case-sensitive; unknown names report ok as false.
func elementFromName(name string) (element, bool) {
	switch name {
	case "day":
		return elementDay, true
	case "worktime":
		return elementWorktime, true
	case "breaktime":
		return elementBreaktime, true
	case "statistics":
		return elementStatistics, true
	}
	return elementNone, false
}
