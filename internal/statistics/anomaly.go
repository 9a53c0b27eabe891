package statistics

import "errors"

// ErrMalformedDocument reports nesting corruption or a syntax error in the
// statistics document. Unlike per-element anomalies it fails the whole load.
var ErrMalformedDocument = errors.New("malformed statistics document")

// AnomalyKind classifies a recoverable per-element problem.
type AnomalyKind int

const (
	// MalformedAttribute means a day element lacks a parsable date attribute.
	MalformedAttribute AnomalyKind = iota
	// MalformedCount means worktime/breaktime content is not a non-negative integer.
	MalformedCount
	// UnrecognizedElement means an element name outside the known vocabulary.
	UnrecognizedElement
)

func (k AnomalyKind) String() string {
	switch k {
	case MalformedAttribute:
		return "malformed-attribute"
	case MalformedCount:
		return "malformed-count"
	case UnrecognizedElement:
		return "unrecognized-element"
	default:
		return "unknown"
	}
}

// Anomaly records one problem the parser recovered from. The offending unit
// of data is dropped; the rest of the document still loads.
type Anomaly struct {
	Kind   AnomalyKind
	Offset int64 // byte offset into the document
	Detail string
}
