package statistics

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ravener/Flowtime/internal/model"
	"github.com/ravener/Flowtime/internal/timecalc"
)

// Result is the outcome of one parse pass over a statistics document.
type Result struct {
	// Days holds one record per well-formed day element, in document order,
	// plus at most one synthesized record when none matched the reference day.
	Days []model.Day
	// TodayIndex points at the record designated for the reference day.
	// It is always a valid index into Days.
	TodayIndex int
	// Anomalies lists the problems recovered during the pass, in document order.
	Anomalies []Anomaly
}

// Today returns the record designated for the reference day.
func (r Result) Today() model.Day { return r.Days[r.TodayIndex] }

// Parse reads a statistics document from r in a single pass and aggregates it
// into day records. now is the reference clock deciding which record is
// "today"; when two records share the reference day the first one in document
// order wins, and when none matches a zero-valued record is synthesized.
//
// Per-element problems (bad date attribute, bad count, unknown element) are
// logged, collected into the result and their data dropped; only an
// unopenable stream or nesting corruption fails the load as a whole.
func Parse(r io.Reader, now time.Time, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.Default()
	}
	p := &parser{
		dec:        xml.NewDecoder(r),
		log:        log,
		now:        now,
		todayIndex: -1,
	}
	if err := p.run(); err != nil {
		return Result{}, err
	}

	// Post-parse fallback: no record matched the reference day, so synthesize
	// an empty one and designate it.
	if p.todayIndex < 0 {
		p.todayIndex = len(p.days)
		p.days = append(p.days, model.NewDay(p.now, 0, 0))
		p.log.Debug("no record for the reference day, synthesized one",
			"date", p.now.Format("2006-01-02"))
	}

	return Result{Days: p.days, TodayIndex: p.todayIndex, Anomalies: p.anomalies}, nil
}

// parser is the stack-driven state machine behind Parse. It lives for a
// single pass and is discarded afterwards.
type parser struct {
	dec *xml.Decoder
	log *slog.Logger
	now time.Time

	// stack mirrors the nesting of recognized elements. skipDepth counts how
	// deep we are inside a malformed or unrecognized subtree; while it is
	// non-zero every event is suppressed.
	stack     []element
	skipDepth int

	// Per-day accumulators, reset every time a day element ends.
	worktime  int64
	breaktime int64
	date      time.Time
	hasDate   bool

	// content buffers character data of the current count element. The
	// decoder may split one text node into several CharData tokens around
	// entity references, so the buffer is only parsed at the end tag.
	content strings.Builder

	days       []model.Day
	todayIndex int
	anomalies  []Anomaly
}

func (p *parser) run() error {
	for {
		tok, err := p.dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			p.startElement(t)
		case xml.CharData:
			p.charData(t)
		case xml.EndElement:
			p.endElement()
		}
	}

	// The decoder rejects mismatched tags itself, so anything left here means
	// the document ended mid-element.
	if open := len(p.stack) + p.skipDepth; open != 0 {
		return fmt.Errorf("%w: %d elements still open at end of document", ErrMalformedDocument, open)
	}
	return nil
}

func (p *parser) startElement(t xml.StartElement) {
	if p.skipDepth > 0 {
		p.skipDepth++
		return
	}

	el, ok := elementFromName(t.Name.Local)
	if !ok {
		p.anomaly(UnrecognizedElement, fmt.Sprintf("element %q", t.Name.Local))
		p.skipDepth = 1
		return
	}

	switch el {
	case elementDay:
		date, err := dayDate(t)
		if err != nil {
			// Suppress the whole day so its children cannot leak into the
			// enclosing element.
			p.anomaly(MalformedAttribute, err.Error())
			p.skipDepth = 1
			return
		}
		p.date, p.hasDate = date, true
	case elementWorktime, elementBreaktime:
		p.content.Reset()
	}

	p.stack = append(p.stack, el)
}

func (p *parser) charData(t xml.CharData) {
	if p.skipDepth > 0 {
		return
	}

	switch p.top() {
	case elementWorktime, elementBreaktime:
		// Buffer until the end tag; the text may arrive in fragments.
		p.content.Write(t)
	default:
		content := strings.TrimSpace(string(t))
		if content == "" {
			// Indentation between elements.
			return
		}
		p.log.Debug("ignoring content outside a count element",
			"element", p.top().String(), "content", content)
	}
}

func (p *parser) endElement() {
	if p.skipDepth > 0 {
		p.skipDepth--
		return
	}

	top := elementNone
	if n := len(p.stack); n > 0 {
		top = p.stack[n-1]
		p.stack = p.stack[:n-1]
	}

	switch top {
	case elementWorktime:
		p.setCount(&p.worktime, top)
	case elementBreaktime:
		p.setCount(&p.breaktime, top)
	case elementDay:
		p.finishDay()
	}
}

func (p *parser) finishDay() {
	if p.hasDate {
		day := model.NewDay(p.date, p.worktime, p.breaktime)
		if p.todayIndex < 0 && day.On(p.now) {
			p.todayIndex = len(p.days)
		}
		p.days = append(p.days, day)
		p.log.Debug("parsed a day",
			"date", p.date.Format("2006-01-02"),
			"worktime", p.worktime, "breaktime", p.breaktime)
	} else {
		// A nested day consumed the captured date, so this record cannot be
		// finalized. Its accumulated counts are dropped.
		p.anomaly(MalformedAttribute, "day ended without a captured date, record dropped")
	}

	// Reset regardless of outcome so nothing bleeds into the next day.
	p.worktime, p.breaktime = 0, 0
	p.date, p.hasDate = time.Time{}, false
}

// top returns the element currently being parsed, or elementNone when the
// stack is empty.
func (p *parser) top() element {
	if len(p.stack) == 0 {
		return elementNone
	}
	return p.stack[len(p.stack)-1]
}

// setCount parses the buffered character data of a finished count element
// into dst. An empty element is a no-op, leaving the accumulator untouched.
func (p *parser) setCount(dst *int64, el element) {
	content := strings.TrimSpace(p.content.String())
	p.content.Reset()
	if content == "" {
		return
	}
	n, err := strconv.ParseUint(content, 10, 32)
	if err != nil {
		p.anomaly(MalformedCount, fmt.Sprintf("%s is not a non-negative count: %q", el, content))
		return
	}
	*dst = int64(n)
}

func (p *parser) anomaly(kind AnomalyKind, detail string) {
	a := Anomaly{Kind: kind, Offset: p.dec.InputOffset(), Detail: detail}
	p.anomalies = append(p.anomalies, a)
	p.log.Warn("recovered from a statistics anomaly",
		"kind", kind.String(), "offset", a.Offset, "detail", detail)
}

// dayDate extracts and parses the required date attribute of a day element.
func dayDate(t xml.StartElement) (time.Time, error) {
	for _, attr := range t.Attr {
		if attr.Name.Local == "date" {
			d, err := timecalc.ParseISO8601(attr.Value)
			if err != nil {
				return time.Time{}, fmt.Errorf("day has an unparsable date attribute: %v", err)
			}
			return d, nil
		}
	}
	return time.Time{}, errors.New("day is missing its date attribute")
}
