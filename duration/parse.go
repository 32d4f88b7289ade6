/*
Package duration parses and aggregates attendance durations.

PURPOSE:
  Attendance systems export leave durations as free-form strings with
  Korean unit markers ("일" day, "시간" hour, "분" minute), or as a bare
  decimal day count. This package normalizes those strings into a
  (days, hours, minutes) triple and reduces them to decimal hours so
  downstream calculations work on a single quantity.

KEY CONCEPTS IN THIS FILE (parse.go):
  - Record: One attendance line (category, raw duration, hours per day)
  - Parsed: The normalized (days, hours, minutes) triple
  - Mode: Lenient (parse failures become zero) or Strict (failures error)

ACCEPTED INPUT SHAPES:
  "1일 5시간"     1 day, 5 hours
  "3시간 30분"    3 hours, 30 minutes
  "1일"           1 day
  "30분"          30 minutes
  "2.5"           bare number = 2.5 days

PARSE MODES:
  Lenient:
    - Unparsable numeric segments become zero, never an error
    - This mirrors how upstream exports behave: a mangled cell should
      degrade to zero, not abort the whole sheet
  Strict:
    - Any segment that is present but not numeric is an error
    - For callers that validate input before accepting it

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Immutability: Record is a value type, never mutated after construction
  3. Lenience is a named mode, not an accident: callers choose it

USAGE:
  p := duration.Parse("1일5시간")                  // lenient
  hours := p.TotalHours(decimal.NewFromInt(8))    // 13

SEE ALSO:
  - summarize.go: Per-category aggregation of Records
*/
package duration

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// UNIT MARKERS - Retained literally as the wire format
// =============================================================================

const (
	markerDay    = "일"
	markerHour   = "시간"
	markerMinute = "분"
)

// =============================================================================
// PARSE MODE
// =============================================================================

// Mode selects how numeric parse failures are handled.
type Mode string

const (
	// Lenient maps every unparsable segment to zero. This is the default
	// and matches the behavior attendance exports rely on.
	Lenient Mode = "lenient"

	// Strict surfaces unparsable segments as errors.
	Strict Mode = "strict"
)

// =============================================================================
// RECORD - One attendance line
// =============================================================================

// Record is a single attendance duration line. HoursPerDay is the
// scheduled working hours that one "day" expands to (zero means 8).
type Record struct {
	Category    string
	RawDuration string
	HoursPerDay decimal.Decimal
}

// DefaultHoursPerDay is used when a Record carries no HoursPerDay.
var DefaultHoursPerDay = decimal.NewFromInt(8)

func (r Record) hoursPerDay() decimal.Decimal {
	if r.HoursPerDay.IsPositive() {
		return r.HoursPerDay
	}
	return DefaultHoursPerDay
}

// TotalHours reduces the record's raw duration to decimal hours, using
// the record's HoursPerDay as the day expansion. Always lenient.
func (r Record) TotalHours() decimal.Decimal {
	return Parse(r.RawDuration).TotalHours(r.hoursPerDay())
}

// =============================================================================
// PARSED - Normalized triple
// =============================================================================

// Parsed is a normalized duration. All components are non-negative for
// well-formed input; nothing enforces sign here.
type Parsed struct {
	Days    decimal.Decimal
	Hours   decimal.Decimal
	Minutes decimal.Decimal
}

// TotalHours converts the triple into a single decimal-hour quantity:
// days*hoursPerDay + hours + minutes/60.
func (p Parsed) TotalHours(hoursPerDay decimal.Decimal) decimal.Decimal {
	total := p.Days.Mul(hoursPerDay)
	total = total.Add(p.Hours)
	total = total.Add(p.Minutes.Div(decimal.NewFromInt(60)))
	return total
}

// IsZero reports whether all three components are zero.
func (p Parsed) IsZero() bool {
	return p.Days.IsZero() && p.Hours.IsZero() && p.Minutes.IsZero()
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses a raw duration string leniently: unparsable segments
// become zero and are never surfaced.
func Parse(raw string) Parsed {
	p, _ := ParseInMode(raw, Lenient)
	return p
}

// ParseInMode parses a raw duration string in the given mode. The error
// is always nil in Lenient mode. An empty string is zero in both modes.
//
// Scanning is left-to-right over the fixed marker order day, hour,
// minute; each marker is optional. If no marker contributed a value,
// the entire string is attempted as a bare number of days.
func ParseInMode(raw string, mode Mode) (Parsed, error) {
	txt := strings.TrimSpace(raw)
	if txt == "" {
		return Parsed{}, nil
	}

	var p Parsed
	marked := false

	// The scan only advances past a marker when its segment parses, so
	// a mangled segment leaves the remainder (and everything after it)
	// at zero rather than resynchronizing mid-garbage.
	if before, after, found := strings.Cut(txt, markerDay); found {
		marked = true
		d, err := parseNumber(raw, before, mode)
		if err != nil {
			return Parsed{}, err
		}
		if d != nil {
			p.Days = *d
			txt = after
		}
	}
	if before, after, found := strings.Cut(txt, markerHour); found {
		marked = true
		d, err := parseNumber(raw, before, mode)
		if err != nil {
			return Parsed{}, err
		}
		if d != nil {
			p.Hours = *d
			txt = after
		}
	}
	if before, _, found := strings.Cut(txt, markerMinute); found {
		marked = true
		d, err := parseNumber(raw, before, mode)
		if err != nil {
			return Parsed{}, err
		}
		if d != nil {
			p.Minutes = *d
		}
	}

	// No marker: a bare number means a day count ("2.5" = 2.5 days).
	if !marked {
		d, err := parseNumber(raw, strings.TrimSpace(raw), mode)
		if err != nil {
			return Parsed{}, err
		}
		if d != nil {
			p.Days = *d
		}
	}

	return p, nil
}

// parseNumber parses one numeric segment. A nil result with a nil
// error means the segment was unparsable and leniently skipped.
func parseNumber(raw, segment string, mode Mode) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(segment))
	if err != nil {
		if mode == Strict {
			return nil, &UnparsableSegmentError{Raw: raw, Segment: segment}
		}
		return nil, nil
	}
	return &d, nil
}
