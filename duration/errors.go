/*
errors.go - Error types for strict-mode parsing

PURPOSE:
  Lenient parsing never errors, so these types only matter to callers
  that opt into Strict mode. Kept in one place for discoverability.

USAGE:
  _, err := duration.ParseInMode("x일", duration.Strict)
  if errors.Is(err, duration.ErrUnparsableSegment) { ... }

SEE ALSO:
  - parse.go: Where these errors originate
*/
package duration

import (
	"errors"
	"fmt"
)

// ErrUnparsableSegment is returned in Strict mode when a duration
// segment is present but not numeric. Use with errors.Is().
var ErrUnparsableSegment = errors.New("unparsable duration segment")

// UnparsableSegmentError carries the offending segment and the raw
// input it came from.
type UnparsableSegmentError struct {
	Raw     string
	Segment string
}

func (e *UnparsableSegmentError) Error() string {
	return fmt.Sprintf("unparsable segment %q in duration %q", e.Segment, e.Raw)
}

func (e *UnparsableSegmentError) Unwrap() error {
	return ErrUnparsableSegment
}
