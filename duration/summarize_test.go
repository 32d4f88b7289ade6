/*
summarize_test.go - Specification tests for per-category aggregation

ORGANIZATION:
  1. Grouping - category totals and first-seen ordering
  2. Re-expansion - decimal hours back to days/hours/minutes
  3. Edge cases - empty input, mixed hours-per-day groups
*/
package duration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/duration"
)

func rec(category, raw string, hoursPerDay string) duration.Record {
	return duration.Record{Category: category, RawDuration: raw, HoursPerDay: dec(hoursPerDay)}
}

// =============================================================================
// GROUPING
// =============================================================================

func TestSummarize_GroupsAndReExpands(t *testing.T) {
	// GIVEN: Two sick-leave records totalling 13h + 6.5h at 8h/day
	// WHEN: Summarizing
	// THEN: 19.5 decimal hours, re-expanded as 2 days 3 hours 30 minutes

	records := []duration.Record{
		rec("병가", "1일5시간", "8"),   // 13h
		rec("병가", "6시간30분", "8"), // 6.5h
	}

	summaries := duration.Summarize(records)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "병가", s.Category)
	assert.Equal(t, 2, s.Count)
	assert.True(t, dec("19.5").Equal(s.TotalHoursDecimal), "total hours: got %s", s.TotalHoursDecimal)
	assert.Equal(t, "2일 3시간 30분", s.TotalDisplay)
	assert.Equal(t, "2일 3.5시간", s.ConvertedDisplay)
}

func TestSummarize_FirstSeenCategoryOrder(t *testing.T) {
	// GIVEN: Records whose categories interleave
	// THEN: Output order is the order each category first appeared

	records := []duration.Record{
		rec("병가", "1일", "8"),
		rec("연가", "2시간", "8"),
		rec("병가", "3시간", "8"),
		rec("공가", "1일", "8"),
		rec("연가", "1일", "8"),
	}

	summaries := duration.Summarize(records)
	require.Len(t, summaries, 3)
	assert.Equal(t, "병가", summaries[0].Category)
	assert.Equal(t, "연가", summaries[1].Category)
	assert.Equal(t, "공가", summaries[2].Category)

	assert.Equal(t, 2, summaries[0].Count)
	assert.Equal(t, 2, summaries[1].Count)
	assert.Equal(t, 1, summaries[2].Count)
}

func TestSummarize_BareNumberRecords(t *testing.T) {
	// "0.5" and "2.5" are day counts
	records := []duration.Record{
		rec("연가", "0.5", "8"),
		rec("연가", "2.5", "8"),
	}

	summaries := duration.Summarize(records)
	require.Len(t, summaries, 1)
	assert.True(t, dec("24").Equal(summaries[0].TotalHoursDecimal), "3 days at 8h = 24h, got %s", summaries[0].TotalHoursDecimal)
	assert.Equal(t, "3일 0시간 0분", summaries[0].TotalDisplay)
}

// =============================================================================
// EDGE CASES
// =============================================================================

func TestSummarize_EmptyInput(t *testing.T) {
	// Empty input is an empty result, not an error
	summaries := duration.Summarize(nil)
	require.NotNil(t, summaries)
	assert.Len(t, summaries, 0)

	summaries = duration.Summarize([]duration.Record{})
	assert.Len(t, summaries, 0)
}

func TestSummarize_MixedHoursPerDay_UsesFirstRecord(t *testing.T) {
	// GIVEN: A group whose records disagree on hours-per-day
	// THEN: The FIRST record's value drives the re-expansion.
	// Groups are assumed internally consistent; this pins the tiebreak.

	records := []duration.Record{
		rec("병가", "1일", "8"), // 8h
		rec("병가", "1일", "4"), // 4h
	}

	summaries := duration.Summarize(records)
	require.Len(t, summaries, 1)

	// 12 total hours, expanded at 8h/day: 1 day 4 hours
	assert.True(t, dec("12").Equal(summaries[0].TotalHoursDecimal))
	assert.Equal(t, "1일 4시간 0분", summaries[0].TotalDisplay)
}

func TestSummarize_UnparsableRecordCountsAsZero(t *testing.T) {
	// Lenient policy: a mangled record contributes zero hours but still
	// counts toward the group's record count.
	records := []duration.Record{
		rec("병가", "??", "8"),
		rec("병가", "4시간", "8"),
	}

	summaries := duration.Summarize(records)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].Count)
	assert.True(t, dec("4").Equal(summaries[0].TotalHoursDecimal))
}
