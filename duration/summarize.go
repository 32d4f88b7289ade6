/*
summarize.go - Per-category aggregation of attendance records

PURPOSE:
  Reduces an ordered sequence of Records to one summary per category:
  record count, total decimal hours, and two display renderings of the
  total. The output preserves the first-seen order of categories so a
  summary table reads the same way the input sheet did.

RE-EXPANSION:
  The group total (decimal hours) is re-expanded into days/hours/minutes
  using the FIRST record's hours-per-day as the divisor. Groups are
  assumed internally consistent; a mixed group silently uses the first
  record's value.

DISPLAY FORMS:
  TotalDisplay:     "2일 3시간 30분"  (minutes rounded)
  ConvertedDisplay: "2일 3.5시간"     (remainder kept decimal, one place)

SEE ALSO:
  - parse.go: Record and the per-record hour reduction
*/
package duration

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CATEGORY SUMMARY
// =============================================================================

// CategorySummary is the aggregate for one attendance category.
type CategorySummary struct {
	Category          string
	Count             int
	TotalDisplay      string
	TotalHoursDecimal decimal.Decimal
	ConvertedDisplay  string
}

// =============================================================================
// SUMMARIZE
// =============================================================================

// Summarize groups records by category, preserving first-seen category
// order, and reduces each group to a CategorySummary. An empty input
// yields an empty slice, not an error.
func Summarize(records []Record) []CategorySummary {
	if len(records) == 0 {
		return []CategorySummary{}
	}

	var order []string
	grouped := make(map[string][]Record)
	for _, r := range records {
		if _, seen := grouped[r.Category]; !seen {
			order = append(order, r.Category)
		}
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	out := make([]CategorySummary, 0, len(order))
	for _, category := range order {
		out = append(out, summarizeGroup(category, grouped[category]))
	}
	return out
}

func summarizeGroup(category string, recs []Record) CategorySummary {
	total := decimal.Zero
	for _, r := range recs {
		total = total.Add(r.TotalHours())
	}

	// Re-expand using the first record's hours-per-day.
	hpd := recs[0].hoursPerDay()
	days := total.Div(hpd).Floor()
	remain := total.Sub(days.Mul(hpd))
	hours := remain.Floor()
	minutes := remain.Sub(hours).Mul(decimal.NewFromInt(60)).Round(0)

	return CategorySummary{
		Category:          category,
		Count:             len(recs),
		TotalDisplay:      fmt.Sprintf("%d일 %d시간 %d분", days.IntPart(), hours.IntPart(), minutes.IntPart()),
		TotalHoursDecimal: total.Round(1),
		ConvertedDisplay:  fmt.Sprintf("%d일 %s시간", days.IntPart(), remain.Round(1)),
	}
}
