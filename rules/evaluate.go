/*
evaluate.go - Per-profile entitlement formulas

PURPOSE:
  Given a service summary (completed years/months, attendance rate),
  suggest an annual-leave day count under a chosen rule profile. Each
  profile is a pure function in a strategy table, so adding a profile
  is one table entry plus one function.

FORMULAS (decision values are the contract, prose is not):
  law_basic:
    < 1 year:          min(fullMonths, 11)
    rate < 80%:        fullMonths (uncapped)
    rate >= 80%:       15 + clamp((fullYears-1)/2, 0, 10)
  gw_school_cba:
    < 1 year:          min(fullMonths, 11)
    rate >= 80%:       26 fixed
    rate < 80%:        fullMonths
  gw_institute_cba:   same shape as school, fixed 25
  gw_wage_guideline:
    < 1 year:          min(fullMonths, 11)
    otherwise:         26 fixed, attendance rate ignored
  custom:             no suggestion (manual entry)

BOUNDARIES:
  fullYears == 1 counts as "1 year or more" (the test is < 1).
  attendanceRate == 80 falls into the ">= 80" branch everywhere.

NO SUGGESTION IS NOT AN ERROR:
  SuggestedDays == nil means "no formula applies, enter manually".
  Evaluate never fails; unknown identifiers take the custom branch.

SEE ALSO:
  - catalog.go: The profile registry
*/
package rules

import "fmt"

// =============================================================================
// INPUT / OUTPUT
// =============================================================================

// ServiceSummary is the employment snapshot the formulas run on.
type ServiceSummary struct {
	FullYears      int     // completed years of continuous service
	FullMonths     int     // completed months with perfect attendance
	AttendanceRate float64 // percentage, 0-100
}

// Suggestion is a suggested day count plus the decision path taken.
// SuggestedDays is nil when manual entry is required.
type Suggestion struct {
	SuggestedDays *int
	Description   string
}

func suggest(days int, format string, args ...any) Suggestion {
	return Suggestion{SuggestedDays: &days, Description: fmt.Sprintf(format, args...)}
}

// =============================================================================
// STRATEGY TABLE
// =============================================================================

type evalFunc func(ServiceSummary) Suggestion

var evaluators = map[ID]evalFunc{
	LawBasic:      evaluateLawBasic,
	SchoolCBA:     evaluateSchoolCBA,
	InstituteCBA:  evaluateInstituteCBA,
	WageGuideline: evaluateWageGuideline,
	Custom:        evaluateCustom,
}

// Evaluate runs the formula for the given rule identifier. Unknown
// identifiers fall through to the custom branch; Evaluate never fails.
func Evaluate(id ID, svc ServiceSummary) Suggestion {
	eval, ok := evaluators[id]
	if !ok {
		eval = evaluateCustom
	}
	return eval(svc)
}

// =============================================================================
// FORMULAS
// =============================================================================

func evaluateLawBasic(svc ServiceSummary) Suggestion {
	if svc.FullYears < 1 {
		days := min(svc.FullMonths, 11)
		return suggest(days, "statutory baseline: under 1 year -> %d perfect months -> %d days", svc.FullMonths, days)
	}
	if svc.AttendanceRate < 80 {
		return suggest(svc.FullMonths, "statutory baseline: attendance %v%% < 80 -> %d perfect months -> %d days",
			svc.AttendanceRate, svc.FullMonths, svc.FullMonths)
	}
	extra := max(0, min(10, (svc.FullYears-1)/2))
	days := 15 + extra
	return suggest(days, "statutory baseline: %d years of service -> base 15 + %d additional = %d days",
		svc.FullYears, extra, days)
}

func evaluateSchoolCBA(svc ServiceSummary) Suggestion {
	if svc.FullYears < 1 {
		days := min(svc.FullMonths, 11)
		return suggest(days, "school CBA: under 1 year -> %d months -> %d days", svc.FullMonths, days)
	}
	if svc.AttendanceRate >= 80 {
		return suggest(26, "school CBA: attendance %v%% >= 80 -> 26 days", svc.AttendanceRate)
	}
	return suggest(svc.FullMonths, "school CBA: attendance %v%% < 80 -> %d days", svc.AttendanceRate, svc.FullMonths)
}

func evaluateInstituteCBA(svc ServiceSummary) Suggestion {
	if svc.FullYears < 1 {
		days := min(svc.FullMonths, 11)
		return suggest(days, "institute CBA: under 1 year -> %d months -> %d days", svc.FullMonths, days)
	}
	if svc.AttendanceRate >= 80 {
		return suggest(25, "institute CBA: attendance %v%% >= 80 -> 25 days", svc.AttendanceRate)
	}
	return suggest(svc.FullMonths, "institute CBA: attendance %v%% < 80 -> %d days", svc.AttendanceRate, svc.FullMonths)
}

func evaluateWageGuideline(svc ServiceSummary) Suggestion {
	if svc.FullYears < 1 {
		days := min(svc.FullMonths, 11)
		return suggest(days, "wage guideline: under 1 year -> %d months -> %d days", svc.FullMonths, days)
	}
	return suggest(26, "wage guideline: %d years of service -> 26 days", svc.FullYears)
}

func evaluateCustom(ServiceSummary) Suggestion {
	return Suggestion{SuggestedDays: nil, Description: "custom mode: manual entry"}
}
