/*
Package pipeline runs the full entitlement-and-payout computation for
one employee record.

PURPOSE:
  The orchestration entry point: look up the rule profile, evaluate the
  entitlement suggestion, value the unused leave, and truncate the
  monetary outputs with the profile's rounding policy. Pure function:
  no I/O, no retained state, safe to call concurrently.

SEE ALSO:
  - rules: Profile catalog and entitlement formulas
  - wage: Daily wage, payout, and rounding
*/
package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/warp/leave-engine/rules"
	"github.com/warp/leave-engine/wage"
)

// =============================================================================
// RESULT
// =============================================================================

// Result is the assembled output of one pipeline run. Allocated fresh
// per invocation; nothing is shared between calls.
type Result struct {
	Rule       RuleInfo
	Suggestion rules.Suggestion
	Payout     PayoutResult
}

// RuleInfo identifies the resolved rule profile.
type RuleInfo struct {
	ID   string
	Name string
}

// PayoutResult carries both the raw and the truncated monetary values.
// The rounded fields are always multiples of the profile's step.
type PayoutResult struct {
	GrantedDays      decimal.Decimal
	UsedDays         decimal.Decimal
	UnusedDays       decimal.Decimal
	DailyWageRaw     decimal.Decimal
	PayoutRaw        decimal.Decimal
	DailyWageRounded int64
	PayoutRounded    int64
}

// =============================================================================
// RUN
// =============================================================================

// Run computes the entitlement suggestion and unused-leave payout for a
// single employee record. Unknown rule identifiers resolve to the
// custom profile; Run never fails.
func Run(ruleID rules.ID, svc rules.ServiceSummary, spec wage.Spec, grantedDays, usedDays decimal.Decimal) Result {
	profile := rules.Get(ruleID)
	suggestion := rules.Evaluate(ruleID, svc)

	daily := spec.DailyWage()
	payout := wage.ComputePayout(grantedDays, usedDays, daily)

	return Result{
		Rule:       RuleInfo{ID: string(profile.ID), Name: profile.Name},
		Suggestion: suggestion,
		Payout: PayoutResult{
			GrantedDays:      grantedDays,
			UsedDays:         usedDays,
			UnusedDays:       payout.UnusedDays,
			DailyWageRaw:     daily,
			PayoutRaw:        payout.Raw,
			DailyWageRounded: wage.RoundDownToStep(daily, profile.RoundingStep),
			PayoutRounded:    wage.RoundDownToStep(payout.Raw, profile.RoundingStep),
		},
	}
}
