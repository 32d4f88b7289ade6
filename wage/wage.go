/*
Package wage computes daily wages and unused-leave payouts.

PURPOSE:
  Turns a wage specification (hourly / daily / monthly) into a daily
  wage, values granted-but-unused leave days at that rate, and applies
  the 10-won truncation rule to the monetary outputs.

KEY CONCEPTS:
  - Spec: Wage type, amount, and the divisors that normalize it to a day
  - Payout: Unused day count and the raw (untruncated) payout
  - RoundDownToStep: Truncation to the nearest lower multiple of a step

LENIENCE:
  An unknown wage type yields a zero daily wage, and a non-positive
  rounding step yields zero, rather than an error. Malformed input
  degrades to zero money, never to a failure the caller must handle.

USAGE:
  spec := wage.Spec{Type: wage.Monthly, Amount: decimal.NewFromInt(2000000)}
  daily := spec.DailyWage()                       // 100000
  p := wage.ComputePayout(granted, used, daily)
  rounded := wage.RoundDownToStep(p.Raw, 10)
*/
package wage

import "github.com/shopspring/decimal"

// =============================================================================
// WAGE SPEC
// =============================================================================

// Type is how the wage amount is denominated.
type Type string

const (
	Hourly  Type = "hourly"
	Daily   Type = "daily"
	Monthly Type = "monthly"
)

// Defaults applied when a Spec leaves the divisors zero.
var (
	DefaultHoursPerDay     = decimal.NewFromInt(8)
	DefaultMonthlyWorkDays = decimal.NewFromInt(20)
)

// Spec is a caller-supplied wage specification.
type Spec struct {
	Type            Type
	Amount          decimal.Decimal
	HoursPerDay     decimal.Decimal // zero means 8
	MonthlyWorkDays decimal.Decimal // zero means 20
}

// DailyWage normalizes the spec to a one-day wage. Unknown wage types
// and a non-positive monthly divisor yield zero.
func (s Spec) DailyWage() decimal.Decimal {
	switch s.Type {
	case Hourly:
		hpd := s.HoursPerDay
		if !hpd.IsPositive() {
			hpd = DefaultHoursPerDay
		}
		return s.Amount.Mul(hpd)
	case Daily:
		return s.Amount
	case Monthly:
		mwd := s.MonthlyWorkDays
		if mwd.IsZero() {
			mwd = DefaultMonthlyWorkDays
		}
		if !mwd.IsPositive() {
			return decimal.Zero
		}
		return s.Amount.Div(mwd)
	default:
		return decimal.Zero
	}
}

// =============================================================================
// PAYOUT
// =============================================================================

// Payout is the raw valuation of unused leave. Raw is untruncated;
// apply RoundDownToStep for the payable amount.
type Payout struct {
	UnusedDays decimal.Decimal
	Raw        decimal.Decimal
}

// ComputePayout values granted-but-unused days at the daily wage.
// UnusedDays is clamped at zero, so over-consumption never produces a
// negative payout.
func ComputePayout(grantedDays, usedDays, dailyWage decimal.Decimal) Payout {
	unused := grantedDays.Sub(usedDays)
	if unused.IsNegative() {
		unused = decimal.Zero
	}
	return Payout{UnusedDays: unused, Raw: unused.Mul(dailyWage)}
}

// =============================================================================
// ROUNDING
// =============================================================================

// RoundDownToStep truncates amount to the nearest lower multiple of
// step: 11111 -> 11110, 14567 -> 14560. A non-positive step yields 0.
func RoundDownToStep(amount decimal.Decimal, step int64) int64 {
	if step <= 0 {
		return 0
	}
	return amount.IntPart() / step * step
}
