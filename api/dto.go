/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the internal domain model from the external API contract,
  allowing field renaming, API-specific defaults, and version evolution
  without touching the engine packages.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Rules:
    RuleProfileDTO

  Summaries:
    SummarizeRequest, DurationRecordDTO, CategorySummaryDTO

  Calculation:
    CalculateRequest, ServiceSummaryDTO, WageSpecDTO,
    CalculateResponse, SuggestionDTO, PayoutDTO

VALIDATION:
  The engine is deliberately lenient, so DTOs carry no validation tags.
  Strict duration parsing is opt-in via the handler, not the DTO.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/leave-engine/duration"
	"github.com/warp/leave-engine/pipeline"
	"github.com/warp/leave-engine/rules"
	"github.com/warp/leave-engine/wage"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// RuleProfileDTO represents a rule profile in API responses.
type RuleProfileDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RoundingStep int64  `json:"rounding_step"`
	RoundingMode string `json:"rounding_mode"`
}

// DurationRecordDTO is one attendance line from the client.
type DurationRecordDTO struct {
	Category    string  `json:"category"`
	Duration    string  `json:"duration"`
	HoursPerDay float64 `json:"hours_per_day,omitempty"`
}

// SummarizeRequest is the request to aggregate attendance records.
type SummarizeRequest struct {
	Records []DurationRecordDTO `json:"records"`
}

// CategorySummaryDTO is the aggregate for one attendance category.
type CategorySummaryDTO struct {
	Category          string  `json:"category"`
	Count             int     `json:"count"`
	TotalDisplay      string  `json:"total_display"`
	TotalHoursDecimal float64 `json:"total_hours_decimal"`
	ConvertedDisplay  string  `json:"converted_display"`
}

// ServiceSummaryDTO is the employment snapshot the formulas run on.
type ServiceSummaryDTO struct {
	FullYears      int     `json:"full_years"`
	FullMonths     int     `json:"full_months"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// WageSpecDTO is a caller-supplied wage specification.
type WageSpecDTO struct {
	WageType        string  `json:"wage_type"`
	WageAmount      float64 `json:"wage_amount"`
	HoursPerDay     float64 `json:"hours_per_day,omitempty"`
	MonthlyWorkDays float64 `json:"monthly_work_days,omitempty"`
}

// CalculateRequest is the request to run the full pipeline.
type CalculateRequest struct {
	RuleID      string            `json:"rule_id"`
	Service     ServiceSummaryDTO `json:"service"`
	Wage        WageSpecDTO       `json:"wage"`
	GrantedDays float64           `json:"granted_days"`
	UsedDays    float64           `json:"used_days"`
}

// SuggestionDTO carries the suggested day count (null = manual entry)
// and the decision path taken.
type SuggestionDTO struct {
	SuggestedDays *int   `json:"suggested_days"`
	Description   string `json:"description"`
}

// PayoutDTO carries the raw and truncated monetary outputs.
type PayoutDTO struct {
	GrantedDays      float64 `json:"granted_days"`
	UsedDays         float64 `json:"used_days"`
	UnusedDays       float64 `json:"unused_days"`
	DailyWageRaw     float64 `json:"daily_wage_raw"`
	PayoutRaw        float64 `json:"payout_raw"`
	DailyWageRounded int64   `json:"daily_wage_rounded"`
	PayoutRounded    int64   `json:"payout_rounded"`
}

// CalculateResponse is the assembled pipeline result.
type CalculateResponse struct {
	Rule       RuleProfileDTO `json:"rule"`
	Suggestion SuggestionDTO  `json:"suggestion"`
	Payout     PayoutDTO      `json:"payout"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toRuleProfileDTO(p rules.Profile) RuleProfileDTO {
	return RuleProfileDTO{
		ID:           string(p.ID),
		Name:         p.Name,
		RoundingStep: p.RoundingStep,
		RoundingMode: string(p.RoundingMode),
	}
}

func toRecord(dto DurationRecordDTO) duration.Record {
	return duration.Record{
		Category:    dto.Category,
		RawDuration: dto.Duration,
		HoursPerDay: decimal.NewFromFloat(dto.HoursPerDay),
	}
}

func toCategorySummaryDTO(s duration.CategorySummary) CategorySummaryDTO {
	total, _ := s.TotalHoursDecimal.Float64()
	return CategorySummaryDTO{
		Category:          s.Category,
		Count:             s.Count,
		TotalDisplay:      s.TotalDisplay,
		TotalHoursDecimal: total,
		ConvertedDisplay:  s.ConvertedDisplay,
	}
}

func toWageSpec(dto WageSpecDTO) wage.Spec {
	return wage.Spec{
		Type:            wage.Type(dto.WageType),
		Amount:          decimal.NewFromFloat(dto.WageAmount),
		HoursPerDay:     decimal.NewFromFloat(dto.HoursPerDay),
		MonthlyWorkDays: decimal.NewFromFloat(dto.MonthlyWorkDays),
	}
}

func toServiceSummary(dto ServiceSummaryDTO) rules.ServiceSummary {
	return rules.ServiceSummary{
		FullYears:      dto.FullYears,
		FullMonths:     dto.FullMonths,
		AttendanceRate: dto.AttendanceRate,
	}
}

func toCalculateResponse(res pipeline.Result, profile rules.Profile) CalculateResponse {
	granted, _ := res.Payout.GrantedDays.Float64()
	used, _ := res.Payout.UsedDays.Float64()
	unused, _ := res.Payout.UnusedDays.Float64()
	dailyRaw, _ := res.Payout.DailyWageRaw.Float64()
	payoutRaw, _ := res.Payout.PayoutRaw.Float64()

	return CalculateResponse{
		Rule: toRuleProfileDTO(profile),
		Suggestion: SuggestionDTO{
			SuggestedDays: res.Suggestion.SuggestedDays,
			Description:   res.Suggestion.Description,
		},
		Payout: PayoutDTO{
			GrantedDays:      granted,
			UsedDays:         used,
			UnusedDays:       unused,
			DailyWageRaw:     dailyRaw,
			PayoutRaw:        payoutRaw,
			DailyWageRounded: res.Payout.DailyWageRounded,
			PayoutRounded:    res.Payout.PayoutRounded,
		},
	}
}
