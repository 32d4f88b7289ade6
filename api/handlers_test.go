/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Rule catalog endpoints (list, get, custom fallback)
- Attendance summarization (lenient and strict modes)
- Full calculation round-trip, including the null suggestion
*/
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(NewRouter(NewHandler(), nil))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// =============================================================================
// RULE ENDPOINTS
// =============================================================================

func TestListRules(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/rules")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	dtos := decode[[]RuleProfileDTO](t, resp)
	require.Len(t, dtos, 5)
	assert.Equal(t, "law_basic", dtos[0].ID)
	for _, dto := range dtos {
		assert.Equal(t, int64(10), dto.RoundingStep)
		assert.Equal(t, "floor", dto.RoundingMode)
	}
}

func TestGetRule_UnknownResolvesToCustom(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/rules/no_such_rule")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	dto := decode[RuleProfileDTO](t, resp)
	assert.Equal(t, "custom", dto.ID)
}

// =============================================================================
// SUMMARIZE
// =============================================================================

func TestSummarize(t *testing.T) {
	srv := newTestServer(t)

	req := SummarizeRequest{Records: []DurationRecordDTO{
		{Category: "병가", Duration: "1일5시간", HoursPerDay: 8},
		{Category: "병가", Duration: "6시간30분", HoursPerDay: 8},
		{Category: "연가", Duration: "2.5", HoursPerDay: 8},
	}}

	resp := postJSON(t, srv.URL+"/api/summarize", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	dtos := decode[[]CategorySummaryDTO](t, resp)
	require.Len(t, dtos, 2)

	assert.Equal(t, "병가", dtos[0].Category)
	assert.Equal(t, 2, dtos[0].Count)
	assert.InDelta(t, 19.5, dtos[0].TotalHoursDecimal, 1e-9)
	assert.Equal(t, "2일 3시간 30분", dtos[0].TotalDisplay)
	assert.Equal(t, "2일 3.5시간", dtos[0].ConvertedDisplay)

	assert.Equal(t, "연가", dtos[1].Category)
	assert.InDelta(t, 20.0, dtos[1].TotalHoursDecimal, 1e-9)
}

func TestSummarize_EmptyRecords(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/summarize", SummarizeRequest{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]CategorySummaryDTO](t, resp), 0)
}

func TestSummarize_StrictMode(t *testing.T) {
	// GIVEN: A mangled duration string
	// WHEN: Posting with ?mode=strict
	// THEN: 400 with the offending segment; lenient mode accepts it as zero

	srv := newTestServer(t)
	req := SummarizeRequest{Records: []DurationRecordDTO{
		{Category: "병가", Duration: "x일", HoursPerDay: 8},
	}}

	resp := postJSON(t, srv.URL+"/api/summarize?mode=strict", req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errResp := decode[ErrorResponse](t, resp)
	assert.Equal(t, "Unparsable duration", errResp.Error)

	// Default (lenient): same payload, 200 with a zero-hour summary
	resp = postJSON(t, srv.URL+"/api/summarize", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dtos := decode[[]CategorySummaryDTO](t, resp)
	require.Len(t, dtos, 1)
	assert.Zero(t, dtos[0].TotalHoursDecimal)
}

// =============================================================================
// CALCULATE
// =============================================================================

func TestCalculate_FullPipeline(t *testing.T) {
	srv := newTestServer(t)

	req := CalculateRequest{
		RuleID:      "law_basic",
		Service:     ServiceSummaryDTO{FullYears: 3, FullMonths: 0, AttendanceRate: 95},
		Wage:        WageSpecDTO{WageType: "monthly", WageAmount: 2000000, MonthlyWorkDays: 20},
		GrantedDays: 16,
		UsedDays:    5,
	}

	resp := postJSON(t, srv.URL+"/api/calculate", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[CalculateResponse](t, resp)
	assert.Equal(t, "law_basic", body.Rule.ID)
	require.NotNil(t, body.Suggestion.SuggestedDays)
	assert.Equal(t, 16, *body.Suggestion.SuggestedDays)
	assert.InDelta(t, 11, body.Payout.UnusedDays, 1e-9)
	assert.Equal(t, int64(100000), body.Payout.DailyWageRounded)
	assert.Equal(t, int64(1100000), body.Payout.PayoutRounded)
}

func TestCalculate_CustomHasNullSuggestion(t *testing.T) {
	srv := newTestServer(t)

	req := CalculateRequest{
		RuleID:      "custom",
		Service:     ServiceSummaryDTO{FullYears: 5, AttendanceRate: 100},
		Wage:        WageSpecDTO{WageType: "daily", WageAmount: 90000},
		GrantedDays: 10,
		UsedDays:    4,
	}

	resp := postJSON(t, srv.URL+"/api/calculate", req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Check the raw JSON: suggested_days must serialize as null
	var raw map[string]json.RawMessage
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	var suggestion map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["suggestion"], &suggestion))
	assert.Equal(t, "null", string(suggestion["suggested_days"]))
}

func TestCalculate_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/calculate", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
