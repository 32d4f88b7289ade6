/*
handlers.go - HTTP API handlers for the leave calculation engine

PURPOSE:
  Exposes the entitlement engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine
  packages. The engine is pure and stateless, so handlers hold no
  per-request state and are safe under concurrent requests.

ENDPOINTS:
  Rules:
    GET  /api/rules          List all rule profiles
    GET  /api/rules/{id}     Get one profile (unknown ids resolve to custom)

  Summaries:
    POST /api/summarize      Aggregate attendance records by category

  Calculation:
    POST /api/calculate      Run the full entitlement + payout pipeline

REQUEST FLOW:
  1. Parse HTTP request
  2. Convert DTOs to engine types
  3. Call engine (duration, rules, wage, pipeline)
  4. Serialize response

ERROR HANDLING:
  The engine never fails, so the only error responses are:
  - 400: Malformed JSON, or strict-mode parse failures on /summarize
  The "no formula applies" outcome is suggested_days = null with 200.

STRICT MODE:
  POST /api/summarize?mode=strict validates every duration string and
  returns 400 on the first unparsable segment. The default is the
  engine's lenient policy: bad segments degrade to zero.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/warp/leave-engine/duration"
	"github.com/warp/leave-engine/pipeline"
	"github.com/warp/leave-engine/rules"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds handler configuration. The engine itself is stateless;
// the only knob is the default duration parse mode.
type Handler struct {
	DefaultMode duration.Mode
}

// NewHandler creates a handler with the lenient parse mode.
func NewHandler() *Handler {
	return &Handler{DefaultMode: duration.Lenient}
}

// =============================================================================
// RULE HANDLERS
// =============================================================================

// ListRules returns every rule profile in the catalog.
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	profiles := rules.All()
	dtos := make([]RuleProfileDTO, len(profiles))
	for i, p := range profiles {
		dtos[i] = toRuleProfileDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRule returns a single rule profile. The catalog never fails:
// unknown identifiers resolve to the custom profile.
func (h *Handler) GetRule(w http.ResponseWriter, r *http.Request) {
	id := rules.ID(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, toRuleProfileDTO(rules.Get(id)))
}

// =============================================================================
// SUMMARY HANDLERS
// =============================================================================

// Summarize aggregates attendance records by category.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	mode := h.DefaultMode
	if r.URL.Query().Get("mode") == string(duration.Strict) {
		mode = duration.Strict
	}

	records := make([]duration.Record, len(req.Records))
	for i, dto := range req.Records {
		if mode == duration.Strict {
			if _, err := duration.ParseInMode(dto.Duration, duration.Strict); err != nil {
				writeError(w, http.StatusBadRequest, "Unparsable duration", err)
				return
			}
		}
		records[i] = toRecord(dto)
	}

	summaries := duration.Summarize(records)
	dtos := make([]CategorySummaryDTO, len(summaries))
	for i, s := range summaries {
		dtos[i] = toCategorySummaryDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// Calculate runs the full entitlement + payout pipeline for one record.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id := rules.ID(req.RuleID)
	result := pipeline.Run(
		id,
		toServiceSummary(req.Service),
		toWageSpec(req.Wage),
		decimal.NewFromFloat(req.GrantedDays),
		decimal.NewFromFloat(req.UsedDays),
	)

	writeJSON(w, http.StatusOK, toCalculateResponse(result, rules.Get(id)))
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
