/*
Package rules holds the rule-profile catalog and the entitlement
evaluators keyed by it.

PURPOSE:
  Annual-leave entitlement differs by the rule set an employment falls
  under: the statutory baseline, one of the collective bargaining
  agreements, the wage-guideline interpretation, or fully manual entry.
  This package is the registry of those profiles plus the per-profile
  suggestion formulas.

KEY CONCEPTS IN THIS FILE (catalog.go):
  - ID: Identifier of a rule profile (closed set of five)
  - Profile: Display name plus the monetary rounding policy

DESIGN PRINCIPLES:
  1. The catalog is a compile-time constant map, read-only for the
     process lifetime. No mutable singleton.
  2. Get never fails: unknown identifiers resolve to the custom
     profile, which signals "manual entry".

SEE ALSO:
  - evaluate.go: The per-profile suggestion formulas
*/
package rules

// =============================================================================
// RULE IDENTIFIERS
// =============================================================================

// ID identifies a rule profile.
type ID string

const (
	LawBasic      ID = "law_basic"         // statutory baseline
	SchoolCBA     ID = "gw_school_cba"     // school-worker CBA
	InstituteCBA  ID = "gw_institute_cba"  // institute-worker CBA
	WageGuideline ID = "gw_wage_guideline" // ordinary-wage guideline
	Custom        ID = "custom"            // manual entry
)

// =============================================================================
// PROFILE
// =============================================================================

// RoundingMode is how monetary outputs are rounded. Only floor
// (truncate toward zero) is supported today.
type RoundingMode string

const RoundFloor RoundingMode = "floor"

// Profile describes one rule set.
type Profile struct {
	ID           ID
	Name         string
	RoundingStep int64
	RoundingMode RoundingMode
}

// =============================================================================
// CATALOG - Static, read-only
// =============================================================================

var catalog = map[ID]Profile{
	LawBasic:      {ID: LawBasic, Name: "Statutory baseline", RoundingStep: 10, RoundingMode: RoundFloor},
	SchoolCBA:     {ID: SchoolCBA, Name: "School-worker CBA", RoundingStep: 10, RoundingMode: RoundFloor},
	InstituteCBA:  {ID: InstituteCBA, Name: "Institute-worker CBA", RoundingStep: 10, RoundingMode: RoundFloor},
	WageGuideline: {ID: WageGuideline, Name: "Ordinary-wage guideline", RoundingStep: 10, RoundingMode: RoundFloor},
	Custom:        {ID: Custom, Name: "Custom", RoundingStep: 10, RoundingMode: RoundFloor},
}

// listing order for All(); map iteration order is not stable
var catalogOrder = []ID{LawBasic, SchoolCBA, InstituteCBA, WageGuideline, Custom}

// Get returns the profile for id, defaulting to the custom profile for
// unknown identifiers. It never fails.
func Get(id ID) Profile {
	if p, ok := catalog[id]; ok {
		return p
	}
	return catalog[Custom]
}

// All returns every profile in a stable order.
func All() []Profile {
	out := make([]Profile, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		out = append(out, catalog[id])
	}
	return out
}
