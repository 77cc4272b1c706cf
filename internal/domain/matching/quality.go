package matching

import (
	"strings"

	"wavemate/internal/domain/profile"
)

// Tern is a three-valued criterion verdict. A criterion absent from the
// request, or one either side lacks data for, stays Unset: neither a
// match nor a mismatch.
type Tern int8

const (
	TernUnset Tern = iota
	TernMatch
	TernMismatch
)

// Criterion names one independently verifiable request criterion.
type Criterion string

const (
	CriterionDestination Criterion = "destination"
	CriterionOrigin      Criterion = "origin_country"
	CriterionBoard       Criterion = "board_type"
	CriterionSkill       Criterion = "skill_level"
	CriterionAge         Criterion = "age_range"
	CriterionBudget      Criterion = "budget"
	CriterionExperience  Criterion = "experience_tier"
	CriterionGroup       Criterion = "group_type"
	CriterionTags        Criterion = "tags"
)

// Quality is the evidentiary strength of an outcome: how many declared
// criteria the candidate verifiably satisfies, and how complete its
// profile data is. It exists because the soft scores of Layers 3-4 can be
// numerically high for a candidate that satisfies almost nothing asked for.
type Quality struct {
	Exact            bool
	MatchCount       int
	Criteria         map[Criterion]Tern
	DataCompleteness float64
}

var completenessChecklist = []func(profile.Profile) bool{
	func(p profile.Profile) bool { return p.Age > 0 },
	func(p profile.Profile) bool { return strings.TrimSpace(p.OriginCountry) != "" },
	func(p profile.Profile) bool { return strings.TrimSpace(p.BoardType) != "" },
	func(p profile.Profile) bool { return p.SkillLevel > 0 },
	func(p profile.Profile) bool { return p.ExperienceTier > 0 },
}

func computeQuality(out Outcome, sctx Context) Quality {
	cand := out.Candidate
	req := sctx.Request
	q := Quality{Criteria: make(map[Criterion]Tern)}

	if sctx.Destination.Requested() {
		if cand.DaysIn(sctx.Destination.Countries) > 0 || len(cand.VisitsIn(sctx.Destination.Countries)) > 0 {
			q.Criteria[CriterionDestination] = TernMatch
		} else {
			q.Criteria[CriterionDestination] = TernMismatch
		}
	}

	q.Criteria[CriterionOrigin] = ternEqualFold(requestedOrigins(req), cand.OriginCountry)
	q.Criteria[CriterionBoard] = ternEqualFold(requestedBoards(req), cand.BoardType)
	q.Criteria[CriterionSkill] = ternSkill(req, cand.SkillLevel)
	q.Criteria[CriterionAge] = ternAge(req, cand.Age)
	q.Criteria[CriterionBudget] = ternTierEqual(req.Budget, cand.Budget)
	q.Criteria[CriterionExperience] = ternExperience(req, cand.ExperienceTier)
	q.Criteria[CriterionGroup] = ternGroup(req, cand.GroupType)
	q.Criteria[CriterionTags] = ternTags(req, cand)

	mismatches := 0
	for _, v := range q.Criteria {
		switch v {
		case TernMatch:
			q.MatchCount++
		case TernMismatch:
			mismatches++
		}
	}
	q.Exact = mismatches == 0 && q.MatchCount > 0

	populated := 0
	for _, check := range completenessChecklist {
		if check(cand) {
			populated++
		}
	}
	q.DataCompleteness = float64(populated) / float64(len(completenessChecklist))

	return q
}

// ApplyGate drops candidates whose evidentiary support is too thin. When
// the gate would empty the result set it relaxes to country-only matches
// before giving up. Requests without any criteria bypass the gate.
func ApplyGate(outcomes []Outcome, sctx Context) (kept []Outcome, gated []Outcome) {
	if !sctx.Request.HasCriteria() {
		return outcomes, nil
	}

	kept = make([]Outcome, 0, len(outcomes))
	gated = make([]Outcome, 0)
	for _, o := range outcomes {
		if o.Quality.MatchCount > 1 {
			kept = append(kept, o)
		} else {
			gated = append(gated, o)
		}
	}
	if len(kept) > 0 {
		return kept, gated
	}

	// Relaxed rule: keep anyone who at least matches the destination country.
	kept = kept[:0]
	gated = gated[:0]
	for _, o := range outcomes {
		if o.Quality.Criteria[CriterionDestination] == TernMatch {
			kept = append(kept, o)
		} else {
			gated = append(gated, o)
		}
	}
	return kept, gated
}

func requestedOrigins(req MatchRequest) []string {
	if req.NonNegotiable != nil && len(req.NonNegotiable.OriginCountries) > 0 {
		return req.NonNegotiable.OriginCountries
	}
	if req.Priorities != nil && req.Priorities.OriginCountry != "" {
		return []string{req.Priorities.OriginCountry}
	}
	return nil
}

func requestedBoards(req MatchRequest) []string {
	if req.NonNegotiable != nil && len(req.NonNegotiable.BoardTypes) > 0 {
		return req.NonNegotiable.BoardTypes
	}
	if req.Priorities != nil && req.Priorities.BoardType != "" {
		return []string{req.Priorities.BoardType}
	}
	return nil
}

func ternEqualFold(wanted []string, actual string) Tern {
	if len(wanted) == 0 {
		return TernUnset
	}
	if strings.TrimSpace(actual) == "" {
		return TernUnset
	}
	if containsFold(wanted, actual) {
		return TernMatch
	}
	return TernMismatch
}

func ternSkill(req MatchRequest, skill int) Tern {
	min, max, exact := 0, 0, 0
	if nn := req.NonNegotiable; nn != nil {
		min, max = nn.SkillMin, nn.SkillMax
	}
	if p := req.Priorities; p != nil {
		exact = p.SkillLevel
	}
	if min == 0 && max == 0 && exact == 0 {
		return TernUnset
	}
	if skill <= 0 {
		return TernUnset
	}
	if exact > 0 {
		if skill == exact {
			return TernMatch
		}
		return TernMismatch
	}
	if withinRange(skill, min, max) {
		return TernMatch
	}
	return TernMismatch
}

func ternAge(req MatchRequest, age int) Tern {
	min, max := 0, 0
	if nn := req.NonNegotiable; nn != nil && (nn.AgeMin > 0 || nn.AgeMax > 0) {
		min, max = nn.AgeMin, nn.AgeMax
	} else if p := req.Priorities; p != nil && (p.AgeMin > 0 || p.AgeMax > 0) {
		min, max = p.AgeMin, p.AgeMax
	}
	if min == 0 && max == 0 {
		return TernUnset
	}
	if age <= 0 {
		return TernUnset
	}
	if withinRange(age, min, max) {
		return TernMatch
	}
	return TernMismatch
}

func ternTierEqual(wanted, actual int) Tern {
	if wanted <= 0 {
		return TernUnset
	}
	if actual <= 0 {
		return TernUnset
	}
	if wanted == actual {
		return TernMatch
	}
	return TernMismatch
}

func ternExperience(req MatchRequest, tier int) Tern {
	if req.Priorities == nil {
		return TernUnset
	}
	return ternTierEqual(req.Priorities.ExperienceTier, tier)
}

func ternGroup(req MatchRequest, group string) Tern {
	if req.Priorities == nil || req.Priorities.GroupType == "" {
		return TernUnset
	}
	return ternEqualFold([]string{req.Priorities.GroupType}, group)
}

func ternTags(req MatchRequest, cand profile.Profile) Tern {
	wanted := make([]string, 0)
	if nn := req.NonNegotiable; nn != nil {
		wanted = append(wanted, nn.MustHaveTags...)
	}
	if p := req.Priorities; p != nil {
		wanted = append(wanted, p.Tags...)
	}
	if len(wanted) == 0 {
		return TernUnset
	}
	if len(cand.Tags) == 0 {
		return TernUnset
	}
	if len(cand.SharedTags(wanted)) > 0 {
		return TernMatch
	}
	return TernMismatch
}
