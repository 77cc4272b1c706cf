package matching

import (
	"wavemate/internal/domain/profile"
)

// RejectReason is the enumerated cause a candidate was filtered out. The
// no-match explainer aggregates these, so they are never free text.
type RejectReason string

const (
	RejectNone          RejectReason = ""
	RejectOriginCountry RejectReason = "origin_country"
	RejectBoardType     RejectReason = "board_type"
	RejectAgeRange      RejectReason = "age_range"
	RejectSkillRange    RejectReason = "skill_range"
	RejectSkillCategory RejectReason = "skill_category"
	RejectMissingTag    RejectReason = "missing_tag"
	RejectInferredSkill RejectReason = "inferred_skill"
	RejectQualityGate   RejectReason = "quality_gate"
)

// Outcome is the per-candidate pipeline result. It is created fresh per
// request and never persisted.
type Outcome struct {
	Candidate profile.Profile

	PassedLayer1 bool
	PassedLayer2 bool
	RejectReason RejectReason

	PriorityScore int
	GeneralScore  int
	TotalScore    int

	MatchedAreas      []CanonicalArea
	MatchedTowns      []string
	MatchedTags       []string
	DaysInDestination int

	Quality Quality
}

// Evaluate runs Layers 1-4 plus the quality computation for one candidate.
// It is a pure function of its inputs and safe to run concurrently across
// candidates.
func Evaluate(cand profile.Profile, sctx Context) Outcome {
	out := Outcome{Candidate: cand}

	if reason, ok := applyLayer1(cand, sctx.Request.NonNegotiable); !ok {
		out.RejectReason = reason
		return out
	}
	out.PassedLayer1 = true

	if reason, ok := applyLayer2(cand, sctx); !ok {
		out.RejectReason = reason
		out.Quality = computeQuality(out, sctx)
		return out
	}
	out.PassedLayer2 = true

	prio := priorityScorer{}.Score(cand, sctx)
	gen := generalScorer{}.Score(cand, sctx)

	out.PriorityScore = prio.Points
	out.GeneralScore = gen.Points
	out.TotalScore = prio.Points + gen.Points
	out.MatchedAreas = gen.MatchedAreas
	out.MatchedTowns = gen.MatchedTowns
	out.MatchedTags = mergeTags(prio.MatchedTags, gen.MatchedTags)
	out.DaysInDestination = gen.Days

	out.Quality = computeQuality(out, sctx)
	return out
}

func mergeTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, t := range list {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
