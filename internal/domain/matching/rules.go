package matching

import (
	"wavemate/internal/domain/profile"
)

// PriorityWeights are the fixed contributions of matched "prioritize"
// preferences. ExceptionScore is the ceiling contribution awarded when a
// board/skill priority is also named by the request topic.
type PriorityWeights struct {
	Country        int
	AgeRange       int
	ExperienceTier int
	GroupType      int
	TagEach        int
	TagCap         int
	ExceptionScore int
	Cap            int
}

// GeneralWeights are the similarity bonuses of the overlap scorer.
type GeneralWeights struct {
	AreaGeoSensitive int
	AreaOther        int
	TownGeoSensitive int
	TownOther        int
	SharedBoard      int
	SharedGroup      int
	TagEach          int
	TagCap           int
	ClosenessBase    int
	ClosenessSlope   int
}

// Ruleset bundles everything configurable about the pipeline: scoring
// weights, the keyword table driving inferred skill floors, and result
// sizing. One Ruleset replaces the copy-pasted scoring generations of the
// old engine; alternative weightings are alternative Rulesets.
type Ruleset struct {
	Priority PriorityWeights
	General  GeneralWeights

	// MinSkillKeywords maps a topic keyword to the minimum skill level it
	// implies. Layer 2 only ever rejects on these, never boosts.
	MinSkillKeywords map[string]int

	TopK int
}

// DefaultRuleset returns the reference weighting.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Priority: PriorityWeights{
			Country:        30,
			AgeRange:       25,
			ExperienceTier: 20,
			GroupType:      15,
			TagEach:        15,
			TagCap:         50,
			ExceptionScore: 100,
			Cap:            100,
		},
		General: GeneralWeights{
			AreaGeoSensitive: 40,
			AreaOther:        25,
			TownGeoSensitive: 20,
			TownOther:        10,
			SharedBoard:      20,
			SharedGroup:      15,
			TagEach:          5,
			TagCap:           25,
			ClosenessBase:    30,
			ClosenessSlope:   15,
		},
		MinSkillKeywords: map[string]int{
			"advanced": 3,
			"expert":   3,
			"barrel":   3,
			"barrels":  3,
		},
		TopK: 3,
	}
}

// Context carries the per-request inputs shared by every scorer.
type Context struct {
	Request     MatchRequest
	Intent      Intent
	Destination NormalizedDestination
	Requester   profile.Profile
	Rules       Ruleset
}

// Scorer is one scoring layer. Implementations are pure functions of the
// candidate and the request context.
type Scorer interface {
	Score(cand profile.Profile, sctx Context) ScoreDetail
}

// ScoreDetail is a scorer's contribution plus the evidence behind it.
type ScoreDetail struct {
	Points       int
	MatchedAreas []CanonicalArea
	MatchedTowns []string
	MatchedTags  []string
	Days         int
}
