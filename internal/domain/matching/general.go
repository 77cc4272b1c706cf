package matching

import (
	"strings"

	"wavemate/internal/domain/profile"
)

// generalScorer computes the similarity/overlap score: destination days,
// area/town match quality, tier closeness, and shared attributes.
type generalScorer struct{}

func (generalScorer) Score(cand profile.Profile, sctx Context) ScoreDetail {
	w := sctx.Rules.General
	dest := sctx.Destination
	req := sctx.Request

	detail := ScoreDetail{}
	score := 0

	if dest.Requested() {
		visits := cand.VisitsIn(dest.Countries)
		for _, v := range visits {
			detail.Days += v.Days
		}
		score += detail.Days

		areaBonus := w.AreaOther
		townBonus := w.TownOther
		if sctx.Intent.GeoSensitive() {
			areaBonus = w.AreaGeoSensitive
			townBonus = w.TownGeoSensitive
		}

		for _, v := range visits {
			if matched, ok := dest.MatchAreas(v.Areas); ok && len(matched) > 0 {
				detail.MatchedAreas = appendAreas(detail.MatchedAreas, matched)
			}
		}
		if len(detail.MatchedAreas) > 0 {
			score += areaBonus
		}

		if sctx.Intent.TownGranular() {
			for _, v := range visits {
				detail.MatchedTowns = appendFold(detail.MatchedTowns, dest.MatchTowns(v.Towns))
			}
			if len(detail.MatchedTowns) > 0 {
				score += townBonus
			}
		}
	}

	if req.Budget > 0 && cand.Budget > 0 {
		score += Closeness(req.Budget, cand.Budget, w.ClosenessBase, w.ClosenessSlope)
	}
	if sctx.Requester.SkillLevel > 0 && cand.SkillLevel > 0 {
		score += Closeness(sctx.Requester.SkillLevel, cand.SkillLevel, w.ClosenessBase, w.ClosenessSlope)
	}
	if sctx.Requester.ExperienceTier > 0 && cand.ExperienceTier > 0 {
		score += Closeness(sctx.Requester.ExperienceTier, cand.ExperienceTier, w.ClosenessBase, w.ClosenessSlope)
	}

	// Shared board types are worth nothing on equipment requests: a buddy
	// with a different quiver is the point there.
	if sctx.Intent != IntentEquipment {
		if sameFold(sctx.Requester.BoardType, cand.BoardType) {
			score += w.SharedBoard
		}
	}
	if sameFold(sctx.Requester.GroupType, cand.GroupType) {
		score += w.SharedGroup
	}

	detail.MatchedTags = cand.SharedTags(sctx.Requester.Tags)
	tagScore := len(detail.MatchedTags) * w.TagEach
	if tagScore > w.TagCap {
		tagScore = w.TagCap
	}
	score += tagScore

	if score < 0 {
		score = 0
	}
	detail.Points = score
	return detail
}

// Closeness is the symmetric triangular similarity over numeric tiers:
// base at equality, minus slope per tier of distance, floored at zero.
func Closeness(a, b, base, slope int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	v := base - slope*d
	if v < 0 {
		return 0
	}
	return v
}

func sameFold(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}

func appendAreas(dst []CanonicalArea, src []CanonicalArea) []CanonicalArea {
	for _, a := range src {
		dup := false
		for _, have := range dst {
			if have == a {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, a)
		}
	}
	return dst
}

func appendFold(dst []string, src []string) []string {
	for _, s := range src {
		dup := false
		for _, have := range dst {
			if strings.EqualFold(have, s) {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, s)
		}
	}
	return dst
}
