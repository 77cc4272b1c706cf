package matching

import (
	"strings"

	"wavemate/internal/domain/profile"
)

// applyLayer1 checks the explicit non-negotiable criteria. The first failed
// predicate short-circuits with its reason. A request without criteria
// passes everyone.
func applyLayer1(cand profile.Profile, nn *NonNegotiable) (RejectReason, bool) {
	if nn == nil {
		return RejectNone, true
	}

	if len(nn.OriginCountries) > 0 && !containsFold(nn.OriginCountries, cand.OriginCountry) {
		return RejectOriginCountry, false
	}

	if len(nn.BoardTypes) > 0 && !containsFold(nn.BoardTypes, cand.BoardType) {
		return RejectBoardType, false
	}

	if nn.AgeMin > 0 && cand.Age < nn.AgeMin {
		return RejectAgeRange, false
	}
	if nn.AgeMax > 0 && cand.Age > nn.AgeMax {
		return RejectAgeRange, false
	}

	if nn.SkillCategory != "" {
		if skillCategoryOf(cand.SkillLevel) != strings.ToLower(strings.TrimSpace(nn.SkillCategory)) {
			return RejectSkillCategory, false
		}
	} else {
		if nn.SkillMin > 0 && cand.SkillLevel < nn.SkillMin {
			return RejectSkillRange, false
		}
		if nn.SkillMax > 0 && cand.SkillLevel > nn.SkillMax {
			return RejectSkillRange, false
		}
	}

	for _, tag := range nn.MustHaveTags {
		if !cand.HasTag(tag) {
			return RejectMissingTag, false
		}
	}

	return RejectNone, true
}

func skillCategoryOf(level int) string {
	switch {
	case level <= 0:
		return ""
	case level <= 2:
		return "beginner"
	case level <= 3:
		return "intermediate"
	default:
		return "advanced"
	}
}

func containsFold(list []string, v string) bool {
	v = strings.TrimSpace(v)
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), v) {
			return true
		}
	}
	return false
}
