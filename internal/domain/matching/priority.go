package matching

import (
	"strings"

	"wavemate/internal/domain/profile"
)

// priorityScorer turns the "prioritize" preference set into a bonus in
// [0, Cap]. Board-type and skill matches escalate to the exception score
// when the topic text names the attribute, so a topic-matched preference
// surfaces regardless of the rest of the scoring.
type priorityScorer struct{}

func (priorityScorer) Score(cand profile.Profile, sctx Context) ScoreDetail {
	p := sctx.Request.Priorities
	if p == nil {
		return ScoreDetail{}
	}
	w := sctx.Rules.Priority

	score := 0
	exception := false

	if p.OriginCountry != "" && strings.EqualFold(strings.TrimSpace(p.OriginCountry), strings.TrimSpace(cand.OriginCountry)) {
		score += w.Country
	}

	if p.BoardType != "" && strings.EqualFold(strings.TrimSpace(p.BoardType), strings.TrimSpace(cand.BoardType)) {
		if sctx.Request.TopicsMention(p.BoardType) || sctx.Intent == IntentEquipment {
			exception = true
		} else {
			score += w.GroupType // board preference weighs like group type outside the exception path
		}
	}

	if p.SkillLevel > 0 && cand.SkillLevel == p.SkillLevel {
		if topicNamesSkill(sctx) {
			exception = true
		} else {
			score += w.GroupType
		}
	}

	if p.AgeMin > 0 || p.AgeMax > 0 {
		if cand.Age > 0 && withinRange(cand.Age, p.AgeMin, p.AgeMax) {
			score += w.AgeRange
		}
	}

	if p.ExperienceTier > 0 && cand.ExperienceTier == p.ExperienceTier {
		score += w.ExperienceTier
	}

	if p.GroupType != "" && strings.EqualFold(strings.TrimSpace(p.GroupType), strings.TrimSpace(cand.GroupType)) {
		score += w.GroupType
	}

	matchedTags := cand.SharedTags(p.Tags)
	tagScore := len(matchedTags) * w.TagEach
	if tagScore > w.TagCap {
		tagScore = w.TagCap
	}
	score += tagScore

	if exception {
		score += w.ExceptionScore
	}
	if score > w.Cap {
		score = w.Cap
	}
	if score < 0 {
		score = 0
	}

	return ScoreDetail{Points: score, MatchedTags: matchedTags}
}

// topicNamesSkill reports whether the topic text carries any of the skill
// keywords the ruleset knows about.
func topicNamesSkill(sctx Context) bool {
	topic := sctx.Request.TopicText()
	if topic == "" {
		return false
	}
	for kw := range sctx.Rules.MinSkillKeywords {
		if strings.Contains(topic, kw) {
			return true
		}
	}
	return strings.Contains(topic, "beginner") || strings.Contains(topic, "intermediate")
}

func withinRange(v, min, max int) bool {
	if min > 0 && v < min {
		return false
	}
	if max > 0 && v > max {
		return false
	}
	return true
}
