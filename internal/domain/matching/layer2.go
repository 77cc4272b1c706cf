package matching

import (
	"strings"

	"wavemate/internal/domain/profile"
)

// applyLayer2 checks constraints implied by the topic text rather than set
// explicitly. It is keyword-gated and reject-only. An unknown skill level
// still fails a skill floor, since the constraint cannot be confirmed.
func applyLayer2(cand profile.Profile, sctx Context) (RejectReason, bool) {
	topic := sctx.Request.TopicText()
	if topic == "" {
		return RejectNone, true
	}

	for kw, minSkill := range sctx.Rules.MinSkillKeywords {
		if !strings.Contains(topic, kw) {
			continue
		}
		if cand.SkillLevel < minSkill {
			return RejectInferredSkill, false
		}
	}

	return RejectNone, true
}
