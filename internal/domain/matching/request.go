package matching

import (
	"strings"

	"github.com/google/uuid"
)

// MatchRequest is one matching query. It is immutable for the duration of
// the pipeline.
type MatchRequest struct {
	RequesterID        uuid.UUID
	DestinationCountry string // optional, comma-list allowed
	AreaText           string // optional free text, normalized by the oracle
	Budget             int    // 1-3, 0 when unset
	Purpose            Purpose
	NonNegotiable      *NonNegotiable
	Priorities         *Priorities
}

type Purpose struct {
	Type   string
	Topics []string
}

// NonNegotiable holds the explicit hard criteria of Layer 1. Zero values
// mean the criterion is absent.
type NonNegotiable struct {
	OriginCountries []string
	BoardTypes      []string
	AgeMin          int
	AgeMax          int
	SkillMin        int
	SkillMax        int
	SkillCategory   string // discrete alternative to the numeric range
	MustHaveTags    []string
}

// Priorities holds the soft "prioritize" preferences of Layer 3. Zero
// values mean the preference is absent.
type Priorities struct {
	OriginCountry  string
	BoardType      string
	SkillLevel     int
	AgeMin         int
	AgeMax         int
	Tags           []string
	ExperienceTier int
	GroupType      string
}

// Countries splits the comma-listed destination into trimmed entries.
func (r MatchRequest) Countries() []string {
	raw := strings.TrimSpace(r.DestinationCountry)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TopicText joins the purpose topics for keyword checks.
func (r MatchRequest) TopicText() string {
	return strings.ToLower(strings.Join(r.Purpose.Topics, " "))
}

// TopicsMention reports whether the topic text names the given term.
func (r MatchRequest) TopicsMention(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	return strings.Contains(r.TopicText(), term)
}

// HasCriteria reports whether the request declares anything to verify a
// candidate against. A bare "find me a random user" request has none, and
// the quality gate is bypassed for it.
func (r MatchRequest) HasCriteria() bool {
	if len(r.Countries()) > 0 || r.Budget > 0 {
		return true
	}
	if nn := r.NonNegotiable; nn != nil {
		if len(nn.OriginCountries) > 0 || len(nn.BoardTypes) > 0 || len(nn.MustHaveTags) > 0 {
			return true
		}
		if nn.AgeMin > 0 || nn.AgeMax > 0 || nn.SkillMin > 0 || nn.SkillMax > 0 || nn.SkillCategory != "" {
			return true
		}
	}
	if p := r.Priorities; p != nil {
		if p.OriginCountry != "" || p.BoardType != "" || p.GroupType != "" || len(p.Tags) > 0 {
			return true
		}
		if p.SkillLevel > 0 || p.AgeMin > 0 || p.AgeMax > 0 || p.ExperienceTier > 0 {
			return true
		}
	}
	return false
}
