package dto

import (
	"wavemate/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchRequest struct {
	DestinationCountry string          `json:"destination_country"`
	Area               string          `json:"area"`
	Budget             int             `json:"budget"`
	Purpose            PurposeRequest  `json:"purpose"`
	NonNegotiable      *HardFilter     `json:"non_negotiable,omitempty"`
	Priorities         *PriorityPrefs  `json:"priorities,omitempty"`
}

type PurposeRequest struct {
	Type   string   `json:"type"`
	Topics []string `json:"topics,omitempty"`
}

type HardFilter struct {
	OriginCountries []string `json:"origin_countries,omitempty"`
	BoardTypes      []string `json:"board_types,omitempty"`
	AgeMin          int      `json:"age_min,omitempty"`
	AgeMax          int      `json:"age_max,omitempty"`
	SkillMin        int      `json:"skill_min,omitempty"`
	SkillMax        int      `json:"skill_max,omitempty"`
	SkillCategory   string   `json:"skill_category,omitempty"`
	MustHaveTags    []string `json:"must_have_tags,omitempty"`
}

type PriorityPrefs struct {
	OriginCountry  string   `json:"origin_country,omitempty"`
	BoardType      string   `json:"board_type,omitempty"`
	SkillLevel     int      `json:"skill_level,omitempty"`
	AgeMin         int      `json:"age_min,omitempty"`
	AgeMax         int      `json:"age_max,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	ExperienceTier int      `json:"experience_tier,omitempty"`
	GroupType      string   `json:"group_type,omitempty"`
}

func (r MatchRequest) ToDomain(requesterID uuid.UUID) matching.MatchRequest {
	out := matching.MatchRequest{
		RequesterID:        requesterID,
		DestinationCountry: r.DestinationCountry,
		AreaText:           r.Area,
		Budget:             r.Budget,
		Purpose: matching.Purpose{
			Type:   r.Purpose.Type,
			Topics: r.Purpose.Topics,
		},
	}
	if nn := r.NonNegotiable; nn != nil {
		out.NonNegotiable = &matching.NonNegotiable{
			OriginCountries: nn.OriginCountries,
			BoardTypes:      nn.BoardTypes,
			AgeMin:          nn.AgeMin,
			AgeMax:          nn.AgeMax,
			SkillMin:        nn.SkillMin,
			SkillMax:        nn.SkillMax,
			SkillCategory:   nn.SkillCategory,
			MustHaveTags:    nn.MustHaveTags,
		}
	}
	if p := r.Priorities; p != nil {
		out.Priorities = &matching.Priorities{
			OriginCountry:  p.OriginCountry,
			BoardType:      p.BoardType,
			SkillLevel:     p.SkillLevel,
			AgeMin:         p.AgeMin,
			AgeMax:         p.AgeMax,
			Tags:           p.Tags,
			ExperienceTier: p.ExperienceTier,
			GroupType:      p.GroupType,
		}
	}
	return out
}
