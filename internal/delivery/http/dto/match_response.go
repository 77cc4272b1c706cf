package dto

import (
	"wavemate/internal/usecase"
)

type MatchListResponse struct {
	Matches     []MatchItemResponse `json:"matches"`
	Explanation string              `json:"explanation,omitempty"`
}

type MatchItemResponse struct {
	CandidateID       string   `json:"candidate_id"`
	Name              string   `json:"name"`
	TotalScore        int      `json:"total_score"`
	MatchedAreas      []string `json:"matched_areas,omitempty"`
	MatchedTowns      []string `json:"matched_towns,omitempty"`
	MatchedTags       []string `json:"matched_tags,omitempty"`
	DaysInDestination int      `json:"days_in_destination,omitempty"`
	MatchCount        int      `json:"match_count"`
	ExactMatch        bool     `json:"exact_match"`
	DataCompleteness  float64  `json:"data_completeness"`
}

func NewMatchListResponse(res usecase.MatchResult) MatchListResponse {
	out := MatchListResponse{
		Matches:     make([]MatchItemResponse, 0, len(res.Matches)),
		Explanation: res.Explanation,
	}
	for _, m := range res.Matches {
		areas := make([]string, 0, len(m.MatchedAreas))
		for _, a := range m.MatchedAreas {
			areas = append(areas, string(a))
		}
		out.Matches = append(out.Matches, MatchItemResponse{
			CandidateID:       m.CandidateID.String(),
			Name:              m.Name,
			TotalScore:        m.TotalScore,
			MatchedAreas:      areas,
			MatchedTowns:      m.MatchedTowns,
			MatchedTags:       m.MatchedTags,
			DaysInDestination: m.DaysInDestination,
			MatchCount:        m.MatchCount,
			ExactMatch:        m.ExactMatch,
			DataCompleteness:  m.DataCompleteness,
		})
	}
	return out
}
