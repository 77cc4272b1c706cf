package matching

import (
	"testing"

	"wavemate/internal/domain/profile"

	"github.com/google/uuid"
)

func testCandidate() profile.Profile {
	return profile.Profile{
		ID:             uuid.New(),
		Name:           "Cand",
		OriginCountry:  "Portugal",
		BoardType:      "shortboard",
		SkillLevel:     3,
		Age:            28,
		ExperienceTier: 2,
		GroupType:      "solo",
		Budget:         2,
		Tags:           []string{"yoga", "van life"},
	}
}

func TestApplyLayer1_NilCriteriaPassesEveryone(t *testing.T) {
	reason, ok := applyLayer1(testCandidate(), nil)
	if !ok || reason != RejectNone {
		t.Fatalf("expected pass, got reason=%s ok=%v", reason, ok)
	}
}

func TestApplyLayer1_RejectReasons(t *testing.T) {
	cases := []struct {
		name   string
		nn     NonNegotiable
		mutate func(*profile.Profile)
		want   RejectReason
	}{
		{
			name: "origin country",
			nn:   NonNegotiable{OriginCountries: []string{"Spain", "France"}},
			want: RejectOriginCountry,
		},
		{
			name: "board type",
			nn:   NonNegotiable{BoardTypes: []string{"longboard"}},
			want: RejectBoardType,
		},
		{
			name: "age below min",
			nn:   NonNegotiable{AgeMin: 30},
			want: RejectAgeRange,
		},
		{
			name: "age above max",
			nn:   NonNegotiable{AgeMax: 25},
			want: RejectAgeRange,
		},
		{
			name: "skill below min",
			nn:   NonNegotiable{SkillMin: 4},
			want: RejectSkillRange,
		},
		{
			name: "skill category mismatch",
			nn:   NonNegotiable{SkillCategory: "beginner"},
			want: RejectSkillCategory,
		},
		{
			name: "missing tag",
			nn:   NonNegotiable{MustHaveTags: []string{"yoga", "photography"}},
			want: RejectMissingTag,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cand := testCandidate()
			if tc.mutate != nil {
				tc.mutate(&cand)
			}
			reason, ok := applyLayer1(cand, &tc.nn)
			if ok {
				t.Fatalf("expected reject")
			}
			if reason != tc.want {
				t.Fatalf("expected reason=%s, got %s", tc.want, reason)
			}
		})
	}
}

func TestApplyLayer1_CategoryIgnoresNumericRange(t *testing.T) {
	cand := testCandidate()
	cand.SkillLevel = 3 // intermediate

	// Category present: numeric bounds must not apply.
	nn := &NonNegotiable{SkillCategory: "intermediate", SkillMin: 5}
	if reason, ok := applyLayer1(cand, nn); !ok {
		t.Fatalf("expected category pass, got reason=%s", reason)
	}
}

func TestApplyLayer1_CaseInsensitiveStrings(t *testing.T) {
	cand := testCandidate()
	nn := &NonNegotiable{
		OriginCountries: []string{"  PORTUGAL "},
		BoardTypes:      []string{"ShortBoard"},
		MustHaveTags:    []string{"YOGA"},
	}
	if reason, ok := applyLayer1(cand, nn); !ok {
		t.Fatalf("expected pass, got reason=%s", reason)
	}
}

func TestSkillCategoryOf(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{0, ""},
		{1, "beginner"},
		{2, "beginner"},
		{3, "intermediate"},
		{4, "advanced"},
		{5, "advanced"},
	}
	for _, tc := range cases {
		if got := skillCategoryOf(tc.level); got != tc.want {
			t.Fatalf("skillCategoryOf(%d): expected %q, got %q", tc.level, tc.want, got)
		}
	}
}

func TestApplyLayer2_KeywordSkillFloor(t *testing.T) {
	sctx := Context{
		Request: MatchRequest{Purpose: Purpose{Topics: []string{"hunting barrels in the south"}}},
		Rules:   DefaultRuleset(),
	}

	weak := testCandidate()
	weak.SkillLevel = 2
	if reason, ok := applyLayer2(weak, sctx); ok || reason != RejectInferredSkill {
		t.Fatalf("expected inferred-skill reject, got reason=%s ok=%v", reason, ok)
	}

	strong := testCandidate()
	strong.SkillLevel = 3
	if reason, ok := applyLayer2(strong, sctx); !ok {
		t.Fatalf("expected pass, got reason=%s", reason)
	}
}

func TestApplyLayer2_UnknownSkillFailsFloor(t *testing.T) {
	sctx := Context{
		Request: MatchRequest{Purpose: Purpose{Topics: []string{"advanced only"}}},
		Rules:   DefaultRuleset(),
	}
	cand := testCandidate()
	cand.SkillLevel = 0
	if _, ok := applyLayer2(cand, sctx); ok {
		t.Fatalf("expected reject for unknown skill level")
	}
}

func TestApplyLayer2_NoTopicsPasses(t *testing.T) {
	sctx := Context{Request: MatchRequest{}, Rules: DefaultRuleset()}
	cand := testCandidate()
	cand.SkillLevel = 1
	if reason, ok := applyLayer2(cand, sctx); !ok {
		t.Fatalf("expected pass, got reason=%s", reason)
	}
}
