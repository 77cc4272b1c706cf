package matching

import (
	"testing"

	"wavemate/internal/domain/profile"
)

func scoreContext(req MatchRequest, requester profile.Profile, intent Intent, dest NormalizedDestination) Context {
	return Context{
		Request:     req,
		Intent:      intent,
		Destination: dest,
		Requester:   requester,
		Rules:       DefaultRuleset(),
	}
}

func TestPriorityScorer_NoPriorities(t *testing.T) {
	sctx := scoreContext(MatchRequest{}, profile.Profile{}, IntentBuddy, NormalizedDestination{})
	d := priorityScorer{}.Score(testCandidate(), sctx)
	if d.Points != 0 {
		t.Fatalf("expected 0 points, got %d", d.Points)
	}
}

func TestPriorityScorer_SumOfMatchedPreferences(t *testing.T) {
	cand := testCandidate() // Portugal, shortboard, skill 3, age 28, tier 2, solo
	req := MatchRequest{
		Priorities: &Priorities{
			OriginCountry:  "portugal",
			AgeMin:         25,
			AgeMax:         30,
			ExperienceTier: 2,
		},
	}
	sctx := scoreContext(req, profile.Profile{}, IntentBuddy, NormalizedDestination{})

	d := priorityScorer{}.Score(cand, sctx)
	want := 30 + 25 + 20
	if d.Points != want {
		t.Fatalf("expected %d, got %d", want, d.Points)
	}
}

func TestPriorityScorer_CappedAtHundred(t *testing.T) {
	cand := testCandidate()
	cand.Tags = []string{"a", "b", "c", "d"}
	req := MatchRequest{
		Priorities: &Priorities{
			OriginCountry:  "Portugal",
			AgeMin:         20,
			AgeMax:         40,
			ExperienceTier: 2,
			GroupType:      "solo",
			Tags:           []string{"a", "b", "c", "d"},
		},
	}
	sctx := scoreContext(req, profile.Profile{}, IntentBuddy, NormalizedDestination{})

	// 30+25+20+15+50 = 140 uncapped.
	d := priorityScorer{}.Score(cand, sctx)
	if d.Points != 100 {
		t.Fatalf("expected cap at 100, got %d", d.Points)
	}
}

func TestPriorityScorer_TagCap(t *testing.T) {
	cand := testCandidate()
	cand.Tags = []string{"a", "b", "c", "d", "e"}
	req := MatchRequest{
		Priorities: &Priorities{Tags: []string{"a", "b", "c", "d", "e"}},
	}
	sctx := scoreContext(req, profile.Profile{}, IntentBuddy, NormalizedDestination{})

	d := priorityScorer{}.Score(cand, sctx)
	if d.Points != 50 {
		t.Fatalf("expected tag contribution capped at 50, got %d", d.Points)
	}
	if len(d.MatchedTags) != 5 {
		t.Fatalf("expected all 5 matched tags recorded, got %d", len(d.MatchedTags))
	}
}

func TestPriorityScorer_BoardExceptionWhenTopicNamesIt(t *testing.T) {
	cand := testCandidate()
	req := MatchRequest{
		Purpose:    Purpose{Topics: []string{"looking for shortboard sessions"}},
		Priorities: &Priorities{BoardType: "shortboard"},
	}
	sctx := scoreContext(req, profile.Profile{}, IntentBuddy, NormalizedDestination{})

	d := priorityScorer{}.Score(cand, sctx)
	if d.Points != 100 {
		t.Fatalf("expected exception escalation to 100, got %d", d.Points)
	}
}

func TestPriorityScorer_SkillExceptionOnSkillTopic(t *testing.T) {
	cand := testCandidate()
	cand.SkillLevel = 4
	req := MatchRequest{
		Purpose:    Purpose{Topics: []string{"advanced surfers only"}},
		Priorities: &Priorities{SkillLevel: 4},
	}
	sctx := scoreContext(req, profile.Profile{}, IntentBuddy, NormalizedDestination{})

	d := priorityScorer{}.Score(cand, sctx)
	if d.Points != 100 {
		t.Fatalf("expected exception escalation to 100, got %d", d.Points)
	}
}

func TestPriorityScorer_BoardWithoutTopicScoresNormally(t *testing.T) {
	cand := testCandidate()
	req := MatchRequest{
		Priorities: &Priorities{BoardType: "shortboard"},
	}
	sctx := scoreContext(req, profile.Profile{}, IntentBuddy, NormalizedDestination{})

	d := priorityScorer{}.Score(cand, sctx)
	if d.Points != 15 {
		t.Fatalf("expected 15 for non-exception board match, got %d", d.Points)
	}
}

func TestPriorityScorer_MonotonicUnderAddedPreferences(t *testing.T) {
	cand := testCandidate() // Portugal, shortboard, skill 3, age 28, solo, tags yoga + van life

	steps := []struct {
		name string
		req  MatchRequest
	}{
		{"none", MatchRequest{}},
		{"origin", MatchRequest{
			Priorities: &Priorities{OriginCountry: "Portugal"},
		}},
		{"origin+age", MatchRequest{
			Priorities: &Priorities{OriginCountry: "Portugal", AgeMin: 25, AgeMax: 30},
		}},
		{"origin+age+group", MatchRequest{
			Priorities: &Priorities{OriginCountry: "Portugal", AgeMin: 25, AgeMax: 30, GroupType: "solo"},
		}},
		{"origin+age+group+tag", MatchRequest{
			Priorities: &Priorities{OriginCountry: "Portugal", AgeMin: 25, AgeMax: 30, GroupType: "solo", Tags: []string{"yoga"}},
		}},
		{"plus board exception", MatchRequest{
			Purpose:    Purpose{Topics: []string{"shortboard trips"}},
			Priorities: &Priorities{OriginCountry: "Portugal", AgeMin: 25, AgeMax: 30, GroupType: "solo", Tags: []string{"yoga"}, BoardType: "shortboard"},
		}},
		{"plus skill exception", MatchRequest{
			Purpose:    Purpose{Topics: []string{"advanced shortboard trips"}},
			Priorities: &Priorities{OriginCountry: "Portugal", AgeMin: 25, AgeMax: 30, GroupType: "solo", Tags: []string{"yoga"}, BoardType: "shortboard", SkillLevel: 3},
		}},
	}

	prev := 0
	for _, step := range steps {
		sctx := scoreContext(step.req, profile.Profile{}, IntentBuddy, NormalizedDestination{})
		d := priorityScorer{}.Score(cand, sctx)
		if d.Points < 0 || d.Points > 100 {
			t.Fatalf("%s: score %d outside [0,100]", step.name, d.Points)
		}
		if d.Points < prev {
			t.Fatalf("%s: score dropped from %d to %d after adding a satisfied preference", step.name, prev, d.Points)
		}
		prev = d.Points
	}

	// Both exceptions firing at once still clamps to the cap.
	if prev != 100 {
		t.Fatalf("expected final double-exception score of exactly 100, got %d", prev)
	}
}

func TestCloseness(t *testing.T) {
	if got := Closeness(3, 3, 30, 15); got != 30 {
		t.Fatalf("equal tiers: expected 30, got %d", got)
	}
	if got := Closeness(3, 4, 30, 15); got != 15 {
		t.Fatalf("one apart: expected 15, got %d", got)
	}
	if got := Closeness(1, 3, 30, 15); got != 0 {
		t.Fatalf("two apart: expected 0, got %d", got)
	}
	if got := Closeness(1, 5, 30, 15); got != 0 {
		t.Fatalf("far apart: expected floor at 0, got %d", got)
	}
	// Symmetry.
	for a := 1; a <= 5; a++ {
		for b := 1; b <= 5; b++ {
			if Closeness(a, b, 30, 15) != Closeness(b, a, 30, 15) {
				t.Fatalf("closeness not symmetric at (%d,%d)", a, b)
			}
		}
	}
	// Monotonic decrease with distance.
	prev := Closeness(1, 1, 30, 15)
	for d := 1; d <= 4; d++ {
		cur := Closeness(1, 1+d, 30, 15)
		if cur > prev {
			t.Fatalf("closeness increased with distance at d=%d", d)
		}
		prev = cur
	}
}

func TestGeneralScorer_DaysAndAreaBonus(t *testing.T) {
	cand := testCandidate()
	cand.Visits = []profile.Visit{
		{Country: "Portugal", Areas: []string{"west"}, Days: 20},
		{Country: "Portugal", Areas: []string{"north"}, Days: 10},
		{Country: "Indonesia", Areas: []string{"south"}, Days: 99},
	}
	dest := NormalizedDestination{Countries: []string{"Portugal"}, Areas: []CanonicalArea{AreaWest}}
	sctx := scoreContext(MatchRequest{DestinationCountry: "Portugal"}, profile.Profile{}, IntentBuddy, dest)

	d := generalScorer{}.Score(cand, sctx)
	if d.Days != 30 {
		t.Fatalf("expected 30 days in destination, got %d", d.Days)
	}
	if len(d.MatchedAreas) != 1 || d.MatchedAreas[0] != AreaWest {
		t.Fatalf("expected matched area west, got %v", d.MatchedAreas)
	}
	// 30 days + 25 area bonus (buddy intent is not geo-sensitive).
	if d.Points != 30+25 {
		t.Fatalf("expected %d, got %d", 30+25, d.Points)
	}
}

func TestGeneralScorer_GeoSensitiveAreaBonus(t *testing.T) {
	cand := testCandidate()
	cand.Visits = []profile.Visit{{Country: "Portugal", Areas: []string{"west"}, Days: 5}}
	dest := NormalizedDestination{Countries: []string{"Portugal"}, Areas: []CanonicalArea{AreaWest}}
	sctx := scoreContext(MatchRequest{DestinationCountry: "Portugal"}, profile.Profile{}, IntentSpot, dest)

	d := generalScorer{}.Score(cand, sctx)
	if d.Points != 5+40 {
		t.Fatalf("expected geo-sensitive area bonus 40, got total %d", d.Points)
	}
}

func TestGeneralScorer_TownsOnlyForTownGranularIntents(t *testing.T) {
	cand := testCandidate()
	cand.Visits = []profile.Visit{{Country: "Portugal", Towns: []string{"Ericeira"}, Days: 0}}
	dest := NormalizedDestination{Countries: []string{"Portugal"}, Towns: []string{"Ericeira"}}

	spot := scoreContext(MatchRequest{DestinationCountry: "Portugal"}, profile.Profile{}, IntentSpot, dest)
	if d := (generalScorer{}).Score(cand, spot); len(d.MatchedTowns) != 1 {
		t.Fatalf("spot intent: expected town match, got %v", d.MatchedTowns)
	}

	buddy := scoreContext(MatchRequest{DestinationCountry: "Portugal"}, profile.Profile{}, IntentBuddy, dest)
	if d := (generalScorer{}).Score(cand, buddy); len(d.MatchedTowns) != 0 {
		t.Fatalf("buddy intent: expected no town matching, got %v", d.MatchedTowns)
	}
}

func TestGeneralScorer_EmptyRequestedAreasMatchesAny(t *testing.T) {
	cand := testCandidate()
	cand.Visits = []profile.Visit{{Country: "Portugal", Areas: []string{"north"}, Days: 7}}
	dest := NormalizedDestination{Countries: []string{"Portugal"}} // degraded: no areas
	sctx := scoreContext(MatchRequest{DestinationCountry: "Portugal"}, profile.Profile{}, IntentBuddy, dest)

	d := generalScorer{}.Score(cand, sctx)
	// Days count, but no area bonus is awarded without an actual intersection.
	if d.Points != 7 {
		t.Fatalf("expected only day points, got %d", d.Points)
	}
	if len(d.MatchedAreas) != 0 {
		t.Fatalf("expected no matched areas, got %v", d.MatchedAreas)
	}
}

func TestGeneralScorer_SharedBoardSuppressedForEquipment(t *testing.T) {
	requester := testCandidate()
	cand := testCandidate()

	buddy := scoreContext(MatchRequest{}, requester, IntentBuddy, NormalizedDestination{})
	equipment := scoreContext(MatchRequest{}, requester, IntentEquipment, NormalizedDestination{})

	db := generalScorer{}.Score(cand, buddy)
	de := generalScorer{}.Score(cand, equipment)
	if db.Points-de.Points != 20 {
		t.Fatalf("expected equipment intent to drop the 20-point shared-board bonus, got buddy=%d equipment=%d", db.Points, de.Points)
	}
}

func TestGeneralScorer_SharedAttributesAndTags(t *testing.T) {
	requester := testCandidate()
	requester.Tags = []string{"yoga", "van life", "photography"}
	cand := testCandidate() // yoga + van life shared, same board/group, same budget/skill/tier

	sctx := scoreContext(MatchRequest{Budget: 2}, requester, IntentBuddy, NormalizedDestination{})
	d := generalScorer{}.Score(cand, sctx)

	// budget closeness 30 + skill closeness 30 + tier closeness 30 +
	// shared board 20 + shared group 15 + 2 tags * 5.
	want := 30 + 30 + 30 + 20 + 15 + 10
	if d.Points != want {
		t.Fatalf("expected %d, got %d", want, d.Points)
	}
	if len(d.MatchedTags) != 2 {
		t.Fatalf("expected 2 matched tags, got %v", d.MatchedTags)
	}
}
