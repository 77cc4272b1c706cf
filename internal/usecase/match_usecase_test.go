package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wavemate/internal/domain/matching"
	"wavemate/internal/domain/profile"
	"wavemate/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type mockProfileRepo struct {
	requester    profile.Profile
	requesterErr error
	pool         []profile.Profile
	poolErr      error

	gotCoarse repository.CoarseFilter
}

func (m *mockProfileRepo) FetchRequester(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	if m.requesterErr != nil {
		return profile.Profile{}, m.requesterErr
	}
	return m.requester, nil
}

func (m *mockProfileRepo) FetchPool(_ context.Context, _ uuid.UUID, coarse repository.CoarseFilter) ([]profile.Profile, error) {
	m.gotCoarse = coarse
	if m.poolErr != nil {
		return nil, m.poolErr
	}
	return m.pool, nil
}

func poolProfile(name, country, board string, skill, age int) profile.Profile {
	return profile.Profile{
		ID:             uuid.New(),
		Name:           name,
		OriginCountry:  country,
		BoardType:      board,
		SkillLevel:     skill,
		Age:            age,
		ExperienceTier: 2,
		GroupType:      "solo",
		Budget:         2,
	}
}

func newTestMatchmaker(repo repository.ProfileRepository) *Matchmaker {
	normalizer := NewNormalizeService(nil, nil, 0, zap.NewNop())
	return NewMatchmaker(repo, normalizer, matching.DefaultRuleset(), 2, zap.NewNop())
}

func TestFindMatches_InvalidRequester(t *testing.T) {
	uc := newTestMatchmaker(&mockProfileRepo{})
	_, err := uc.FindMatches(context.Background(), matching.MatchRequest{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFindMatches_InvalidBudget(t *testing.T) {
	uc := newTestMatchmaker(&mockProfileRepo{})
	req := matching.MatchRequest{RequesterID: uuid.New(), Budget: 4}
	if _, err := uc.FindMatches(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFindMatches_InvertedRanges(t *testing.T) {
	uc := newTestMatchmaker(&mockProfileRepo{})
	req := matching.MatchRequest{
		RequesterID:   uuid.New(),
		NonNegotiable: &matching.NonNegotiable{AgeMin: 40, AgeMax: 20},
	}
	if _, err := uc.FindMatches(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFindMatches_RequesterNotFound(t *testing.T) {
	uc := newTestMatchmaker(&mockProfileRepo{requesterErr: repository.ErrProfileNotFound})
	req := matching.MatchRequest{RequesterID: uuid.New()}
	if _, err := uc.FindMatches(context.Background(), req); !errors.Is(err, ErrRequesterNotFound) {
		t.Fatalf("expected ErrRequesterNotFound, got %v", err)
	}
}

func TestFindMatches_PoolFetchFailure(t *testing.T) {
	uc := newTestMatchmaker(&mockProfileRepo{poolErr: errors.New("boom")})
	req := matching.MatchRequest{RequesterID: uuid.New()}
	if _, err := uc.FindMatches(context.Background(), req); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestFindMatches_EmptyPoolExplains(t *testing.T) {
	uc := newTestMatchmaker(&mockProfileRepo{})
	req := matching.MatchRequest{RequesterID: uuid.New()}

	res, err := uc.FindMatches(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Matches) != 0 {
		t.Fatalf("expected no matches")
	}
	if !strings.Contains(res.Explanation, "No surfers are available") {
		t.Fatalf("expected empty-pool explanation, got %q", res.Explanation)
	}
}

func TestFindMatches_RankedTopK(t *testing.T) {
	strong := poolProfile("Strong", "Portugal", "shortboard", 3, 28)
	strong.Visits = []profile.Visit{{Country: "Portugal", Days: 30}}
	weak := poolProfile("Weak", "Germany", "longboard", 2, 40)
	weak.Visits = []profile.Visit{{Country: "Portugal", Days: 2}}

	repo := &mockProfileRepo{
		requester: poolProfile("Me", "Portugal", "shortboard", 3, 27),
		pool:      []profile.Profile{weak, strong},
	}
	uc := newTestMatchmaker(repo)

	req := matching.MatchRequest{
		RequesterID:        uuid.New(),
		DestinationCountry: "Portugal",
		Budget:             2,
		Priorities:         &matching.Priorities{OriginCountry: "Portugal"},
	}
	res, err := uc.FindMatches(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Matches) == 0 {
		t.Fatalf("expected matches, got explanation %q", res.Explanation)
	}
	if res.Matches[0].Name != "Strong" {
		t.Fatalf("expected Strong ranked first, got %s", res.Matches[0].Name)
	}
	if res.Explanation != "" {
		t.Fatalf("expected no explanation alongside matches")
	}
}

func TestFindMatches_AllRejectedExplains(t *testing.T) {
	old := poolProfile("Old", "Portugal", "shortboard", 3, 45)
	older := poolProfile("Older", "Portugal", "shortboard", 3, 50)

	repo := &mockProfileRepo{
		requester: poolProfile("Me", "Portugal", "shortboard", 3, 27),
		pool:      []profile.Profile{old, older},
	}
	uc := newTestMatchmaker(repo)

	req := matching.MatchRequest{
		RequesterID:   uuid.New(),
		NonNegotiable: &matching.NonNegotiable{AgeMin: 20, AgeMax: 30},
	}
	res, err := uc.FindMatches(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Matches) != 0 {
		t.Fatalf("expected no matches")
	}
	if !strings.Contains(res.Explanation, "age range") {
		t.Fatalf("expected age-range explanation, got %q", res.Explanation)
	}
	if !strings.Contains(res.Explanation, "aged 45 to 50") {
		t.Fatalf("expected derived span in explanation, got %q", res.Explanation)
	}
}

func TestFindMatches_TopKLimit(t *testing.T) {
	pool := make([]profile.Profile, 0, 6)
	for i := 0; i < 6; i++ {
		p := poolProfile("P", "Portugal", "shortboard", 3, 25+i)
		p.Visits = []profile.Visit{{Country: "Portugal", Days: 10 + i}}
		pool = append(pool, p)
	}
	repo := &mockProfileRepo{
		requester: poolProfile("Me", "Portugal", "shortboard", 3, 27),
		pool:      pool,
	}
	uc := newTestMatchmaker(repo)

	req := matching.MatchRequest{
		RequesterID:        uuid.New(),
		DestinationCountry: "Portugal",
		Budget:             2,
	}
	res, err := uc.FindMatches(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Matches) != 3 {
		t.Fatalf("expected top-3, got %d", len(res.Matches))
	}
}

func TestCoarseFilterOf_WithholdsSkillBoundsForCategory(t *testing.T) {
	req := matching.MatchRequest{
		NonNegotiable: &matching.NonNegotiable{
			SkillMin:      2,
			SkillMax:      4,
			SkillCategory: "advanced",
			AgeMin:        20,
		},
	}
	f := coarseFilterOf(req)
	if f.SkillMin != 0 || f.SkillMax != 0 {
		t.Fatalf("expected skill bounds withheld when a category is set, got %d-%d", f.SkillMin, f.SkillMax)
	}
	if f.AgeMin != 20 {
		t.Fatalf("expected age bound pushed down")
	}
}
