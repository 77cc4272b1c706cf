package usecase

import (
	"context"
	"errors"

	"wavemate/internal/domain/matching"
	"wavemate/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrRequesterNotFound = errors.New("requester not found")
	ErrInternal          = errors.New("internal error")
)

type MatchUsecase interface {
	FindMatches(ctx context.Context, req matching.MatchRequest) (MatchResult, error)
}

// MatchItem is one surfaced candidate.
type MatchItem struct {
	CandidateID       uuid.UUID
	Name              string
	TotalScore        int
	MatchedAreas      []matching.CanonicalArea
	MatchedTowns      []string
	MatchedTags       []string
	DaysInDestination int
	MatchCount        int
	ExactMatch        bool
	DataCompleteness  float64
}

// MatchResult is the ranked top-K, or an explanation when nothing
// acceptable was found. Exactly one of the two is populated.
type MatchResult struct {
	Matches     []MatchItem
	Explanation string
}

type Matchmaker struct {
	profiles   repository.ProfileRepository
	normalizer *NormalizeService
	rules      matching.Ruleset
	pool       scoringPool
	logger     *zap.Logger
}

func NewMatchmaker(profiles repository.ProfileRepository, normalizer *NormalizeService, rules matching.Ruleset, workers int, logger *zap.Logger) *Matchmaker {
	return &Matchmaker{
		profiles:   profiles,
		normalizer: normalizer,
		rules:      rules,
		pool:       newScoringPool(workers),
		logger:     logger,
	}
}

func (m *Matchmaker) FindMatches(ctx context.Context, req matching.MatchRequest) (MatchResult, error) {
	if err := validateRequest(req); err != nil {
		return MatchResult{}, err
	}

	intent := matching.ClassifyIntent(req.Purpose.Type, req.Purpose.Topics)
	m.logger.Info("match request received",
		zap.String("requester_id", req.RequesterID.String()),
		zap.String("intent", string(intent)),
		zap.String("destination", req.DestinationCountry),
	)

	dest := m.normalizer.Normalize(ctx, req, intent)

	requester, err := m.profiles.FetchRequester(ctx, req.RequesterID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return MatchResult{}, ErrRequesterNotFound
		}
		m.logger.Error("requester fetch failed", zap.Error(err))
		return MatchResult{}, ErrInternal
	}

	pool, err := m.profiles.FetchPool(ctx, req.RequesterID, coarseFilterOf(req))
	if err != nil {
		m.logger.Error("candidate pool fetch failed", zap.Error(err))
		return MatchResult{}, ErrInternal
	}
	m.logger.Info("candidate pool fetched", zap.Int("candidates", len(pool)))

	if len(pool) == 0 {
		return MatchResult{Explanation: matching.Explain(req, nil)}, nil
	}

	sctx := matching.Context{
		Request:     req,
		Intent:      intent,
		Destination: dest,
		Requester:   requester,
		Rules:       m.rules,
	}

	outcomes := make([]matching.Outcome, len(pool))
	m.pool.Map(ctx, len(pool), func(i int) {
		outcomes[i] = matching.Evaluate(pool[i], sctx)
	})
	if err := ctx.Err(); err != nil {
		return MatchResult{}, err
	}

	passed := make([]matching.Outcome, 0, len(outcomes))
	rejected := make([]matching.Outcome, 0)
	for _, o := range outcomes {
		if o.PassedLayer1 && o.PassedLayer2 {
			passed = append(passed, o)
		} else {
			rejected = append(rejected, o)
		}
	}

	kept, gated := matching.ApplyGate(passed, sctx)
	for _, o := range gated {
		if o.RejectReason == matching.RejectNone {
			o.RejectReason = matching.RejectQualityGate
		}
		rejected = append(rejected, o)
	}
	m.logger.Info("quality gate applied",
		zap.Int("scored", len(passed)),
		zap.Int("kept", len(kept)),
		zap.Int("rejected", len(rejected)),
	)

	ranked := matching.TopK(matching.Rank(kept), m.rules.TopK)
	if len(ranked) == 0 {
		explanation := matching.Explain(req, rejected)
		m.logger.Info("no match found", zap.String("explanation", explanation))
		return MatchResult{Explanation: explanation}, nil
	}

	items := make([]MatchItem, 0, len(ranked))
	for _, o := range ranked {
		items = append(items, MatchItem{
			CandidateID:       o.Candidate.ID,
			Name:              o.Candidate.Name,
			TotalScore:        o.TotalScore,
			MatchedAreas:      o.MatchedAreas,
			MatchedTowns:      o.MatchedTowns,
			MatchedTags:       o.MatchedTags,
			DaysInDestination: o.DaysInDestination,
			MatchCount:        o.Quality.MatchCount,
			ExactMatch:        o.Quality.Exact,
			DataCompleteness:  o.Quality.DataCompleteness,
		})
	}
	m.logger.Info("matches ranked", zap.Int("returned", len(items)))
	return MatchResult{Matches: items}, nil
}

func validateRequest(req matching.MatchRequest) error {
	if req.RequesterID == uuid.Nil {
		return ErrInvalidInput
	}
	if req.Budget < 0 || req.Budget > 3 {
		return ErrInvalidInput
	}
	if nn := req.NonNegotiable; nn != nil {
		if nn.AgeMin > 0 && nn.AgeMax > 0 && nn.AgeMin > nn.AgeMax {
			return ErrInvalidInput
		}
		if nn.SkillMin > 0 && nn.SkillMax > 0 && nn.SkillMin > nn.SkillMax {
			return ErrInvalidInput
		}
	}
	return nil
}

// coarseFilterOf pushes the cheap Layer 1 bounds down to the store. Skill
// bounds are withheld when a discrete skill category was requested, since
// the category check only happens in memory.
func coarseFilterOf(req matching.MatchRequest) repository.CoarseFilter {
	nn := req.NonNegotiable
	if nn == nil {
		return repository.CoarseFilter{}
	}
	f := repository.CoarseFilter{
		OriginCountries: nn.OriginCountries,
		BoardTypes:      nn.BoardTypes,
		AgeMin:          nn.AgeMin,
		AgeMax:          nn.AgeMax,
	}
	if nn.SkillCategory == "" {
		f.SkillMin = nn.SkillMin
		f.SkillMax = nn.SkillMax
	}
	return f
}
