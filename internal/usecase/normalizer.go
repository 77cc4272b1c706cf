package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wavemate/internal/domain/matching"

	"go.uber.org/zap"
)

// DestinationOracle is the external text-classification service. The
// concrete implementation lives in infrastructure; tests inject a fake.
type DestinationOracle interface {
	Normalize(ctx context.Context, country, areaText string, intent matching.Intent) (areas []string, towns []string, err error)
}

// DestinationCache is the subset of the redis cache the normalizer needs.
type DestinationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type cachedDestination struct {
	Areas []string `json:"areas"`
	Towns []string `json:"towns"`
}

const defaultOracleTimeout = 5 * time.Second

// NormalizeService canonicalizes the request's destination once per
// request. Oracle failures are a degraded mode, never an error: the
// destination keeps its countries and loses area/town precision, which
// downstream stages read as "any area matches".
type NormalizeService struct {
	oracle  DestinationOracle
	cache   DestinationCache
	timeout time.Duration
	logger  *zap.Logger
}

func NewNormalizeService(oracle DestinationOracle, cache DestinationCache, timeout time.Duration, logger *zap.Logger) *NormalizeService {
	if timeout <= 0 {
		timeout = defaultOracleTimeout
	}
	return &NormalizeService{oracle: oracle, cache: cache, timeout: timeout, logger: logger}
}

func (s *NormalizeService) Normalize(ctx context.Context, req matching.MatchRequest, intent matching.Intent) matching.NormalizedDestination {
	dest := matching.NormalizedDestination{Countries: req.Countries()}

	areaText := strings.TrimSpace(req.AreaText)
	if !dest.Requested() || areaText == "" || s.oracle == nil {
		return dest
	}

	key := cacheKey(req.DestinationCountry, areaText, intent)
	if s.cache != nil {
		var cached cachedDestination
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			dest.Areas = validAreas(cached.Areas)
			dest.Towns = cached.Towns
			return dest
		}
	}

	octx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	areas, towns, err := s.oracle.Normalize(octx, req.DestinationCountry, areaText, intent)
	if err != nil {
		s.logger.Warn("destination oracle degraded, matching any area",
			zap.String("area_text", areaText),
			zap.Error(err),
		)
		return dest
	}

	dest.Areas = validAreas(areas)
	if intent.TownGranular() {
		dest.Towns = towns
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, cachedDestination{Areas: rawAreas(dest.Areas), Towns: dest.Towns}, 0)
	}
	return dest
}

func cacheKey(country, areaText string, intent matching.Intent) string {
	granularity := "area"
	if intent.TownGranular() {
		granularity = "town"
	}
	return fmt.Sprintf("dest:%s:%s:%s",
		strings.ToLower(strings.TrimSpace(country)),
		granularity,
		strings.ToLower(areaText),
	)
}

func validAreas(raw []string) []matching.CanonicalArea {
	out := make([]matching.CanonicalArea, 0, len(raw))
	for _, r := range raw {
		area, ok := matching.ParseArea(r)
		if !ok {
			continue
		}
		dup := false
		for _, have := range out {
			if have == area {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, area)
		}
	}
	return out
}

func rawAreas(areas []matching.CanonicalArea) []string {
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		out = append(out, string(a))
	}
	return out
}
