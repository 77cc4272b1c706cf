package matching

import "strings"

// CanonicalArea is one of the eight compass-derived buckets free-text
// region input is normalized into.
type CanonicalArea string

const (
	AreaNorth     CanonicalArea = "north"
	AreaSouth     CanonicalArea = "south"
	AreaEast      CanonicalArea = "east"
	AreaWest      CanonicalArea = "west"
	AreaNortheast CanonicalArea = "northeast"
	AreaNorthwest CanonicalArea = "northwest"
	AreaSoutheast CanonicalArea = "southeast"
	AreaSouthwest CanonicalArea = "southwest"
)

// ParseArea maps a raw string onto the closed area set. The bool is false
// for anything outside the set.
func ParseArea(raw string) (CanonicalArea, bool) {
	switch CanonicalArea(strings.ToLower(strings.TrimSpace(raw))) {
	case AreaNorth:
		return AreaNorth, true
	case AreaSouth:
		return AreaSouth, true
	case AreaEast:
		return AreaEast, true
	case AreaWest:
		return AreaWest, true
	case AreaNortheast:
		return AreaNortheast, true
	case AreaNorthwest:
		return AreaNorthwest, true
	case AreaSoutheast:
		return AreaSoutheast, true
	case AreaSouthwest:
		return AreaSouthwest, true
	}
	return "", false
}

// NormalizedDestination is the canonicalized target location, derived once
// per request. Empty Areas/Towns mean "any area matches" downstream, never
// "no area matches".
type NormalizedDestination struct {
	Countries []string
	Areas     []CanonicalArea
	Towns     []string
}

// Requested reports whether the request named a destination at all.
func (d NormalizedDestination) Requested() bool {
	return len(d.Countries) > 0
}

// MatchAreas intersects candidate visit areas with the requested areas.
// With no requested areas every candidate trivially matches (empty result,
// matched=true).
func (d NormalizedDestination) MatchAreas(visitAreas []string) (matched []CanonicalArea, ok bool) {
	if len(d.Areas) == 0 {
		return nil, true
	}
	for _, raw := range visitAreas {
		area, valid := ParseArea(raw)
		if !valid {
			continue
		}
		for _, want := range d.Areas {
			if area == want {
				matched = append(matched, area)
			}
		}
	}
	return matched, len(matched) > 0
}

// MatchTowns intersects candidate visit towns with the requested towns,
// case-insensitive.
func (d NormalizedDestination) MatchTowns(visitTowns []string) []string {
	if len(d.Towns) == 0 {
		return nil
	}
	out := make([]string, 0)
	for _, t := range visitTowns {
		for _, want := range d.Towns {
			if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(want)) {
				out = append(out, want)
			}
		}
	}
	return out
}
