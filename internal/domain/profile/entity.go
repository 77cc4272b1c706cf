package profile

import (
	"strings"

	"github.com/google/uuid"
)

// Profile is a surfer eligible for matching. It is owned by the profile
// store and read-only inside the matching engine.
type Profile struct {
	ID             uuid.UUID
	Name           string
	OriginCountry  string
	BoardType      string
	SkillLevel     int // 1-5, 0 when unknown
	Age            int // 0 when unknown
	ExperienceTier int // 1-5 by number of past surf trips, 0 when unknown
	GroupType      string
	Budget         int // 1-3, 0 when unknown
	Tags           []string
	Visits         []Visit
}

// Visit is one destination the surfer has spent time in. Legacy records
// carry only free text; the repository parses what it can into Country
// and keeps the rest in RawText.
type Visit struct {
	Country string
	Areas   []string
	Towns   []string
	Days    int
	RawText string
}

// DaysIn sums the days spent across the given countries.
func (p Profile) DaysIn(countries []string) int {
	total := 0
	for _, v := range p.Visits {
		if countryListed(v.Country, countries) {
			total += v.Days
		}
	}
	return total
}

// VisitsIn returns the visits made to any of the given countries.
func (p Profile) VisitsIn(countries []string) []Visit {
	out := make([]Visit, 0, len(p.Visits))
	for _, v := range p.Visits {
		if countryListed(v.Country, countries) {
			out = append(out, v)
		}
	}
	return out
}

// HasTag reports whether the profile carries the tag, case-insensitive.
func (p Profile) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(tag)) {
			return true
		}
	}
	return false
}

// SharedTags returns the profile tags also present in the given list.
func (p Profile) SharedTags(tags []string) []string {
	out := make([]string, 0)
	for _, t := range tags {
		if p.HasTag(t) {
			out = append(out, t)
		}
	}
	return out
}

func countryListed(country string, countries []string) bool {
	country = strings.TrimSpace(country)
	if country == "" {
		return false
	}
	for _, c := range countries {
		if strings.EqualFold(country, strings.TrimSpace(c)) {
			return true
		}
	}
	return false
}
