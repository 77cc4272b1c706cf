package matching

import (
	"fmt"
	"sort"
	"strings"
)

// Explain turns a fully-rejected candidate pool into one specific sentence:
// the most common blocking criterion plus a relaxation suggestion computed
// from the actual values in the rejected pool. It never returns a canned
// message when there is data to be specific with.
func Explain(req MatchRequest, rejected []Outcome) string {
	if len(rejected) == 0 {
		return "No surfers are available to match against yet - check back once more profiles join."
	}

	counts := make(map[RejectReason]int)
	for _, o := range rejected {
		counts[blockerOf(o)]++
	}

	top := dominantReason(counts)
	suggestion := suggestionFor(top, rejected)

	sentence := fmt.Sprintf("No match found: %d of %d candidates were blocked by %s.",
		counts[top], len(rejected), describeReason(top))
	if suggestion != "" {
		sentence += " " + suggestion
	}
	return sentence
}

// blockerOf picks the criterion that stopped this candidate: the explicit
// Layer 1/2 reason when there is one, otherwise the first mismatched gate
// criterion in checklist order.
func blockerOf(o Outcome) RejectReason {
	if o.RejectReason != RejectNone && o.RejectReason != RejectQualityGate {
		return o.RejectReason
	}
	for _, c := range []Criterion{CriterionDestination, CriterionAge, CriterionBoard, CriterionSkill, CriterionOrigin, CriterionBudget, CriterionExperience, CriterionGroup, CriterionTags} {
		if o.Quality.Criteria[c] == TernMismatch {
			return gateReasonOf(c)
		}
	}
	return RejectQualityGate
}

func gateReasonOf(c Criterion) RejectReason {
	switch c {
	case CriterionAge:
		return RejectAgeRange
	case CriterionBoard:
		return RejectBoardType
	case CriterionSkill:
		return RejectSkillRange
	case CriterionOrigin:
		return RejectOriginCountry
	default:
		return RejectQualityGate
	}
}

func dominantReason(counts map[RejectReason]int) RejectReason {
	reasons := make([]RejectReason, 0, len(counts))
	for r := range counts {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool {
		if counts[reasons[i]] != counts[reasons[j]] {
			return counts[reasons[i]] > counts[reasons[j]]
		}
		return reasons[i] < reasons[j]
	})
	return reasons[0]
}

func describeReason(r RejectReason) string {
	switch r {
	case RejectOriginCountry:
		return "the origin-country requirement"
	case RejectBoardType:
		return "the board-type requirement"
	case RejectAgeRange:
		return "the age range"
	case RejectSkillRange:
		return "the skill-level range"
	case RejectSkillCategory:
		return "the skill category"
	case RejectMissingTag:
		return "a must-have tag"
	case RejectInferredSkill:
		return "the skill level your topic implies"
	default:
		return "too few matching criteria"
	}
}

func suggestionFor(r RejectReason, rejected []Outcome) string {
	switch r {
	case RejectAgeRange:
		min, max := 0, 0
		for _, o := range rejected {
			age := o.Candidate.Age
			if age <= 0 {
				continue
			}
			if min == 0 || age < min {
				min = age
			}
			if age > max {
				max = age
			}
		}
		if min > 0 {
			return fmt.Sprintf("Surfers currently available are aged %d to %d - widening your age range would help.", min, max)
		}
	case RejectBoardType:
		if board := mostCommon(rejected, func(o Outcome) string { return o.Candidate.BoardType }); board != "" {
			return fmt.Sprintf("Most available surfers ride a %s - consider including it.", board)
		}
	case RejectSkillRange, RejectSkillCategory, RejectInferredSkill:
		min, max := 0, 0
		for _, o := range rejected {
			s := o.Candidate.SkillLevel
			if s <= 0 {
				continue
			}
			if min == 0 || s < min {
				min = s
			}
			if s > max {
				max = s
			}
		}
		if min > 0 {
			return fmt.Sprintf("Available skill levels run from %d to %d - relaxing the skill requirement would help.", min, max)
		}
	case RejectOriginCountry:
		if country := mostCommon(rejected, func(o Outcome) string { return o.Candidate.OriginCountry }); country != "" {
			return fmt.Sprintf("Most available surfers are from %s - consider adding it to your list.", country)
		}
	case RejectMissingTag:
		return "Dropping one of your must-have tags would widen the pool."
	default:
		return "Relaxing one of your criteria, or trying a nearby destination, would widen the pool."
	}
	return ""
}

func mostCommon(rejected []Outcome, pick func(Outcome) string) string {
	counts := make(map[string]int)
	for _, o := range rejected {
		v := strings.ToLower(strings.TrimSpace(pick(o)))
		if v != "" {
			counts[v]++
		}
	}
	best, bestN := "", 0
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if counts[k] > bestN {
			best, bestN = k, counts[k]
		}
	}
	return best
}
