package matching

import "strings"

// Intent is the classified purpose of a match request. It decides how much
// destination granularity the pipeline asks for and which scoring bonuses
// apply.
type Intent string

const (
	IntentBuddy      Intent = "buddy"
	IntentSpot       Intent = "spot"
	IntentStay       Intent = "stay"
	IntentInstructor Intent = "instructor"
	IntentEquipment  Intent = "equipment"
	IntentHike       Intent = "hike"
	IntentGeneral    Intent = "general"
)

var intentKeywords = map[Intent][]string{
	IntentSpot:       {"spot", "break", "wave", "lineup", "surf spot"},
	IntentStay:       {"stay", "hostel", "camp", "accommodation", "sleep"},
	IntentInstructor: {"instructor", "coach", "lesson", "teacher", "school"},
	IntentEquipment:  {"board", "equipment", "gear", "rental", "wetsuit", "fins"},
	IntentHike:       {"hike", "trek", "trail"},
}

// ClassifyIntent maps the declared purpose type plus topic text onto an
// Intent. An explicitly declared type wins; topics only refine a generic one.
func ClassifyIntent(purposeType string, topics []string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(purposeType))) {
	case IntentBuddy:
		return IntentBuddy
	case IntentSpot:
		return IntentSpot
	case IntentStay:
		return IntentStay
	case IntentInstructor:
		return IntentInstructor
	case IntentEquipment:
		return IntentEquipment
	case IntentHike:
		return IntentHike
	}

	joined := strings.ToLower(strings.Join(topics, " "))
	for _, intent := range []Intent{IntentSpot, IntentStay, IntentInstructor, IntentEquipment, IntentHike} {
		for _, kw := range intentKeywords[intent] {
			if strings.Contains(joined, kw) {
				return intent
			}
		}
	}

	if strings.TrimSpace(purposeType) != "" {
		return IntentBuddy
	}
	return IntentGeneral
}

// TownGranular reports whether the intent needs town-level destination
// precision from the normalizer.
func (i Intent) TownGranular() bool {
	switch i {
	case IntentSpot, IntentStay, IntentInstructor:
		return true
	}
	return false
}

// GeoSensitive reports whether area and town matches carry the higher
// scoring bonus for this intent.
func (i Intent) GeoSensitive() bool {
	switch i {
	case IntentSpot, IntentStay, IntentHike:
		return true
	}
	return false
}
