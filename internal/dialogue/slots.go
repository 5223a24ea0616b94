package dialogue

// Slot names one piece of structured intent collected by the guided
// dialogue.
type Slot string

const (
	SlotCompanionship Slot = "companionship"
	SlotTiming        Slot = "timing"
	SlotPlanShape     Slot = "plan_shape"
	SlotVibe          Slot = "vibe"
	SlotCuisine       Slot = "cuisine"
	SlotAfterDinner   Slot = "after_dinner"
	SlotMusic         Slot = "music"

	// SlotTerminal is the absorbing end state; no further answers are
	// accepted once it is reached.
	SlotTerminal Slot = "terminal"
)

// Answers that alter the default linear slot order.
const (
	AnswerDinner       = "Dinner"
	AnswerCallItANight = "Call it a night"
)

// slotChoices is the fixed answer set per slot. Free text is not part of
// this machine; the UI presents these as selectable options.
var slotChoices = map[Slot][]string{
	SlotCompanionship: {"Solo", "Date night", "With friends", "Big group"},
	SlotTiming:        {"Happening now", "Later tonight", "This weekend"},
	SlotPlanShape:     {"One spot", "Bar crawl", "The full night out"},
	SlotVibe:          {AnswerDinner, "Dancing", "Live music", "Rooftop lounge", "Dive bar"},
	SlotCuisine:       {"Italian", "Japanese", "Mexican", "West African", "Steakhouse"},
	SlotAfterDinner:   {"Dancing", "Cocktails", "Live show", AnswerCallItANight},
	SlotMusic:         {"Afrobeats", "Latin", "House", "Hip-Hop", "Jazz", "Surprise me"},
}

// Prompts shown by the UI layer for each slot.
var slotPrompts = map[Slot]string{
	SlotCompanionship: "Who are you heading out with?",
	SlotTiming:        "When is this happening?",
	SlotPlanShape:     "What shape of night?",
	SlotVibe:          "What's the vibe?",
	SlotCuisine:       "What kind of food?",
	SlotAfterDinner:   "And after dinner?",
	SlotMusic:         "What should be playing?",
}

// Choices returns the valid answers for a slot, nil for terminal or
// unknown slots.
func Choices(s Slot) []string {
	return slotChoices[s]
}

// Prompt returns the question text for a slot.
func Prompt(s Slot) string {
	return slotPrompts[s]
}

func validAnswer(s Slot, answer string) bool {
	for _, c := range slotChoices[s] {
		if c == answer {
			return true
		}
	}
	return false
}

// next is the transition table, keyed by the current slot and the accepted
// answer. Mostly linear, with two branches: "Dinner" at the vibe slot
// detours through cuisine, and "Call it a night" at the after-dinner slot
// skips music and ends the dialogue.
func next(s Slot, answer string) Slot {
	switch s {
	case SlotCompanionship:
		return SlotTiming
	case SlotTiming:
		return SlotPlanShape
	case SlotPlanShape:
		return SlotVibe
	case SlotVibe:
		if answer == AnswerDinner {
			return SlotCuisine
		}
		return SlotAfterDinner
	case SlotCuisine:
		return SlotAfterDinner
	case SlotAfterDinner:
		if answer == AnswerCallItANight {
			return SlotTerminal
		}
		return SlotMusic
	case SlotMusic:
		return SlotTerminal
	}
	return SlotTerminal
}
