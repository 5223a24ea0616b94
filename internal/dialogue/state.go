package dialogue

import "errors"

// ErrNotTerminal is returned when a recommendation context is requested
// before the dialogue has finished.
var ErrNotTerminal = errors.New("dialogue has not reached its terminal state")

// State is the full dialogue position: the slot currently being asked and
// every answer accepted so far. It is a plain serializable value with no
// rendering concerns; Advance is the only way it changes, and it never
// mutates its receiver. The machine is forward-only: revisiting an
// answered slot is not supported.
type State struct {
	Current Slot            `json:"current"`
	Answers map[Slot]string `json:"answers"`
}

// NewState returns the initial dialogue state: no answers, asking about
// companionship.
func NewState() State {
	return State{Current: SlotCompanionship, Answers: map[Slot]string{}}
}

// Terminal reports whether the dialogue has ended.
func (s State) Terminal() bool {
	return s.Current == SlotTerminal
}

// Advance applies one answer. An answer outside the current slot's choice
// set, or any answer once terminal, is rejected: the returned state equals
// the input state and ok is false. On acceptance the answer is recorded
// and Current moves per the transition table.
func (s State) Advance(answer string) (State, bool) {
	if s.Terminal() || !validAnswer(s.Current, answer) {
		return s, false
	}

	answers := make(map[Slot]string, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	answers[s.Current] = answer

	return State{
		Current: next(s.Current, answer),
		Answers: answers,
	}, true
}

// RecommendationContext is the structured intent handed to the
// recommendation API once the dialogue terminates. Slots the dialogue
// skipped are empty and omitted on the wire.
type RecommendationContext struct {
	Companionship string `json:"companionship,omitempty"`
	Timing        string `json:"timing,omitempty"`
	PlanShape     string `json:"planShape,omitempty"`
	Vibe          string `json:"vibe,omitempty"`
	Cuisine       string `json:"cuisine,omitempty"`
	AfterDinner   string `json:"afterDinner,omitempty"`
	Music         string `json:"music,omitempty"`
}

// Context derives the recommendation context from a terminal state. It is
// the only artifact the external recommendation collaborator ever sees,
// and the terminal state is the only state it may be derived from.
func (s State) Context() (RecommendationContext, error) {
	if !s.Terminal() {
		return RecommendationContext{}, ErrNotTerminal
	}
	return RecommendationContext{
		Companionship: s.Answers[SlotCompanionship],
		Timing:        s.Answers[SlotTiming],
		PlanShape:     s.Answers[SlotPlanShape],
		Vibe:          s.Answers[SlotVibe],
		Cuisine:       s.Answers[SlotCuisine],
		AfterDinner:   s.Answers[SlotAfterDinner],
		Music:         s.Answers[SlotMusic],
	}, nil
}
