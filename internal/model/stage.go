package model

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Stage is the position of a word in the spaced-repetition progression.
// The integer value is also the number of successful reviews it takes to reach it.
type Stage int

const (
	StageNotStarted Stage = iota // Added, never reviewed.
	StageInitial                 // Initial learning done.
	StageReview1                 // Day 1 review done.
	StageReview2                 // Day 3 review done.
	StageReview3                 // Day 7 review done.
	StageReview4                 // Day 14 review done.
	StageReview5                 // Day 30 review done.
	StageMature                  // Steady state, reviewed every 30 days.
)

var (
	stageNames = [...]string{
		StageNotStarted: "NotStarted",
		StageInitial:    "Initial",
		StageReview1:    "Review1",
		StageReview2:    "Review2",
		StageReview3:    "Review3",
		StageReview4:    "Review4",
		StageReview5:    "Review5",
		StageMature:     "Mature",
	}
	stageByName = map[string]Stage{
		"NotStarted": StageNotStarted,
		"Initial":    StageInitial,
		"Review1":    StageReview1,
		"Review2":    StageReview2,
		"Review3":    StageReview3,
		"Review4":    StageReview4,
		"Review5":    StageReview5,
		"Mature":     StageMature,
	}
)

var (
	_ fmt.Stringer             = Stage(0)
	_ json.Marshaler           = Stage(0)
	_ json.Unmarshaler         = (*Stage)(nil)
	_ encoding.TextMarshaler   = Stage(0)
	_ encoding.TextUnmarshaler = (*Stage)(nil)
)

// IsValid reports whether s is one of the defined stages.
func (s Stage) IsValid() bool {
	return s >= StageNotStarted && s <= StageMature
}

// StageForCount returns the stage matching a number of successful reviews.
func StageForCount(repetitions int) Stage {
	if repetitions <= 0 {
		return StageNotStarted
	}
	if repetitions >= int(StageMature) {
		return StageMature
	}
	return Stage(repetitions)
}

// Next returns the stage reached after one more successful review.
// Mature is a steady state.
func (s Stage) Next() Stage {
	if s >= StageMature {
		return StageMature
	}
	return s + 1
}

func (s Stage) String() string {
	if s.IsValid() {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

func (s Stage) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid stage: %d", int(s))
	}
	return []byte(stageNames[s]), nil
}

func (s *Stage) UnmarshalText(text []byte) error {
	v, ok := stageByName[string(text)]
	if !ok {
		return fmt.Errorf("invalid stage: %q", text)
	}
	*s = v
	return nil
}

func (s Stage) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (s *Stage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("invalid stage: %s", data)
	}
	return s.UnmarshalText([]byte(str))
}

// Outcome is the result of one review as reported by the user.
type Outcome int

const (
	OutcomeNone    Outcome = iota // Never reviewed.
	OutcomeSuccess                // Recalled the word.
	OutcomeFail                   // Did not recall the word.
)

var (
	outcomeNames  = [...]string{OutcomeNone: "none", OutcomeSuccess: "success", OutcomeFail: "fail"}
	outcomeByName = map[string]Outcome{
		"none":    OutcomeNone,
		"success": OutcomeSuccess,
		"fail":    OutcomeFail,
	}
)

var (
	_ fmt.Stringer             = Outcome(0)
	_ encoding.TextMarshaler   = Outcome(0)
	_ encoding.TextUnmarshaler = (*Outcome)(nil)
)

// IsReview reports whether o is an outcome a user can submit.
func (o Outcome) IsReview() bool {
	return o == OutcomeSuccess || o == OutcomeFail
}

func (o Outcome) String() string {
	if o >= OutcomeNone && o <= OutcomeFail {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	if o < OutcomeNone || o > OutcomeFail {
		return nil, fmt.Errorf("invalid outcome: %d", int(o))
	}
	return []byte(outcomeNames[o]), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	v, ok := outcomeByName[string(text)]
	if !ok {
		return fmt.Errorf("invalid outcome: %q", text)
	}
	*o = v
	return nil
}
