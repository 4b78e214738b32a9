package puzzle

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

type SuccessConditionType string

const (
	SuccessAllStagesComplete   SuccessConditionType = "all_stages_complete"
	SuccessSpecificCombination SuccessConditionType = "specific_combination"
)

type Stage struct {
	Stage         int      `json:"stage"`
	Description   string   `json:"description"`
	RequiredItems []string `json:"required_items"`
	Hint          string   `json:"hint"`
}

type Combination struct {
	Items          []string `json:"items"`
	Result         string   `json:"result"`
	Description    string   `json:"description"`
	SuccessMessage string   `json:"success_message"`
}

type SuccessCondition struct {
	Type                 SuccessConditionType `json:"type"`
	RequiredCombinations []string             `json:"required_combinations"`
}

type Reward struct {
	Experience int      `json:"experience,omitempty"`
	Items      []string `json:"items,omitempty"`
}

type DifficultySettings struct {
	MaxHints          int `json:"max_hints"`
	HintCooldownSec   int `json:"hint_cooldown"`
	AutoHintThreshold int `json:"auto_hint_threshold"`
}

func (s DifficultySettings) HintCooldown() time.Duration {
	return time.Duration(s.HintCooldownSec) * time.Second
}

// Definition is the immutable catalog entry for one puzzle. Decoded once at
// startup; never mutated afterwards.
type Definition struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Difficulty     Difficulty          `json:"difficulty"`
	Category       string              `json:"category,omitempty"`
	RequiredItems  []string            `json:"required_items"`
	Stages         []Stage             `json:"stages"`
	Combinations   []Combination       `json:"combinations"`
	Hints          []string            `json:"hints"`
	ItemCategories map[string][]string `json:"item_categories,omitempty"`
	Success        SuccessCondition    `json:"success_condition"`
	Rewards        Reward              `json:"rewards,omitempty"`
}

func (d Definition) StageByNumber(n int) (Stage, bool) {
	for _, s := range d.Stages {
		if s.Stage == n {
			return s, true
		}
	}
	return Stage{}, false
}

// Event replaces the callback notifications of older builds: use cases append
// events and collaborators poll them through the replay use case.
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventPuzzleStarted      = "puzzle_started"
	EventPuzzleReset        = "puzzle_reset"
	EventCombinationChecked = "combination_checked"
	EventStageCompleted     = "stage_completed"
	EventPuzzleCompleted    = "puzzle_completed"
	EventHintServed         = "hint_served"
)

// HintState tracks contextual-hint delivery cadence for one puzzle. It lives
// outside Progress on purpose: it is UI-facing pacing state, not puzzle logic.
type HintState struct {
	PuzzleID   string    `json:"puzzle_id"`
	LastHintAt time.Time `json:"last_hint_at"`
	History    []string  `json:"history"`
}
