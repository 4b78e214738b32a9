package puzzle

import "time"

// Progress is the mutable per-puzzle state. There is at most one Progress per
// puzzle id at a time; starting an already-started puzzle must fail upstream.
type Progress struct {
	PuzzleID               string     `json:"puzzle_id"`
	State                  State      `json:"state"`
	CurrentStage           int        `json:"current_stage"`
	CompletedStages        []int      `json:"completed_stages"`
	UsedHints              int        `json:"used_hints"`
	Attempts               int        `json:"attempts"`
	StartTime              time.Time  `json:"start_time"`
	CompletionTime         *time.Time `json:"completion_time,omitempty"`
	DiscoveredCombinations []string   `json:"discovered_combinations"`
	FailedAttempts         [][]string `json:"failed_attempts"`
}

func NewProgress(puzzleID string, now time.Time) Progress {
	return Progress{
		PuzzleID:     puzzleID,
		State:        StateInProgress,
		CurrentStage: 1,
		StartTime:    now,
	}
}

func (p *Progress) HasDiscovered(result string) bool {
	for _, r := range p.DiscoveredCombinations {
		if r == result {
			return true
		}
	}
	return false
}

// RecordDiscovery adds result to the discovered set. Returns true on first
// discovery, false if the result was already recorded.
func (p *Progress) RecordDiscovery(result string) bool {
	if p.HasDiscovered(result) {
		return false
	}
	p.DiscoveredCombinations = append(p.DiscoveredCombinations, result)
	return true
}

// RecordFailure keeps the submitted items as given, duplicates included, so
// later hint analysis sees exactly what the player tried.
func (p *Progress) RecordFailure(items []string) {
	attempt := make([]string, len(items))
	copy(attempt, items)
	p.FailedAttempts = append(p.FailedAttempts, attempt)
}

func (p *Progress) StageCompleted(n int) bool {
	for _, s := range p.CompletedStages {
		if s == n {
			return true
		}
	}
	return false
}

// CompleteCurrentStage marks the current stage done (idempotent) and advances
// CurrentStage. The stage counter may reach totalStages+1 exactly once, as the
// "stages exhausted" sentinel, and never goes past it.
func (p *Progress) CompleteCurrentStage(totalStages int) {
	if !p.StageCompleted(p.CurrentStage) {
		p.CompletedStages = append(p.CompletedStages, p.CurrentStage)
	}
	if p.CurrentStage <= totalStages {
		p.CurrentStage++
	}
}

// MarkCompleted transitions to the terminal Completed state. Repeat calls keep
// the original completion timestamp.
func (p *Progress) MarkCompleted(now time.Time) {
	if p.State == StateCompleted {
		return
	}
	p.State = StateCompleted
	t := now
	p.CompletionTime = &t
}

func (p Progress) Terminal() bool {
	return p.State == StateCompleted || p.State == StateFailed
}

func (p Progress) Elapsed(now time.Time) time.Duration {
	if p.StartTime.IsZero() {
		return 0
	}
	return now.Sub(p.StartTime)
}
