package model

import "time"

type PuzzleProgress struct {
	PuzzleID       string `gorm:"primaryKey"`
	State          string
	CurrentStage   int
	UsedHints      int
	Attempts       int
	StartTime      time.Time
	CompletionTime *time.Time
	// JSON-encoded set/list fields
	CompletedStages        []byte
	DiscoveredCombinations []byte
	FailedAttempts         []byte
	UpdatedAt              time.Time
}

func (PuzzleProgress) TableName() string { return "puzzle_progress" }

type HintState struct {
	PuzzleID   string `gorm:"primaryKey"`
	LastHintAt time.Time
	History    []byte
	UpdatedAt  time.Time
}

func (HintState) TableName() string { return "hint_states" }

type PuzzleEvent struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	PuzzleID   string `gorm:"index"`
	Type       string
	OccurredAt time.Time `gorm:"index"`
	Payload    []byte
}

func (PuzzleEvent) TableName() string { return "puzzle_events" }

type PlayerInventory struct {
	PlayerID  string `gorm:"primaryKey"`
	Size      int
	Slots     []byte
	UpdatedAt time.Time
}

func (PlayerInventory) TableName() string { return "player_inventories" }
