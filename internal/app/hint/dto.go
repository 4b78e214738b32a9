package hint

type ContextualRequest struct {
	PuzzleID    string
	PlayerItems []string
	// FailedAttempts overrides the stored failure history when non-nil
	// (callers may replay a snapshot).
	FailedAttempts [][]string
}

type ContextualResponse struct {
	Hint             string `json:"hint"`
	CoolingDown      bool   `json:"cooling_down,omitempty"`
	RemainingSeconds int    `json:"remaining_seconds,omitempty"`
}

type SequentialRequest struct {
	PuzzleID string
}

type SequentialResponse struct {
	Hint      string `json:"hint"`
	UsedHints int    `json:"used_hints"`
	Exhausted bool   `json:"exhausted,omitempty"`
}

type StatusRequest struct {
	PuzzleID string
}

type StatusResponse struct {
	UsedHints         int      `json:"used_hints"`
	MaxHints          int      `json:"max_hints"`
	RemainingHints    int      `json:"remaining_hints"`
	CooldownRemaining int      `json:"cooldown_remaining"`
	CanUseHint        bool     `json:"can_use_hint"`
	AutoHintAvailable bool     `json:"auto_hint_available"`
	History           []string `json:"history,omitempty"`
}
