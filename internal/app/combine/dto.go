package combine

type Request struct {
	PuzzleID string
	Items    []string
}

type Response struct {
	Matched        bool   `json:"matched"`
	Result         string `json:"result,omitempty"`
	Message        string `json:"message"`
	FirstDiscovery bool   `json:"first_discovery,omitempty"`
	Attempts       int    `json:"attempts"`
}
