package inmemory

import (
	"sync"

	"pawtrail/internal/app/ports"
)

type Snapshot struct {
	AttemptTotal     uint64            `json:"attempt_total"`
	AttemptMatched   uint64            `json:"attempt_matched"`
	AttemptUnmatched uint64            `json:"attempt_unmatched"`
	Discoveries      uint64            `json:"discoveries"`
	Completions      uint64            `json:"completions"`
	Hints            uint64            `json:"hints"`
	HintsByKind      map[string]uint64 `json:"hints_by_kind"`
}

type Recorder struct {
	mu          sync.Mutex
	matched     uint64
	unmatched   uint64
	discoveries uint64
	completions uint64
	hintsByKind map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		hintsByKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordAttempt(matched bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if matched {
		r.matched++
	} else {
		r.unmatched++
	}
}

func (r *Recorder) RecordDiscovery() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discoveries++
}

func (r *Recorder) RecordCompletion() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions++
}

func (r *Recorder) RecordHint(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hintsByKind[kind]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		AttemptMatched:   r.matched,
		AttemptUnmatched: r.unmatched,
		AttemptTotal:     r.matched + r.unmatched,
		Discoveries:      r.discoveries,
		Completions:      r.completions,
		HintsByKind:      make(map[string]uint64, len(r.hintsByKind)),
	}
	for k, v := range r.hintsByKind {
		out.HintsByKind[k] = v
		out.Hints += v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

var _ ports.PuzzleMetrics = (*Recorder)(nil)
