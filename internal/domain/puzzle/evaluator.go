package puzzle

import "time"

// EvaluateStage checks whether the current stage's requirement is met by the
// available items (subset test; extra items are ignored). On satisfaction the
// stage is marked completed and CurrentStage advances. Returns true iff the
// current stage's requirement was satisfied on this call.
//
// A CurrentStage past the last stage is the "stages exhausted" sentinel: the
// lookup simply misses and the evaluator reports false.
func EvaluateStage(def Definition, p *Progress, availableItems []string) bool {
	stage, ok := def.StageByNumber(p.CurrentStage)
	if !ok {
		return false
	}

	have := toSet(availableItems)
	for _, required := range stage.RequiredItems {
		if _, ok := have[required]; !ok {
			return false
		}
	}

	p.CompleteCurrentStage(len(def.Stages))
	return true
}

// EvaluateCompletion checks the definition's success condition against
// progress. On success it transitions progress to the terminal Completed state
// (idempotent; the completion timestamp is never re-stamped).
func EvaluateCompletion(def Definition, p *Progress, now time.Time) bool {
	switch def.Success.Type {
	case SuccessAllStagesComplete:
		if len(p.CompletedStages) < len(def.Stages) {
			return false
		}
		if !allDiscovered(p, def.Success.RequiredCombinations) {
			return false
		}
	case SuccessSpecificCombination:
		if !allDiscovered(p, def.Success.RequiredCombinations) {
			return false
		}
	default:
		return false
	}

	p.MarkCompleted(now)
	return true
}

func allDiscovered(p *Progress, required []string) bool {
	for _, combo := range required {
		if !p.HasDiscovered(combo) {
			return false
		}
	}
	return true
}
