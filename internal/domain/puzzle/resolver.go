package puzzle

const (
	MessageAlreadyDiscovered = "this combination has already been discovered"
	MessageNoMatch           = "nothing happened with this combination"
)

type CombinationOutcome struct {
	Matched        bool   `json:"matched"`
	Result         string `json:"result,omitempty"`
	Message        string `json:"message"`
	FirstDiscovery bool   `json:"first_discovery,omitempty"`
}

// ResolveCombination matches submitted items against the definition's recipe
// list and mutates progress accordingly. Matching is exact set equality:
// duplicates in the submission collapse, order is irrelevant, and supersets or
// subsets of a recipe never match. The attempt counter increments on every
// call, matched or not.
func ResolveCombination(def Definition, p *Progress, items []string) CombinationOutcome {
	p.Attempts++

	submitted := toSet(items)
	for _, combo := range def.Combinations {
		if !setsEqual(submitted, toSet(combo.Items)) {
			continue
		}
		if p.RecordDiscovery(combo.Result) {
			return CombinationOutcome{
				Matched:        true,
				Result:         combo.Result,
				Message:        combo.SuccessMessage,
				FirstDiscovery: true,
			}
		}
		return CombinationOutcome{
			Matched: true,
			Result:  combo.Result,
			Message: MessageAlreadyDiscovered,
		}
	}

	p.RecordFailure(items)
	return CombinationOutcome{Message: MessageNoMatch}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
