package puzzle

import (
	"fmt"
	"sort"
	"strings"
)

const MessageHintsExhausted = "you have used every hint; try combining items"

// Player-facing names for the catalog's category keys. Unlisted categories
// fall back to the raw key.
var categoryDisplayNames = map[string]string{
	"tools":       "handy tools",
	"evidence":    "clues and evidence",
	"consumables": "snacks and supplies",
	"keys":        "keys and locks",
	"documents":   "notes and papers",
	"food":        "pet food",
	"toys":        "pet toys",
}

// BuildContextualHint derives a hint from the current player state and failure
// history. Priority order, first applicable wins:
//
//  1. items missing for the current stage
//  2. analysis of the most recent failed attempt against known recipes
//  3. item categories missing from that attempt (when no recipe intersects)
//  4. generic escalation once attempts pass five
//  5. the next unused static hint, or a terminal message
//
// The result is always non-empty. Cooldown gating and history bookkeeping are
// the caller's concern.
func BuildContextualHint(def Definition, p Progress, playerItems []string, failedAttempts [][]string) string {
	if hint := stageGapHint(def, p, playerItems); hint != "" {
		return hint
	}

	if len(failedAttempts) > 0 {
		recent := failedAttempts[len(failedAttempts)-1]
		if hint := analyzeFailedAttempt(def, recent); hint != "" {
			return hint
		}
		if hint := categoryGapHint(def, recent); hint != "" {
			return hint
		}
	}

	if p.Attempts > 5 {
		return escalationHint(p.Attempts)
	}

	if p.UsedHints < len(def.Hints) {
		return def.Hints[p.UsedHints]
	}

	return MessageHintsExhausted
}

func stageGapHint(def Definition, p Progress, playerItems []string) string {
	stage, ok := def.StageByNumber(p.CurrentStage)
	if !ok {
		return ""
	}
	have := toSet(playerItems)
	missing := make([]string, 0, len(stage.RequiredItems))
	for _, item := range stage.RequiredItems {
		if _, ok := have[item]; !ok {
			missing = append(missing, item)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("stage %d needs these items: %s", p.CurrentStage, strings.Join(missing, ", "))
}

// analyzeFailedAttempt compares the attempt against every recipe and reports on
// the first one sharing at least one item (first match, not best match).
func analyzeFailedAttempt(def Definition, attempt []string) string {
	attempted := toSet(attempt)

	for _, combo := range def.Combinations {
		correct := toSet(combo.Items)

		overlap := false
		for item := range attempted {
			if _, ok := correct[item]; ok {
				overlap = true
				break
			}
		}
		if !overlap {
			continue
		}

		missing := subtract(combo.Items, attempted)
		extra := subtract(attempt, correct)

		switch {
		case len(missing) > 0 && len(extra) == 0:
			return fmt.Sprintf("good direction! you may also need: %s", strings.Join(missing, ", "))
		case len(extra) > 0 && len(missing) == 0:
			return fmt.Sprintf("%s may not be needed", strings.Join(extra, ", "))
		case len(missing) > 0 && len(extra) > 0:
			return fmt.Sprintf("try replacing %s with %s", strings.Join(extra, ", "), strings.Join(missing, ", "))
		}
	}
	return ""
}

func categoryGapHint(def Definition, attempt []string) string {
	if len(def.ItemCategories) == 0 {
		return ""
	}

	used := categoriesOf(def.ItemCategories, attempt)
	required := categoriesOf(def.ItemCategories, def.RequiredItems)

	missing := make([]string, 0, len(required))
	for category := range required {
		if _, ok := used[category]; !ok {
			missing = append(missing, category)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	sort.Strings(missing)

	names := make([]string, 0, len(missing))
	for _, category := range missing {
		if display, ok := categoryDisplayNames[category]; ok {
			names = append(names, display)
		} else {
			names = append(names, category)
		}
	}
	return fmt.Sprintf("items from other categories may be needed: %s", strings.Join(names, ", "))
}

func categoriesOf(categories map[string][]string, items []string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, item := range items {
		for category, members := range categories {
			for _, member := range members {
				if member == item {
					out[category] = struct{}{}
					break
				}
			}
		}
	}
	return out
}

func escalationHint(attempts int) string {
	switch {
	case attempts <= 3:
		return "try combining two or more items"
	case attempts <= 6:
		return "re-read the puzzle description"
	case attempts <= 10:
		return "check that you have every needed item"
	default:
		return "consider resetting and thinking it through from the start"
	}
}

// subtract returns the items of list not present in set, preserving list order
// and dropping duplicates.
func subtract(list []string, set map[string]struct{}) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, item := range list {
		if _, ok := set[item]; ok {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
