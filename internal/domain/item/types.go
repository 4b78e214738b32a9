package item

type Type string

const (
	TypeTool       Type = "tool"
	TypeFood       Type = "food"
	TypeKey        Type = "key"
	TypeClue       Type = "clue"
	TypeConsumable Type = "consumable"
	TypeQuest      Type = "quest"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

type Effect struct {
	EffectType string `json:"effect_type"`
	Value      int    `json:"value"`
	Duration   int    `json:"duration,omitempty"`
	Target     string `json:"target,omitempty"`
}

// Definition is the immutable catalog entry for one item.
type Definition struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ItemType       Type     `json:"item_type"`
	Rarity         Rarity   `json:"rarity"`
	IconPath       string   `json:"icon_path,omitempty"`
	Stackable      bool     `json:"stackable"`
	MaxStack       int      `json:"max_stack"`
	Usable         bool     `json:"usable"`
	Effects        []Effect `json:"effects,omitempty"`
	UseDescription string   `json:"use_description,omitempty"`
}

// Consumed reports whether using the item removes one from the stack.
func (d Definition) Consumed() bool {
	return d.ItemType == TypeConsumable || d.ItemType == TypeFood
}

// Recipe maps an unordered ingredient set to a result item.
type Recipe struct {
	Ingredients []string `json:"ingredients"`
	Result      string   `json:"result"`
	Description string   `json:"description"`
}

// FindRecipe returns the recipe whose ingredient set exactly equals the given
// ingredients, order and duplicates aside.
func FindRecipe(recipes []Recipe, ingredients []string) (Recipe, bool) {
	want := toSet(ingredients)
	for _, r := range recipes {
		if setsEqual(want, toSet(r.Ingredients)) {
			return r, true
		}
	}
	return Recipe{}, false
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
