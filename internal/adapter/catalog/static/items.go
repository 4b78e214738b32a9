package staticcatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/item"
)

type itemDocument struct {
	Items   []item.Definition `json:"items"`
	Recipes []item.Recipe     `json:"recipes"`
}

type ItemCatalog struct {
	defs    map[string]item.Definition
	order   []string
	recipes []item.Recipe
}

func LoadItemCatalog(path string) (*ItemCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item catalog: %w", err)
	}
	var doc itemDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode item catalog %s: %w", path, err)
	}

	c := &ItemCatalog{defs: make(map[string]item.Definition, len(doc.Items))}
	for i, def := range doc.Items {
		if def.ID == "" {
			return nil, fmt.Errorf("item %d: missing id", i)
		}
		if def.Name == "" {
			return nil, fmt.Errorf("item %q: missing name", def.ID)
		}
		if _, exists := c.defs[def.ID]; exists {
			return nil, fmt.Errorf("item %q: duplicate id", def.ID)
		}
		if def.Stackable && def.MaxStack < 1 {
			return nil, fmt.Errorf("item %q: stackable item needs max_stack >= 1", def.ID)
		}
		if !def.Stackable {
			def.MaxStack = 1
		}
		c.defs[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	sort.Strings(c.order)

	for i, r := range doc.Recipes {
		if len(r.Ingredients) == 0 {
			return nil, fmt.Errorf("recipe %d: no ingredients", i)
		}
		if _, ok := c.defs[r.Result]; !ok {
			return nil, fmt.Errorf("recipe %d: result %q is not a known item", i, r.Result)
		}
		for _, ing := range r.Ingredients {
			if _, ok := c.defs[ing]; !ok {
				return nil, fmt.Errorf("recipe %d: ingredient %q is not a known item", i, ing)
			}
		}
		c.recipes = append(c.recipes, r)
	}
	return c, nil
}

func (c *ItemCatalog) Item(itemID string) (item.Definition, bool) {
	def, ok := c.defs[itemID]
	return def, ok
}

func (c *ItemCatalog) All() []item.Definition {
	out := make([]item.Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

func (c *ItemCatalog) Recipes() []item.Recipe {
	return c.recipes
}

var _ ports.ItemCatalog = (*ItemCatalog)(nil)
