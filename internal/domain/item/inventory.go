package item

const DefaultInventorySize = 20

type Slot struct {
	ItemID   string `json:"item_id,omitempty"`
	Quantity int    `json:"quantity"`
}

func (s Slot) Empty() bool {
	return s.ItemID == "" || s.Quantity <= 0
}

// Inventory is a fixed-size, slot-based container with per-item stacking.
type Inventory struct {
	Size  int    `json:"size"`
	Slots []Slot `json:"slots"`
}

func NewInventory(size int) Inventory {
	if size <= 0 {
		size = DefaultInventorySize
	}
	return Inventory{Size: size, Slots: make([]Slot, size)}
}

// Add places quantity of the item into the inventory, filling existing stacks
// before empty slots. Returns the overflow that did not fit.
func (inv *Inventory) Add(def Definition, quantity int) int {
	if quantity <= 0 {
		return 0
	}
	remaining := quantity

	if def.Stackable {
		for i := range inv.Slots {
			slot := &inv.Slots[i]
			if slot.ItemID != def.ID {
				continue
			}
			room := def.MaxStack - slot.Quantity
			if room <= 0 {
				continue
			}
			moved := min(remaining, room)
			slot.Quantity += moved
			remaining -= moved
			if remaining == 0 {
				return 0
			}
		}
	}

	for i := range inv.Slots {
		slot := &inv.Slots[i]
		if !slot.Empty() {
			continue
		}
		limit := def.MaxStack
		if !def.Stackable {
			limit = 1
		}
		moved := min(remaining, limit)
		slot.ItemID = def.ID
		slot.Quantity = moved
		remaining -= moved
		if remaining == 0 {
			return 0
		}
	}
	return remaining
}

// Remove takes up to quantity of the item out of the inventory and returns how
// many were actually removed.
func (inv *Inventory) Remove(itemID string, quantity int) int {
	if quantity <= 0 {
		return 0
	}
	removed := 0
	for i := range inv.Slots {
		slot := &inv.Slots[i]
		if slot.ItemID != itemID {
			continue
		}
		take := min(quantity-removed, slot.Quantity)
		slot.Quantity -= take
		removed += take
		if slot.Quantity <= 0 {
			*slot = Slot{}
		}
		if removed == quantity {
			break
		}
	}
	return removed
}

func (inv Inventory) Count(itemID string) int {
	total := 0
	for _, slot := range inv.Slots {
		if slot.ItemID == itemID {
			total += slot.Quantity
		}
	}
	return total
}

func (inv Inventory) Has(itemID string, quantity int) bool {
	return inv.Count(itemID) >= quantity
}

// ItemIDs lists the distinct item ids currently held, in slot order.
func (inv Inventory) ItemIDs() []string {
	var out []string
	seen := map[string]struct{}{}
	for _, slot := range inv.Slots {
		if slot.Empty() {
			continue
		}
		if _, ok := seen[slot.ItemID]; ok {
			continue
		}
		seen[slot.ItemID] = struct{}{}
		out = append(out, slot.ItemID)
	}
	return out
}

func (inv Inventory) EmptySlots() int {
	n := 0
	for _, slot := range inv.Slots {
		if slot.Empty() {
			n++
		}
	}
	return n
}

func (inv Inventory) Full() bool {
	return inv.EmptySlots() == 0
}

// Move transfers or swaps between two slots, merging stacks when the item and
// stackability allow it.
func (inv *Inventory) Move(def func(string) (Definition, bool), from, to int) bool {
	if from < 0 || from >= len(inv.Slots) || to < 0 || to >= len(inv.Slots) || from == to {
		return false
	}
	src := &inv.Slots[from]
	dst := &inv.Slots[to]
	if src.Empty() {
		return false
	}

	if dst.Empty() {
		*dst = *src
		*src = Slot{}
		return true
	}

	if src.ItemID == dst.ItemID {
		if d, ok := def(src.ItemID); ok && d.Stackable {
			room := d.MaxStack - dst.Quantity
			if room > 0 {
				moved := min(src.Quantity, room)
				dst.Quantity += moved
				src.Quantity -= moved
				if src.Quantity <= 0 {
					*src = Slot{}
				}
				return true
			}
		}
	}

	*src, *dst = *dst, *src
	return true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
