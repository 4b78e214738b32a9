package inventory

import "pawtrail/internal/domain/item"

type ViewRequest struct {
	PlayerID string
}

type StackView struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type ViewResponse struct {
	Inventory item.Inventory `json:"inventory"`
	Stacks    []StackView    `json:"stacks"`
}

type AddRequest struct {
	PlayerID string
	ItemID   string
	Quantity int
}

type AddResponse struct {
	Added    int `json:"added"`
	Overflow int `json:"overflow,omitempty"`
}

type RemoveRequest struct {
	PlayerID string
	ItemID   string
	Quantity int
}

type RemoveResponse struct {
	Removed int `json:"removed"`
}

type UseItemRequest struct {
	PlayerID string
	ItemID   string
}

type UseItemResponse struct {
	Used           bool          `json:"used"`
	Consumed       bool          `json:"consumed,omitempty"`
	Effects        []item.Effect `json:"effects,omitempty"`
	UseDescription string        `json:"use_description,omitempty"`
}

type CraftRequest struct {
	PlayerID    string
	Ingredients []string
}

type CraftResponse struct {
	Crafted     bool   `json:"crafted"`
	Result      string `json:"result,omitempty"`
	Description string `json:"description,omitempty"`
}
