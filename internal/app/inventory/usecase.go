package inventory

import (
	"context"
	"errors"
	"strings"

	"pawtrail/internal/app/ports"
	"pawtrail/internal/domain/item"
)

var (
	ErrInvalidRequest = errors.New("invalid inventory request")
	ErrUnknownItem    = errors.New("unknown item")
	ErrItemNotUsable  = errors.New("item not usable")
	ErrItemNotHeld    = errors.New("item not held")
	ErrNoRecipe       = errors.New("no recipe for these ingredients")
	ErrInventoryFull  = errors.New("inventory full")
)

type ViewUseCase struct {
	Items       ports.ItemCatalog
	Inventories ports.InventoryRepository
}

func (u ViewUseCase) Execute(ctx context.Context, req ViewRequest) (ViewResponse, error) {
	playerID, err := requirePlayer(req.PlayerID)
	if err != nil {
		return ViewResponse{}, err
	}
	inv, err := loadInventory(ctx, u.Inventories, playerID)
	if err != nil {
		return ViewResponse{}, err
	}

	stacks := make([]StackView, 0)
	for _, id := range inv.ItemIDs() {
		view := StackView{ItemID: id, Quantity: inv.Count(id)}
		if def, ok := u.Items.Item(id); ok {
			view.Name = def.Name
		}
		stacks = append(stacks, view)
	}
	return ViewResponse{Inventory: inv, Stacks: stacks}, nil
}

type AddUseCase struct {
	Items       ports.ItemCatalog
	Inventories ports.InventoryRepository
}

func (u AddUseCase) Execute(ctx context.Context, req AddRequest) (AddResponse, error) {
	playerID, err := requirePlayer(req.PlayerID)
	if err != nil {
		return AddResponse{}, err
	}
	if strings.TrimSpace(req.ItemID) == "" || req.Quantity <= 0 {
		return AddResponse{}, ErrInvalidRequest
	}
	def, ok := u.Items.Item(req.ItemID)
	if !ok {
		return AddResponse{}, ErrUnknownItem
	}

	inv, err := loadInventory(ctx, u.Inventories, playerID)
	if err != nil {
		return AddResponse{}, err
	}
	overflow := inv.Add(def, req.Quantity)
	if err := u.Inventories.Save(ctx, playerID, inv); err != nil {
		return AddResponse{}, err
	}
	return AddResponse{Added: req.Quantity - overflow, Overflow: overflow}, nil
}

type RemoveUseCase struct {
	Inventories ports.InventoryRepository
}

func (u RemoveUseCase) Execute(ctx context.Context, req RemoveRequest) (RemoveResponse, error) {
	playerID, err := requirePlayer(req.PlayerID)
	if err != nil {
		return RemoveResponse{}, err
	}
	if strings.TrimSpace(req.ItemID) == "" || req.Quantity <= 0 {
		return RemoveResponse{}, ErrInvalidRequest
	}

	inv, err := loadInventory(ctx, u.Inventories, playerID)
	if err != nil {
		return RemoveResponse{}, err
	}
	removed := inv.Remove(req.ItemID, req.Quantity)
	if removed > 0 {
		if err := u.Inventories.Save(ctx, playerID, inv); err != nil {
			return RemoveResponse{}, err
		}
	}
	return RemoveResponse{Removed: removed}, nil
}

// UseItemUseCase applies a held item. Food and consumables lose one unit on
// use; the returned effects are for collaborators to apply to game state.
type UseItemUseCase struct {
	Items       ports.ItemCatalog
	Inventories ports.InventoryRepository
}

func (u UseItemUseCase) Execute(ctx context.Context, req UseItemRequest) (UseItemResponse, error) {
	playerID, err := requirePlayer(req.PlayerID)
	if err != nil {
		return UseItemResponse{}, err
	}
	if strings.TrimSpace(req.ItemID) == "" {
		return UseItemResponse{}, ErrInvalidRequest
	}
	def, ok := u.Items.Item(req.ItemID)
	if !ok {
		return UseItemResponse{}, ErrUnknownItem
	}
	if !def.Usable {
		return UseItemResponse{}, ErrItemNotUsable
	}

	inv, err := loadInventory(ctx, u.Inventories, playerID)
	if err != nil {
		return UseItemResponse{}, err
	}
	if !inv.Has(req.ItemID, 1) {
		return UseItemResponse{}, ErrItemNotHeld
	}

	consumed := def.Consumed()
	if consumed {
		inv.Remove(req.ItemID, 1)
		if err := u.Inventories.Save(ctx, playerID, inv); err != nil {
			return UseItemResponse{}, err
		}
	}

	return UseItemResponse{
		Used:           true,
		Consumed:       consumed,
		Effects:        def.Effects,
		UseDescription: def.UseDescription,
	}, nil
}

// CraftUseCase combines held ingredients through the recipe table, consuming
// them and adding the result.
type CraftUseCase struct {
	Items       ports.ItemCatalog
	Inventories ports.InventoryRepository
}

func (u CraftUseCase) Execute(ctx context.Context, req CraftRequest) (CraftResponse, error) {
	playerID, err := requirePlayer(req.PlayerID)
	if err != nil {
		return CraftResponse{}, err
	}
	if len(req.Ingredients) == 0 {
		return CraftResponse{}, ErrInvalidRequest
	}

	recipe, ok := item.FindRecipe(u.Items.Recipes(), req.Ingredients)
	if !ok {
		return CraftResponse{}, ErrNoRecipe
	}
	result, ok := u.Items.Item(recipe.Result)
	if !ok {
		return CraftResponse{}, ErrUnknownItem
	}

	inv, err := loadInventory(ctx, u.Inventories, playerID)
	if err != nil {
		return CraftResponse{}, err
	}
	for _, ingredient := range recipe.Ingredients {
		if !inv.Has(ingredient, 1) {
			return CraftResponse{}, ErrItemNotHeld
		}
	}

	for _, ingredient := range recipe.Ingredients {
		inv.Remove(ingredient, 1)
	}
	if overflow := inv.Add(result, 1); overflow > 0 {
		return CraftResponse{}, ErrInventoryFull
	}
	if err := u.Inventories.Save(ctx, playerID, inv); err != nil {
		return CraftResponse{}, err
	}

	return CraftResponse{Crafted: true, Result: recipe.Result, Description: recipe.Description}, nil
}

func requirePlayer(playerID string) (string, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return "", ErrInvalidRequest
	}
	return playerID, nil
}

func loadInventory(ctx context.Context, repo ports.InventoryRepository, playerID string) (item.Inventory, error) {
	inv, err := repo.Get(ctx, playerID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return item.NewInventory(item.DefaultInventorySize), nil
		}
		return item.Inventory{}, err
	}
	return inv, nil
}
