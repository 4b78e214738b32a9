package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"pawtrail/internal/app/combine"
	"pawtrail/internal/app/hint"
	"pawtrail/internal/app/inventory"
	"pawtrail/internal/app/persist"
	"pawtrail/internal/app/ports"
	"pawtrail/internal/app/replay"
	"pawtrail/internal/app/stage"
	"pawtrail/internal/app/start"
	"pawtrail/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	StartUC          start.UseCase
	ResetUC          start.ResetUseCase
	CombineUC        combine.UseCase
	StageUC          stage.UseCase
	CompletionUC     stage.CompletionUseCase
	HintUC           hint.SequentialUseCase
	ContextualHintUC hint.ContextualUseCase
	HintStatusUC     hint.StatusUseCase
	StatusUC         status.UseCase
	ListUC           status.ListUseCase
	ReplayUC         replay.UseCase
	SaveUC           persist.SaveUseCase
	LoadUC           persist.LoadUseCase
	InventoryViewUC  inventory.ViewUseCase
	InventoryAddUC   inventory.AddUseCase
	InventoryRemUC   inventory.RemoveUseCase
	UseItemUC        inventory.UseItemUseCase
	CraftUC          inventory.CraftUseCase
	Items            ports.ItemCatalog
	KPI              kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	puzzleGroup := s.Group("/api/puzzle")
	puzzleGroup.POST("/start", h.start)
	puzzleGroup.POST("/reset", h.reset)
	puzzleGroup.POST("/combine", h.combine)
	puzzleGroup.POST("/stage", h.stage)
	puzzleGroup.POST("/complete", h.complete)
	puzzleGroup.POST("/hint", h.hint)
	puzzleGroup.POST("/hint/contextual", h.contextualHint)
	puzzleGroup.GET("/hint/status", h.hintStatus)
	puzzleGroup.GET("/status", h.status)
	puzzleGroup.GET("/replay", h.replay)
	puzzleGroup.GET("/list", h.list)

	invGroup := s.Group("/api/inventory")
	invGroup.GET("/", h.inventoryView)
	invGroup.POST("/add", h.inventoryAdd)
	invGroup.POST("/remove", h.inventoryRemove)
	invGroup.POST("/use", h.useItem)
	invGroup.POST("/craft", h.craft)

	s.GET("/api/items", h.items)
	s.GET("/api/items/:id", h.itemByID)

	saveGroup := s.Group("/api/save")
	saveGroup.POST("/save", h.save)
	saveGroup.POST("/load", h.load)

	s.GET("/ops/kpi", h.kpi)
}

type puzzleIDRequest struct {
	PuzzleID string `json:"puzzle_id"`
}

type combineRequest struct {
	PuzzleID string   `json:"puzzle_id"`
	Items    []string `json:"items"`
}

type stageRequest struct {
	PuzzleID       string   `json:"puzzle_id"`
	AvailableItems []string `json:"available_items"`
}

type contextualHintRequest struct {
	PuzzleID       string     `json:"puzzle_id"`
	PlayerItems    []string   `json:"player_items"`
	FailedAttempts [][]string `json:"failed_attempts,omitempty"`
}

type inventoryItemRequest struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity,omitempty"`
}

type craftRequest struct {
	PlayerID    string   `json:"player_id"`
	Ingredients []string `json:"ingredients"`
}

func (h Handler) start(c context.Context, ctx *app.RequestContext) {
	var body puzzleIDRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.StartUC.Execute(c, start.Request{PuzzleID: body.PuzzleID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	var body puzzleIDRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ResetUC.Execute(c, start.ResetRequest{PuzzleID: body.PuzzleID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) combine(c context.Context, ctx *app.RequestContext) {
	var body combineRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CombineUC.Execute(c, combine.Request{
		PuzzleID: body.PuzzleID,
		Items:    body.Items,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) stage(c context.Context, ctx *app.RequestContext) {
	var body stageRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.StageUC.Execute(c, stage.Request{
		PuzzleID:       body.PuzzleID,
		AvailableItems: body.AvailableItems,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) complete(c context.Context, ctx *app.RequestContext) {
	var body puzzleIDRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CompletionUC.Execute(c, stage.CompletionRequest{PuzzleID: body.PuzzleID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) hint(c context.Context, ctx *app.RequestContext) {
	var body puzzleIDRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.HintUC.Execute(c, hint.SequentialRequest{PuzzleID: body.PuzzleID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) contextualHint(c context.Context, ctx *app.RequestContext) {
	var body contextualHintRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ContextualHintUC.Execute(c, hint.ContextualRequest{
		PuzzleID:       body.PuzzleID,
		PlayerItems:    body.PlayerItems,
		FailedAttempts: body.FailedAttempts,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) hintStatus(c context.Context, ctx *app.RequestContext) {
	resp, err := h.HintStatusUC.Execute(c, hint.StatusRequest{
		PuzzleID: string(ctx.Query("puzzle_id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{
		PuzzleID: string(ctx.Query("puzzle_id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		PuzzleID: string(ctx.Query("puzzle_id")),
		Limit:    limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) list(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ListUC.Execute(c, status.ListRequest{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SaveUC.Execute(c, persist.SaveRequest{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	resp, err := h.LoadUC.Execute(c, persist.LoadRequest{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryView(c context.Context, ctx *app.RequestContext) {
	resp, err := h.InventoryViewUC.Execute(c, inventory.ViewRequest{
		PlayerID: string(ctx.Query("player_id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryAdd(c context.Context, ctx *app.RequestContext) {
	var body inventoryItemRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.InventoryAddUC.Execute(c, inventory.AddRequest{
		PlayerID: body.PlayerID,
		ItemID:   body.ItemID,
		Quantity: body.Quantity,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryRemove(c context.Context, ctx *app.RequestContext) {
	var body inventoryItemRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.InventoryRemUC.Execute(c, inventory.RemoveRequest{
		PlayerID: body.PlayerID,
		ItemID:   body.ItemID,
		Quantity: body.Quantity,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) useItem(c context.Context, ctx *app.RequestContext) {
	var body inventoryItemRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.UseItemUC.Execute(c, inventory.UseItemRequest{
		PlayerID: body.PlayerID,
		ItemID:   body.ItemID,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) craft(c context.Context, ctx *app.RequestContext) {
	var body craftRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CraftUC.Execute(c, inventory.CraftRequest{
		PlayerID:    body.PlayerID,
		Ingredients: body.Ingredients,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) items(_ context.Context, ctx *app.RequestContext) {
	if h.Items == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "item catalog not configured")
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"items":   h.Items.All(),
		"recipes": h.Items.Recipes(),
	})
}

func (h Handler) itemByID(_ context.Context, ctx *app.RequestContext) {
	if h.Items == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "item catalog not configured")
		return
	}
	def, ok := h.Items.Item(ctx.Param("id"))
	if !ok {
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_item", "unknown item")
		return
	}
	ctx.JSON(consts.StatusOK, def)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrUnknownPuzzle):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_puzzle", err.Error())
	case errors.Is(err, ports.ErrPuzzleNotStarted):
		writeErrorBody(ctx, consts.StatusConflict, "puzzle_not_started", err.Error())
	case errors.Is(err, ports.ErrAlreadyStarted):
		writeErrorBody(ctx, consts.StatusConflict, "puzzle_already_started", err.Error())
	case errors.Is(err, ports.ErrCorruptSave):
		writeErrorBody(ctx, consts.StatusConflict, "corrupt_save", err.Error())
	case errors.Is(err, inventory.ErrUnknownItem):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_item", err.Error())
	case errors.Is(err, inventory.ErrItemNotUsable):
		writeErrorBody(ctx, consts.StatusConflict, "item_not_usable", err.Error())
	case errors.Is(err, inventory.ErrItemNotHeld):
		writeErrorBody(ctx, consts.StatusConflict, "item_not_held", err.Error())
	case errors.Is(err, inventory.ErrNoRecipe):
		writeErrorBody(ctx, consts.StatusConflict, "no_recipe", err.Error())
	case errors.Is(err, inventory.ErrInventoryFull):
		writeErrorBody(ctx, consts.StatusConflict, "inventory_full", err.Error())
	case errors.Is(err, start.ErrInvalidRequest),
		errors.Is(err, combine.ErrInvalidRequest),
		errors.Is(err, stage.ErrInvalidRequest),
		errors.Is(err, hint.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, inventory.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
