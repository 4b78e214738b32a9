package httpadapter

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pawtrail/internal/adapter/repo/memory"
	"pawtrail/internal/app/combine"
	"pawtrail/internal/app/inventory"
	"pawtrail/internal/app/ports"
	"pawtrail/internal/app/start"
	"pawtrail/internal/app/status"
	"pawtrail/internal/domain/puzzle"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type fakeCatalog struct {
	defs map[string]puzzle.Definition
}

func (c fakeCatalog) Definition(id string) (puzzle.Definition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

func (c fakeCatalog) Settings(puzzle.Difficulty) puzzle.DifficultySettings {
	return puzzle.DifficultySettings{MaxHints: 3, HintCooldownSec: 30}
}

func (c fakeCatalog) All() []puzzle.Definition {
	out := make([]puzzle.Definition, 0, len(c.defs))
	for _, def := range c.defs {
		out = append(out, def)
	}
	return out
}

var _ ports.PuzzleCatalog = fakeCatalog{}

func testCatalog() fakeCatalog {
	return fakeCatalog{defs: map[string]puzzle.Definition{
		"lost_collar": {
			ID:         "lost_collar",
			Title:      "The Lost Collar",
			Difficulty: puzzle.DifficultyEasy,
			Combinations: []puzzle.Combination{
				{Items: []string{"rusty_key", "oil_can"}, Result: "working_key", SuccessMessage: "the key turns freely now"},
			},
			Success: puzzle.SuccessCondition{Type: puzzle.SuccessAllStagesComplete},
		},
	}}
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
}

func TestStart_Created(t *testing.T) {
	store := memory.NewStore()
	h := Handler{
		StartUC: start.UseCase{
			Catalog:  testCatalog(),
			Progress: memory.NewProgressRepo(store),
			Events:   memory.NewEventRepo(store),
			Now:      fixedNow,
		},
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"puzzle_id":"lost_collar"}`))

	h.start(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusCreated; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body start.Response
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Title != "The Lost Collar" {
		t.Fatalf("title mismatch: %q", body.Title)
	}
	if body.Progress.State != puzzle.StateInProgress {
		t.Fatalf("state mismatch: %q", body.Progress.State)
	}
}

func TestStart_AlreadyStartedConflict(t *testing.T) {
	store := memory.NewStore()
	store.SeedProgress(puzzle.NewProgress("lost_collar", fixedNow()))
	h := Handler{
		StartUC: start.UseCase{
			Catalog:  testCatalog(),
			Progress: memory.NewProgressRepo(store),
			Now:      fixedNow,
		},
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"puzzle_id":"lost_collar"}`))

	h.start(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "puzzle_already_started"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestCombine_NotStarted(t *testing.T) {
	store := memory.NewStore()
	h := Handler{
		CombineUC: combine.UseCase{
			Catalog:  testCatalog(),
			Progress: memory.NewProgressRepo(store),
			Now:      fixedNow,
		},
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"puzzle_id":"lost_collar","items":["rusty_key","oil_can"]}`))

	h.combine(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "puzzle_not_started"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestCombine_Match(t *testing.T) {
	store := memory.NewStore()
	store.SeedProgress(puzzle.NewProgress("lost_collar", fixedNow()))
	h := Handler{
		CombineUC: combine.UseCase{
			Catalog:  testCatalog(),
			Progress: memory.NewProgressRepo(store),
			Events:   memory.NewEventRepo(store),
			Now:      fixedNow,
		},
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"puzzle_id":"lost_collar","items":["oil_can","rusty_key"]}`))

	h.combine(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body combine.Response
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !body.Matched {
		t.Fatalf("expected match, got %+v", body)
	}
	if body.Result != "working_key" {
		t.Fatalf("result mismatch: %q", body.Result)
	}
	if body.Attempts != 1 {
		t.Fatalf("attempts mismatch: %d", body.Attempts)
	}
}

func TestStatus_QueryParam(t *testing.T) {
	store := memory.NewStore()
	h := Handler{
		StatusUC: status.UseCase{
			Catalog:  testCatalog(),
			Progress: memory.NewProgressRepo(store),
			Now:      fixedNow,
		},
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/puzzle/status?puzzle_id=lost_collar")

	h.status(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body status.Response
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.State != puzzle.StateNotStarted {
		t.Fatalf("state mismatch: %q", body.State)
	}
}

func TestCombine_InvalidJSON(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{broken`))

	h.combine(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "invalid_json"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_UnknownPuzzle(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrUnknownPuzzle)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "unknown_puzzle"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_CorruptSave(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrCorruptSave)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "corrupt_save"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_InventorySentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{inventory.ErrUnknownItem, consts.StatusNotFound, "unknown_item"},
		{inventory.ErrItemNotUsable, consts.StatusConflict, "item_not_usable"},
		{inventory.ErrNoRecipe, consts.StatusConflict, "no_recipe"},
		{inventory.ErrInvalidRequest, consts.StatusBadRequest, "bad_request"},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, tc.err)
		if got := ctx.Response.StatusCode(); got != tc.status {
			t.Fatalf("%v: status mismatch: got=%d want=%d", tc.err, got, tc.status)
		}
		var body map[string]map[string]string
		if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if got := body["error"]["code"]; got != tc.code {
			t.Fatalf("%v: error code mismatch: got=%q want=%q", tc.err, got, tc.code)
		}
	}
}
