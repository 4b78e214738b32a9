package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	staticcatalog "pawtrail/internal/adapter/catalog/static"
	httpadapter "pawtrail/internal/adapter/http"
	metricsinmem "pawtrail/internal/adapter/metrics/inmemory"
	gormrepo "pawtrail/internal/adapter/repo/gorm"
	"pawtrail/internal/adapter/repo/memory"
	"pawtrail/internal/adapter/savefile"
	"pawtrail/internal/app/combine"
	"pawtrail/internal/app/hint"
	"pawtrail/internal/app/inventory"
	"pawtrail/internal/app/persist"
	"pawtrail/internal/app/ports"
	"pawtrail/internal/app/replay"
	"pawtrail/internal/app/stage"
	"pawtrail/internal/app/start"
	"pawtrail/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	puzzleCatalog, err := staticcatalog.LoadPuzzleCatalog(strEnv("PAWTRAIL_PUZZLE_DATA", "./data/puzzles_database.json"))
	if err != nil {
		log.Fatalf("load puzzle catalog: %v", err)
	}
	itemCatalog, err := staticcatalog.LoadItemCatalog(strEnv("PAWTRAIL_ITEM_DATA", "./data/items_database.json"))
	if err != nil {
		log.Fatalf("load item catalog: %v", err)
	}

	progressRepo, hintStateRepo, eventRepo, inventoryRepo, txManager := mustBuildRepos()
	snapshots := savefile.New(strEnv("PAWTRAIL_SAVE_FILE", "./saves/puzzle_progress.json"))
	kpiRecorder := metricsinmem.NewRecorder()

	loadUC := persist.LoadUseCase{Progress: progressRepo, Snapshots: snapshots}
	if resp, err := loadUC.Execute(context.Background(), persist.LoadRequest{}); err != nil {
		log.Fatalf("load save file: %v", err)
	} else if resp.Found {
		log.Printf("restored %d puzzle(s) from save file", resp.Loaded)
	}

	h := httpadapter.Handler{
		StartUC: start.UseCase{Catalog: puzzleCatalog, Progress: progressRepo, Events: eventRepo, Now: time.Now},
		ResetUC: start.ResetUseCase{Progress: progressRepo, HintStates: hintStateRepo, Events: eventRepo, Now: time.Now},
		CombineUC: combine.UseCase{
			TxManager: txManager,
			Catalog:   puzzleCatalog,
			Progress:  progressRepo,
			Events:    eventRepo,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		StageUC:      stage.UseCase{Catalog: puzzleCatalog, Progress: progressRepo, Events: eventRepo, Now: time.Now},
		CompletionUC: stage.CompletionUseCase{Catalog: puzzleCatalog, Progress: progressRepo, Events: eventRepo, Metrics: kpiRecorder, Now: time.Now},
		HintUC:       hint.SequentialUseCase{Catalog: puzzleCatalog, Progress: progressRepo, Events: eventRepo, Metrics: kpiRecorder, Now: time.Now},
		ContextualHintUC: hint.ContextualUseCase{
			Catalog:    puzzleCatalog,
			Progress:   progressRepo,
			HintStates: hintStateRepo,
			Events:     eventRepo,
			Metrics:    kpiRecorder,
			Now:        time.Now,
		},
		HintStatusUC:    hint.StatusUseCase{Catalog: puzzleCatalog, Progress: progressRepo, HintStates: hintStateRepo, Now: time.Now},
		StatusUC:        status.UseCase{Catalog: puzzleCatalog, Progress: progressRepo, Now: time.Now},
		ListUC:          status.ListUseCase{Catalog: puzzleCatalog},
		ReplayUC:        replay.UseCase{Events: eventRepo},
		SaveUC:          persist.SaveUseCase{Progress: progressRepo, Snapshots: snapshots},
		LoadUC:          loadUC,
		InventoryViewUC: inventory.ViewUseCase{Items: itemCatalog, Inventories: inventoryRepo},
		InventoryAddUC:  inventory.AddUseCase{Items: itemCatalog, Inventories: inventoryRepo},
		InventoryRemUC:  inventory.RemoveUseCase{Inventories: inventoryRepo},
		UseItemUC:       inventory.UseItemUseCase{Items: itemCatalog, Inventories: inventoryRepo},
		CraftUC:         inventory.CraftUseCase{Items: itemCatalog, Inventories: inventoryRepo},
		Items:           itemCatalog,
		KPI:             kpiRecorder,
	}

	addr := strEnv("PAWTRAIL_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("pawtrail server listening on %s", addr)
	s.Spin()
}

func mustBuildRepos() (ports.ProgressRepository, ports.HintStateRepository, ports.EventRepository, ports.InventoryRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("PAWTRAIL_DB_DSN"))
	if dsn == "" {
		log.Println("PAWTRAIL_DB_DSN not set, using in-memory repositories")
		store := memory.NewStore()
		return memory.NewProgressRepo(store), memory.NewHintStateRepo(store), memory.NewEventRepo(store), memory.NewInventoryRepo(store), memory.NewTxManager()
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.AutoMigrate(db); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}
	return gormrepo.NewProgressRepo(db), gormrepo.NewHintStateRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewInventoryRepo(db), gormrepo.NewTxManager(db)
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
