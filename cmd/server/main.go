package main

import (
	"flag"
	"log"
	"os"
	"time"

	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/config"
	"github.com/contractcheck/backend/internal/eventbus"
	"github.com/contractcheck/backend/internal/handler"
	"github.com/contractcheck/backend/internal/pkg/database"
	"github.com/contractcheck/backend/internal/pkg/engine"
	"github.com/contractcheck/backend/internal/pkg/prompts"
	"github.com/contractcheck/backend/internal/repository"
	"github.com/contractcheck/backend/internal/router"
	"github.com/contractcheck/backend/internal/service/analysis"
	"github.com/contractcheck/backend/internal/service/catalog"
	"github.com/contractcheck/backend/internal/service/contractgen"
	"github.com/contractcheck/backend/internal/service/document"
	"github.com/contractcheck/backend/internal/service/tips"
	"github.com/contractcheck/backend/internal/subscriber"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("server starting...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	if err := os.MkdirAll(cfg.Data.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	recordRepo := repository.NewAnalysisRecordRepository(db)
	contractRepo := repository.NewContractRepository(db)

	// data layer: reference tables, item catalog, prompt templates
	store := catalog.NewReferenceStore(cfg.Data.LegalDir)
	items := catalog.NewItemCatalog()
	if err := items.Load(cfg.Data.ItemCatalog); err != nil {
		klog.Warningf("item catalog unavailable, analysis will see no applicable items: %v", err)
	}
	promptSet := prompts.Load(cfg.Data.PromptFile)

	eng, err := engine.NewChatEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize analysis engine: %v", err)
	}

	analysisService := analysis.NewService(eng, store, promptSet)
	documentService := document.NewService(eng, promptSet)
	generatorService := contractgen.NewService(eng, promptSet)
	tipsService := tips.NewService(eng, promptSet, time.Now().UnixNano())

	bus := eventbus.NewBus()
	analysisSubscriber := subscriber.NewAnalysisSubscriber(recordRepo, contractRepo)
	unsubscribe := analysisSubscriber.Register(bus)
	defer unsubscribe()

	analysisHandler := handler.NewAnalysisHandler(analysisService, generatorService, items, bus)
	docHandler := handler.NewDocumentHandler(documentService)
	tipsHandler := handler.NewTipsHandler(tipsService)
	recordHandler := handler.NewRecordHandler(recordRepo, contractRepo)
	configHandler := handler.NewConfigHandler(cfg, store)

	r := router.Setup(cfg, analysisHandler, docHandler, tipsHandler, recordHandler, configHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
