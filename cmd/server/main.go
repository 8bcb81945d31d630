package main

import (
	"flag"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/quizhero/core/internal/bank"
	"github.com/quizhero/core/internal/config"
	"github.com/quizhero/core/internal/game"
	"github.com/quizhero/core/internal/models"
	"github.com/quizhero/core/internal/profile"
	"github.com/quizhero/core/internal/provider"
	"github.com/quizhero/core/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize storage
	var kv storage.KV
	if cfg.Storage.Path != "" {
		sqlite, err := storage.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}
		defer sqlite.Close()
		kv = sqlite
	} else {
		log.Println("No storage path configured, progress will not persist")
		kv = storage.NewMemoryKV()
	}

	profiles := profile.NewStore(kv)
	questionBank := bank.Default(rand.New(rand.NewSource(time.Now().UnixNano())))
	source := provider.NewClient(cfg.Provider.Model, cfg.Provider.Mock)

	engine := game.NewEngine(questionBank, source, profiles, game.Config{
		QuestionCount:    cfg.Quiz.QuestionCount,
		SurvivalBatch:    cfg.Quiz.SurvivalBatchSize,
		StartingLives:    cfg.Quiz.StartingLives,
		AutoAdvanceDelay: cfg.AutoAdvanceDelay(),
		Locale:           models.Locale(cfg.Quiz.Locale),
	})

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	game.NewHandler(engine, profiles).RegisterRoutes(api)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
