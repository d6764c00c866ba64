package main

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/zapponejosh/tredeco-api/internal/api"
	"github.com/zapponejosh/tredeco-api/internal/config"
	"github.com/zapponejosh/tredeco-api/internal/database"
	"github.com/zapponejosh/tredeco-api/internal/logger"
	"github.com/zapponejosh/tredeco-api/internal/places"
)

func TestRunner_AgainstRouter(t *testing.T) {
	log := logger.Discard()

	db, err := database.Open(database.DefaultConfig(":memory:"), log)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Env:         config.EnvProduction,
		APIKey:      "smoke-key",
		DefaultCity: "warszawa",
	}
	handlers := api.NewHandlers(db, cfg, places.Default(), log)

	srv := httptest.NewServer(api.SetupRoutes(handlers, cfg, log))
	defer srv.Close()

	runner := NewTestRunner(srv.URL, "smoke-key", false)
	runner.Run()

	if runner.errorCount != 0 {
		t.Errorf("runner reported %d failure(s): %v", runner.errorCount, runner.errors)
	}
	if runner.successCount == 0 {
		t.Error("runner recorded no successes")
	}
}
