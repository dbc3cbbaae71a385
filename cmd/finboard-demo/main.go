// Command finboard-demo seeds the configured store with generated
// sample transactions and budget settings.
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"finboard/internal/config"
	"finboard/internal/demo"
	"finboard/internal/kv"
	applog "finboard/internal/log"
	"finboard/internal/state"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentDemo)
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err.Error())
		os.Exit(1)
	}

	var store kv.Store
	switch cfg.KVBackend {
	case "sqlite":
		s, err := kv.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize storage", applog.FieldError, err.Error())
			os.Exit(1)
		}
		defer s.Close()
		store = s
	default:
		logger.Warn("Seeding a memory backend only lasts for this process; use KV_BACKEND=sqlite to persist")
		store = kv.NewMemory()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	txs := demo.Transactions(rng, cfg.DemoTransactions)
	state.NewTransactions(store).ReplaceAll(txs)
	state.NewSettings(store).Set(demo.BudgetSettings(rng))

	logger.Info("Demo data seeded",
		"transactions", len(txs),
		"backend", cfg.KVBackend)
}
