package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/urbanfleet/ops-console-backend/internal/config"
	"github.com/urbanfleet/ops-console-backend/internal/records"
	"github.com/urbanfleet/ops-console-backend/internal/services"
	"github.com/urbanfleet/ops-console-backend/internal/storage"
	"github.com/urbanfleet/ops-console-backend/internal/workflow"
)

// reset-data rewrites every storage key from the seed collections and
// clears the approval history and audit log. Run against the same backend
// configuration as the server to get a fresh demo state.
func main() {
	var keepHistory bool
	flag.BoolVar(&keepHistory, "keep-history", false, "preserve the approval history and audit log")
	flag.Parse()

	// Try loading .env from current working directory (optional)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	backend, err := newBackend(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize storage backend: %v", err)
	}

	fmt.Printf("Resetting %s storage...\n", cfg.Storage.Driver)

	write(backend, records.KeyRiders, records.RiderSeeds)
	write(backend, records.KeyDrivers, records.DriverSeeds)
	write(backend, records.KeyCompanies, records.CompanySeeds)

	if !keepHistory {
		write(backend, workflow.KeyHistory, []interface{}{})
		write(backend, services.KeyAuditLog, []interface{}{})
	}

	fmt.Println("Done.")
}

func write(backend storage.Backend, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Fatalf("failed to encode %s: %v", key, err)
	}
	if err := backend.Set(key, payload); err != nil {
		log.Fatalf("failed to write %s: %v", key, err)
	}
	fmt.Printf("  wrote %s\n", key)
}

func newBackend(cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Driver {
	case "file":
		return storage.NewFileBackend(cfg.DataDir)
	case "postgres":
		return storage.NewPostgresBackend(cfg)
	default:
		return nil, fmt.Errorf("storage driver %s has no persistent data to reset", cfg.Driver)
	}
}
