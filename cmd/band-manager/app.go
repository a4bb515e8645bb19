package main

import (
	"github.com/2nist/Band-Manager/internal/config"
	"github.com/2nist/Band-Manager/internal/logging"
	"github.com/2nist/Band-Manager/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid band configuration", err, logging.Fields{"config_path": path, "hint": "create a band_config.json with studio_tiers, transport_tiers, gear_tiers, venues, tours, staff, genres, song_titles and member_names tables and an optional server.address"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
