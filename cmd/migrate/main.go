package main

import (
	"usdt_banc/internal/config" // Custom import path (Config)
	"usdt_banc/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())
}
