package main

import (
	"flag"

	"github.com/careerpilot/backend/config"
	"github.com/careerpilot/backend/internal/database"
	"github.com/careerpilot/backend/internal/logger"
)

func main() {
	dir := flag.String("dir", "migrations", "directory containing migration files")
	flag.Parse()

	log := logger.New()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.RunMigrations(db, *dir, log); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	log.Info("migrations applied")
}
