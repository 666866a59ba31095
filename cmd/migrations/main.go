package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/vncsmyrnk/polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polls/internal/config"
	"github.com/vncsmyrnk/polls/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("a migration name is required.")
	}
	migrationName := os.Args[1]

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	logg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %s", err)
	}
	defer logg.Sync()

	db, err := sql.Open("postgres", cfg.Postgres.DatabaseURL())
	if err != nil {
		logg.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	fileContent, err := postgres.MigrationFile(migrationName)
	if err != nil {
		logg.Fatal("failed to read migration", zap.String("name", migrationName), zap.Error(err))
	}

	if _, err := db.Exec(string(fileContent)); err != nil {
		logg.Fatal("failed to execute migration", zap.String("name", migrationName), zap.Error(err))
	}

	logg.Info("migration executed", zap.String("name", migrationName))
}
