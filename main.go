// main.go
package main

import (
	"log"

	"cinema-manager/cmd"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/wire"
	"cinema-manager/pkg/database"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting store",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("mode", config.App.Mode),
		zap.String("driver", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Open the configured storage backend
	repos, cleanup, err := openStore(config, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer cleanup()

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

// openStore picks the storage driver: the flat db.json document store
// by default, postgres when configured.
func openStore(config *utils.Config, logger *zap.Logger) (*repository.Repository, func(), error) {
	if config.Store.Driver == "postgres" {
		db, err := database.InitDB(config.Store)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connected successfully")
		return repository.NewRepository(db, logger), db.Close, nil
	}

	db, err := database.OpenFile(config.Store.File)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Store file loaded", zap.String("file", config.Store.File))
	return repository.NewFileRepository(db, logger), func() {}, nil
}
