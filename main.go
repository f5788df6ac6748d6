package main

import (
	"context"

	"coursehub/config"
	"coursehub/database"
	"coursehub/routers"
	"coursehub/utils"
)

func main() {
	cfg := config.LoadConfig()
	log := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)

	db, err := database.ConnectDb(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to the database")
	}

	if cfg.SeedData {
		if err := database.SeedData(context.Background(), db, cfg.SaltRound, log); err != nil {
			log.WithError(err).Fatal("Failed to seed the database")
		}
	}

	app := routers.NewApp(cfg, db, log)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
