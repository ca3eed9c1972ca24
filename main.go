package main

import (
	"flag"
	"log"

	"taskmanager/database"
	"taskmanager/handlers"
	"taskmanager/store"
	"taskmanager/utilities"

	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Bool("seed", false, "reset all collections and load demo data, then exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	utilities.InitLogger()

	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	storage := store.New(db)
	handlers.Init(storage)

	if *seed {
		if err := seedData(db, storage); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		utilities.LogInfo("Seed data completed successfully")
		return
	}

	LoadRoutes()
}
