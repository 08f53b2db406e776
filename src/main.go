package main

import (
	"log"
	"net/http"

	"cashflow-server/src/api"
	"cashflow-server/src/config"
	"cashflow-server/src/db"
	sqldb "cashflow-server/src/db/sql"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	db.InitCache()

	store := sqldb.NewPostgresStore(pool)

	// Router
	router := api.NewRouter(store, cfg)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
