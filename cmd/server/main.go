package main

import (
	"log"
	"net/http"
	"os"

	"codeword/internal/config"
	"codeword/internal/db"
	"codeword/internal/server"
	"codeword/internal/session"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.ConfigurePool(conn, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeSeconds, cfg.DBConnMaxIdleTimeSeconds); err != nil {
		log.Fatalf("database pool configuration failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	srv := server.New(session.New(conn, cfg), cfg)
	log.Printf("codeword server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
