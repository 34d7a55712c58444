// Seeds a development game: a host-owned lobby with a word schedule,
// one word per day.
package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	"codeword/internal/config"
	"codeword/internal/db"
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
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	hostUserID := os.Getenv("SEED_HOST_USER_ID")
	if hostUserID == "" {
		hostUserID = "seed-host"
	}
	name := os.Getenv("SEED_GAME_NAME")
	if name == "" {
		name = "Seeded Codeword Game"
	}
	description := os.Getenv("SEED_GAME_DESCRIPTION")
	if description == "" {
		description = "Development seed game"
	}
	durationHours := cfg.DefaultDurationHours
	if raw := os.Getenv("SEED_GAME_DURATION_HOURS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			durationHours = value
		}
	}
	words := strings.Split("puzzle,secret,whisper,shadow,signal", ",")
	if raw := os.Getenv("SEED_WORDS"); raw != "" {
		words = strings.Split(raw, ",")
	}

	ctx := context.Background()
	svc := session.New(conn, cfg)

	record, err := svc.CreateGameAsHost(ctx, hostUserID, name, description, durationHours, nil)
	if err != nil {
		log.Fatalf("failed to create seed game: %v", err)
	}

	inserted := 0
	for i, word := range words {
		trimmed := strings.TrimSpace(word)
		if trimmed == "" {
			continue
		}
		if _, err := svc.AddWord(ctx, hostUserID, record.ID, trimmed, i+1, nil); err != nil {
			log.Fatalf("failed to insert word %q: %v", trimmed, err)
		}
		inserted++
	}

	log.Printf("seed complete game_id=%d join_code=%s words=%d", record.ID, record.Code, inserted)
}
