package main

import (
	"log"

	"github.com/neuroccm/sleepbetter/internal/config"
	"github.com/neuroccm/sleepbetter/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Println("Sample profile 11111111-1111-1111-1111-111111111111 ready")
}
