package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/app"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// a local .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
