package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"minisocial/internal/config"
	"minisocial/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()

	mediaServer, cleanup, err := di.InitializeMediaServer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize media server: %v", err)
	}
	defer cleanup()

	log.Printf("Media server listening on :%s, serving files at %s{fileId}",
		cfg.Server.MediaPort, cfg.Media.BaseURL)
	if err := http.ListenAndServe(":"+cfg.Server.MediaPort, mediaServer.Router()); err != nil {
		log.Fatalf("Failed to start media server: %v", err)
	}
}
