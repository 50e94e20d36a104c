package main

import (
	"log"

	_ "scraty/docs"
	"scraty/internal/config"
	"scraty/internal/server"
)

// @title           Scraty API
// @version         1.0
// @description     API for a kanban-style task board of stories and cards.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
