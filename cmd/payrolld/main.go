package main

import (
	"log"
	"net/http"

	"payrollkit/internal/fixture"
	"payrollkit/internal/platform/config"
)

func main() {
	cfg := config.Load()

	server, err := fixture.NewServer(cfg.ServerSecret)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("payrolld listening on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, server.Handler()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
