package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gfroidcourt/sudoku/internal/puzzles"
	httpTransport "github.com/gfroidcourt/sudoku/internal/transport/http"
	"github.com/gfroidcourt/sudoku/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	store, err := puzzles.Open(cfg.PuzzlesDB)
	if err != nil {
		log.Fatalf("Could not open puzzle store %s: %v", cfg.PuzzlesDB, err)
	}
	defer store.Close()

	if count, err := store.Count(); err == nil {
		log.Printf("Puzzle store ready with %d stored puzzles", count)
	}

	r := gin.Default()

	httpTransport.RegisterRoutes(r, cfg, store)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on port %s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
