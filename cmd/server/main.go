package main

import (
	"context"
	"fmt"
	"log"

	"tabdeel-pulse/internal/activity"
	"tabdeel-pulse/internal/config"
	"tabdeel-pulse/internal/database"
	"tabdeel-pulse/internal/handlers"
	"tabdeel-pulse/internal/jobs"
	"tabdeel-pulse/internal/permissions"
	"tabdeel-pulse/internal/server"
	"tabdeel-pulse/internal/store"
)

func main() {
	cfg := config.Load()
	db := database.Init(cfg.DBDSN)

	st := store.NewGorm(db)
	logger := activity.NewLogger(st)
	checker := permissions.NewChecker(st)
	engine := jobs.NewEngine(st)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go jobs.NewSweeper(engine, cfg.SweepInterval).Run(ctx)

	h := handlers.New(st, logger, checker, engine)
	r := server.NewRouter(cfg, h)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
