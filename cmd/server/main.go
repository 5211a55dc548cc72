package main

import (
	"fmt"
	"os"

	"article-generator/internal/api"
	"article-generator/internal/config"
	"article-generator/internal/generator"
	"article-generator/internal/layout"
	"article-generator/internal/store"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := store.Init(cfg.Storage.DBPath); err != nil {
		fmt.Fprintf(os.Stderr, "Store init error: %v\n", err)
		os.Exit(1)
	}

	// The generator is the one process-wide handle on the model; it is built
	// once here and shared read-only by every request.
	gen, err := generator.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generator error: %v\n", err)
		os.Exit(1)
	}
	engine := layout.NewEngine(cfg.Storage.OutputsDir)

	r := api.SetupRouter(cfg, gen, engine)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
