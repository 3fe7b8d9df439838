package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"exhibit3d/internal/config"
	"exhibit3d/internal/exhibit"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.DefaultPath, "path to the exhibit YAML config")
	scenePath := flag.String("scene", "", "scene file to load, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "exhibit: %v\n", err)
		os.Exit(1)
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}

	if err := exhibit.New(cfg).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "exhibit: %v\n", err)
		os.Exit(1)
	}
}
