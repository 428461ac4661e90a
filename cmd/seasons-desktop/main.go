package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tobyhogan/seasons-viewer-tool/internal/app"
	"github.com/tobyhogan/seasons-viewer-tool/internal/desktop"
	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
)

func main() {
	cfgFile := flag.String("config", "", "Path to a YAML configuration file; built-in defaults are used when empty")
	envFile := flag.String("env", ".env", ".env file with SEASONS_* overrides; skipped when missing")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	provider, err := app.LoadConfig(*cfgFile, *envFile)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	cfg, err := provider.LoadConfig()
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	opts, err := app.SessionOptions(cfg)
	if err != nil {
		log.Errorf("Invalid display settings: %v", err)
		os.Exit(1)
	}

	s := session.New("desktop", opts, session.SystemClock{})
	title := fmt.Sprintf("Seasons Viewer - %s", cfg.Location.Name)
	if err := desktop.Run(s, title); err != nil {
		log.Errorf("Window error: %v", err)
		os.Exit(1)
	}
}
