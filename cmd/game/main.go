package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gladewood/gladewood/internal/config"
	"github.com/gladewood/gladewood/internal/tui"
	"github.com/gladewood/gladewood/internal/world"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if cfg.LogPath != "" {
		logOut = &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
		}
	}
	logger := log.New(logOut, "gladewood ", log.LstdFlags)

	doc := world.DefaultDocument()
	if cfg.WorldPath != "" {
		doc, err = os.ReadFile(cfg.WorldPath)
		if err != nil {
			fmt.Printf("Error reading world file: %v\n", err)
			os.Exit(1)
		}
	}

	template, err := world.Load(doc, logger)
	if err != nil {
		fmt.Printf("Error loading world: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(template, logger); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
