// Package main implements a desktop GUI application for browsing shot
// versions grouped by folder, using the Fyne framework.
package main

import (
	"log"

	"github.com/vfxpipeline/shot-version-browser/internal/config"
	"github.com/vfxpipeline/shot-version-browser/internal/source"
	"github.com/vfxpipeline/shot-version-browser/internal/ui"
)

func main() {
	log.Println("Starting Shot Version Browser...")

	cfg := config.DefaultConfig()
	log.Printf("Config: Window=%gx%g, ShowHeaders=%v", cfg.WindowWidth, cfg.WindowHeight, cfg.ShowHeaders)

	src, err := source.Sample()
	if err != nil {
		log.Fatalf("Invalid version data: %v", err)
	}

	app, err := ui.NewBrowserApp(cfg, src)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	log.Println("App created, starting UI...")

	app.Run()
}
