package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/wolfadex/noom-colors/audio"
	"github.com/wolfadex/noom-colors/config"
	"github.com/wolfadex/noom-colors/ui"
)

func main() {
	cfg := config.Default()
	if path, err := config.Path(); err == nil {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	app := ui.New(screen, cfg, audio.New(cfg.Sound))

	err = app.Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
