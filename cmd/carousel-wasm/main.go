//go:build js && wasm

// Command carousel-wasm mounts a carousel on the page that loads it.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o carousel.wasm ./cmd/carousel-wasm
//
// The options come from carousel.toml, embedded at build time.
package main

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/agiangrant/carousel"
	"github.com/agiangrant/carousel/internal/jsdom"
	"github.com/lmittmann/tint"
)

//go:embed carousel.toml
var config []byte

// fadeKeyframes backs the "fade" animation name the carousel sets on slides.
const fadeKeyframes = `@keyframes fade { from { opacity: .4 } to { opacity: 1 } }`

func main() {
	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo, NoColor: true}))

	opts, err := carousel.ParseOptions(config)
	if err != nil {
		log.Error("invalid embedded config", "err", err)
		os.Exit(1)
	}
	opts.Logger = log

	doc, err := jsdom.New()
	if err != nil {
		log.Error("no browser document", "err", err)
		os.Exit(1)
	}
	doc.InjectStylesheet(fadeKeyframes)

	c, err := carousel.New(doc, opts)
	if err != nil {
		log.Error("mount failed", "err", err)
		os.Exit(1)
	}
	log.Info("carousel mounted", "slides", c.Len(), "index", c.Index())

	// Callbacks run on the page's event loop; keep the module alive for them.
	select {}
}
