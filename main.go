package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"

	"oopdemo/pkg/config"
	"oopdemo/pkg/device"
	"oopdemo/pkg/game/demo"
	"oopdemo/pkg/game/locale"
	"oopdemo/pkg/game/renderer/tui"
	"oopdemo/pkg/game/state"
)

func main() {
	configPath := flag.String("config", os.Getenv("OOPDEMO_CONFIG"), "path to a YAML config file")
	noColor := flag.Bool("no-color", false, "disable colored output")
	seed := flag.Int64("seed", 0, "seed for photo names (0 uses the clock)")
	interactive := flag.String("interactive", "", "interactive session: ask, always or never (overrides config)")
	flag.Parse()

	logger := log.New(os.Stderr, "oopdemo ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("failed to load configuration from %s: %v; using defaults", *configPath, err)
		cfg = config.Default()
	}

	catalog, err := locale.Load(cfg.Locale.Language, cfg.Locale.Catalog)
	if err != nil {
		logger.Printf("failed to load message catalog: %v; using built-in %s", err, locale.DefaultLanguage)
		catalog = locale.Default()
	}

	if *interactive != "" {
		cfg.Session.Interactive = *interactive
	}
	mode, err := demo.ParseInteractivity(cfg.Session.Interactive)
	if err != nil {
		logger.Printf("%v; asking instead", err)
	}

	if *seed != 0 {
		cfg.Session.PhotoSeed = *seed
	}
	var rng device.Rand
	if cfg.Session.PhotoSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.Session.PhotoSeed))
	}

	r := tui.NewStdio(cfg.Display.Color && !*noColor)
	r.Init()

	s := state.NewSession(r, catalog)
	s.RuleWidth = cfg.Display.RuleWidth

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Failures are already shown to the user; the exit status stays 0.
	if err := demo.Run(ctx, s, demo.Options{Interactive: mode, Rand: rng}); err != nil {
		logger.Printf("demo ended with error: %v", err)
	}
}
