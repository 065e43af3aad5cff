package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"ogame_battle/internal/app"
	"ogame_battle/internal/domain/battle"
	"ogame_battle/internal/domain/catalog"
	"ogame_battle/internal/processing"
	"ogame_battle/internal/report"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	scenarioFile := flag.String("scenario", "", "Path to the battle scenario JSON file (required)")
	seed := flag.Uint64("seed", 0, "Override the scenario seed")
	trials := flag.Int("trials", 0, "Run this many seeded trials and log a summary instead of a single battle")
	outFile := flag.String("out", "", "Write the battle report JSON to this file")
	flag.Parse()

	if *scenarioFile == "" {
		log.Fatal().Msg("The -scenario flag is required")
	}

	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	scenario, err := app.LoadScenario(*scenarioFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load scenario")
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			scenario.Seed = *seed
		}
	})

	var cat catalog.Catalog = catalog.Default()
	if config.CatalogFile != "" {
		loaded, err := catalog.LoadFile(config.CatalogFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", config.CatalogFile).Msg("Failed to load unit catalog")
		}
		log.Info().
			Str("file", config.CatalogFile).
			Int("unit_types", len(loaded.MachineNames())).
			Msg("Loaded unit catalog")
		cat = loaded
	}

	engine, err := battle.NewEngine(cat, config.Rules)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create battle engine")
	}

	log.Info().
		Str("scenario", *scenarioFile).
		Uint64("seed", scenario.Seed).
		Int("trials", *trials).
		Bool("rapid_fire", config.Rules.RapidFire).
		Msg("Starting battle simulator")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tracker := processing.NewBattleTracker()
	defer tracker.LogSessionSummary()

	if *trials > 0 {
		runner := processing.NewTrialRunner(engine, config.Workers).WithTracker(tracker)
		summary, err := runner.Run(ctx, scenario, *trials)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to run battle trials")
		}

		log.Info().
			Float64("attacker_win_rate", summary.WinRate(battle.WinnerAttacker)).
			Float64("defender_win_rate", summary.WinRate(battle.WinnerDefender)).
			Float64("draw_rate", summary.WinRate(battle.WinnerDraw)).
			Float64("mean_debris_metal", summary.MeanDebrisMetal).
			Float64("mean_debris_crystal", summary.MeanDebrisCrystal).
			Float64("mean_loot", summary.MeanLoot).
			Float64("mean_repaired_defenses", summary.MeanRepairedDefenses).
			Msg("Trial summary")
		return
	}

	service := processing.NewBattleService(engine).WithTracker(tracker)
	result, err := service.Run(ctx, scenario)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to simulate battle")
	}

	if *outFile == "" {
		return
	}

	data, err := report.EncodeIndent(result)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode battle report")
	}
	if err := os.WriteFile(*outFile, data, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", *outFile).Msg("Failed to write battle report")
	}

	log.Info().
		Str("file", *outFile).
		Msg("Wrote battle report")
}
