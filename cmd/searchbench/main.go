package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	log "github.com/sirupsen/logrus"

	"github.com/gostonefire/searchbench"
	"github.com/gostonefire/searchbench/config"
	"github.com/gostonefire/searchbench/internal/report"
)

func main() {
	args := config.ParseArgs()

	cfg, err := config.Load(args)
	if err != nil {
		log.Fatalf("error while loading configuration: %s", err)
	}

	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if cfg.Banner {
		printBanner(cfg)
	}

	alg, err := cfg.HashAlgorithm()
	if err != nil {
		log.Fatalf("error while selecting hash algorithm: %s", err)
	}

	results, err := searchbench.Run(searchbench.RunConf{
		Sizes:            cfg.Sizes,
		SearchIterations: cfg.Iterations,
		Seed:             cfg.Seed,
		HashAlgorithm:    alg,
	})
	if err != nil {
		log.Fatalf("error while running benchmark: %s", err)
	}

	report.RenderConsole(results)

	if err = os.MkdirAll(cfg.OutDir, 0755); err != nil {
		log.Fatalf("error while creating result directory: %s", err)
	}
	if err = report.WriteSearchTimes(cfg.OutDir, results); err != nil {
		log.Fatalf("error while writing search times: %s", err)
	}
	if err = report.WriteCollisions(cfg.OutDir, results); err != nil {
		log.Fatalf("error while writing collision counts: %s", err)
	}

	log.Infof("results saved in %s and %s", report.SearchTimesFileName, report.CollisionsFileName)
}

func printBanner(cfg *config.Config) {
	cyan := putils.LettersFromStringWithStyle("Search", pterm.NewStyle(pterm.FgCyan))
	purple := putils.LettersFromStringWithStyle("Bench", pterm.NewStyle(pterm.FgLightMagenta))
	_ = pterm.DefaultBigText.WithLetters(cyan, purple).Render()

	_ = pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "SIZES      : " + strings.Trim(strings.Join(strings.Fields(fmt.Sprint(cfg.Sizes)), ", "), "[]")},
		{Level: 0, Text: "ITERATIONS : " + fmt.Sprint(cfg.Iterations)},
		{Level: 0, Text: "HASH       : " + cfg.HashAlg},
		{Level: 0, Text: "SEED       : " + fmt.Sprint(cfg.Seed)},
		{Level: 0, Text: "OUT        : " + cfg.OutDir},
	}).Render()
}
