package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/HRNPH/election-69-analyzer/internal/compare"
	"github.com/HRNPH/election-69-analyzer/internal/config"
	"github.com/HRNPH/election-69-analyzer/internal/report"
)

const defaultConfigFile = "analyzer.yaml"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Compares winning MP candidate numbers with the top 7 party list party numbers.\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	export := flag.Bool("export", false, "export results and history JSON")
	mpDir := flag.String("mp-dir", "", "constituency results directory (overrides config)")
	plDir := flag.String("pl-dir", "", "party list results directory (overrides config)")
	outDir := flag.String("out-dir", "", "export output directory (overrides config)")
	configPath := flag.String("config", defaultConfigFile, "run config file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	initLogging(*verbose)

	cfg, err := config.Load(*configPath, flagWasSet("config"))
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}
	if *mpDir != "" {
		cfg.MPDir = *mpDir
	}
	if *plDir != "" {
		cfg.PLDir = *plDir
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}

	comparer := compare.Comparer{MPDir: cfg.MPDir, PLDir: cfg.PLDir, Log: log.Logger}
	res, err := comparer.Run()
	if err != nil {
		log.Error().Err(err).Msg("comparison failed")
		os.Exit(1)
	}

	report.Print(os.Stdout, res)

	if *export {
		resultsPath, historyPath, err := report.Export(cfg.OutDir, res, time.Now())
		if err != nil {
			log.Error().Err(err).Msg("export failed")
			os.Exit(1)
		}
		fmt.Printf("\nResults exported to %s\n", resultsPath)
		fmt.Printf("History updated at %s\n", historyPath)
	}
}

func initLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
