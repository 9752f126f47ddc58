package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/planetgen/internal/accretion"
	"github.com/san-kum/planetgen/internal/constants"
	"github.com/san-kum/planetgen/internal/export"
	"github.com/san-kum/planetgen/internal/geometry"
	"github.com/san-kum/planetgen/internal/profile"
	"github.com/san-kum/planetgen/internal/rng"
	"github.com/san-kum/planetgen/internal/star"
)

var (
	seed         int64
	configFile   string
	presetName   string
	profileName  string
	numRuns      int
	randomStar   bool
	outFormat    string
	exportFormat string
	outputPath   string
	verbose      bool
)

// main is the entry point for the planetgen CLI; it registers commands and
// flags and executes the root command. Running with no subcommand prints
// help rather than launching any interactive mode.
func main() {
	rootCmd := &cobra.Command{
		Use:   "planetgen",
		Short: "deterministic Dole/Fogg planetary-system generator",
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a single planetary system",
		RunE:  runGenerate,
	}
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "seed (0 = derive from wall clock)")
	generateCmd.Flags().StringVar(&configFile, "config", "", "constants YAML file")
	generateCmd.Flags().StringVar(&presetName, "preset", "", "named disc preset")
	generateCmd.Flags().StringVar(&profileName, "profile", "dole", "calculator variant (dole, burrell, fogg, folkins)")
	generateCmd.Flags().BoolVar(&randomStar, "random-star", false, "sample a random main-sequence star instead of the sun")
	generateCmd.Flags().StringVar(&outFormat, "format", "table", "output format: table, csv, json")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "run an ensemble of systems and summarize outcomes",
		RunE:  runBatch,
	}
	batchCmd.Flags().Int64Var(&seed, "seed", 0, "starting seed (0 = derive from wall clock)")
	batchCmd.Flags().StringVar(&configFile, "config", "", "constants YAML file")
	batchCmd.Flags().StringVar(&presetName, "preset", "", "named disc preset")
	batchCmd.Flags().StringVar(&profileName, "profile", "dole", "calculator variant (dole, burrell, fogg, folkins)")
	batchCmd.Flags().IntVar(&numRuns, "runs", 10, "number of independent seeds to run")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "generate a system and write it to a file",
		RunE:  runExport,
	}
	exportCmd.Flags().Int64Var(&seed, "seed", 0, "seed (0 = derive from wall clock)")
	exportCmd.Flags().StringVar(&configFile, "config", "", "constants YAML file")
	exportCmd.Flags().StringVar(&presetName, "preset", "", "named disc preset")
	exportCmd.Flags().StringVar(&profileName, "profile", "dole", "calculator variant (dole, burrell, fogg, folkins)")
	exportCmd.Flags().BoolVar(&randomStar, "random-star", false, "sample a random main-sequence star instead of the sun")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json, csv")
	exportCmd.Flags().StringVar(&outputPath, "output", "", "output file (default: stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available disc presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range constants.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list available calculator variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := profile.NewRegistry()
			for _, name := range registry.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(generateCmd, batchCmd, exportCmd, presetsCmd, profilesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConstants() (constants.DoleConstants, error) {
	if configFile != "" {
		return constants.Load(configFile)
	}
	if presetName != "" {
		c, ok := constants.GetPreset(presetName)
		if !ok {
			return constants.DoleConstants{}, fmt.Errorf("unknown preset: %s (available: %v)", presetName, constants.ListPresets())
		}
		return c, nil
	}

	registry := profile.NewRegistry()
	p, err := registry.Get(profileName)
	if err != nil {
		return constants.DoleConstants{}, err
	}
	return p.Constants, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// runOneSystem loads constants, builds a driver, and runs GenerateSystem
// once, returning the finished records alongside the raw result.
func runOneSystem() (*accretion.Result, []export.PlanetRecord, error) {
	c, err := loadConstants()
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger()
	source := rng.NewLCG(0)

	s := star.NewSol()
	if randomStar {
		s = star.NewRandomStar(source)
	}

	driver, err := accretion.New(s, c, source, logger)
	if err != nil {
		return nil, nil, err
	}

	var seedPtr *uint64
	if seed != 0 {
		u := uint64(seed)
		seedPtr = &u
	}

	result, err := driver.GenerateSystem(seedPtr)
	if err != nil && err != accretion.ErrRunaway {
		return nil, nil, err
	}
	if err == accretion.ErrRunaway {
		fmt.Fprintf(os.Stderr, "warning: run aborted after %d injections, returning partial system\n", c.MaxInjectionsWithoutTerm)
	}

	calc := geometry.New(s, c)
	return result, export.BuildRecords(result, calc, s), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	result, records, err := runOneSystem()
	if err != nil {
		return err
	}

	fmt.Printf("seed: %d  injected: %d  merged: %d  planets: %d  elapsed: %dms\n",
		result.Seed, result.Stats.InjectedNuclei, result.Stats.MergedNuclei, len(result.Planets), result.Stats.ElapsedMs)

	switch outFormat {
	case "csv":
		return export.WriteCSV(os.Stdout, records)
	case "json":
		return export.WriteJSON(os.Stdout, records)
	default:
		fmt.Print(export.RenderTable(records))
		return nil
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	_, records, err := runOneSystem()
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch exportFormat {
	case "csv":
		return export.WriteCSV(w, records)
	default:
		return export.WriteJSON(w, records)
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	c, err := loadConstants()
	if err != nil {
		return err
	}

	logger := newLogger()
	s := star.NewSol()

	seedStart := uint64(seed)
	if seedStart == 0 {
		seedStart = uint64(time.Now().UnixMilli())
	}

	batch := &accretion.Batch{
		Star:      s,
		Constants: c,
		Logger:    logger,
		NewSource: func() rng.Source { return rng.NewLCG(0) },
	}

	results, err := batch.Run(numRuns, seedStart)
	if err != nil {
		return err
	}

	summary := export.Summarize(results)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tPLANETS\tMERGED\tELAPSED_MS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n",
			strconv.FormatUint(r.Seed, 10), len(r.Planets), r.Stats.MergedNuclei, r.Stats.ElapsedMs)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nruns: %d  mean planets: %.2f  stddev: %.2f  min: %d  max: %d  mean merged: %.2f\n",
		summary.Runs, summary.MeanPlanets, summary.StdDevPlanets, summary.MinPlanets, summary.MaxPlanets, summary.MeanMergedNuclei)

	return nil
}
