package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/fabtooling/dieyield/internal/cliconfig"
	"github.com/fabtooling/dieyield/internal/domain"
	"github.com/fabtooling/dieyield/internal/engine"
	"github.com/fabtooling/dieyield/internal/render"
	"github.com/fabtooling/dieyield/internal/watch"
	"github.com/fabtooling/dieyield/pkg/log"
)

const helpDescription = `
Compute a per-die classification grid and yield statistics for a wafer or
panel tiled with reticle shots.

Highlights:
  - Tiles reticle shots over the substrate, places dice with scribe gaps,
    and classifies each die as good, defective, partial, or lost.
  - Five closed-form yield models: Poisson, Murphy, Rectangular, Moore, Seeds.
  - Seeded defect injection so every run is reproducible; Monte Carlo mode
    repeats the injection over incremented seeds.
  - Writes a colored die-map PNG, a per-run yield chart, and JSON/CSV exports.
  - Configure via file, env (DIEYIELD_*), or flags; flags win.
`

var exampleUsage = strings.TrimSpace(`
  dieyield --shape Wafer --diameter 300 --die-width 5 --die-height 5 --map wafer.png
  dieyield --config ./panel.toml --runs 20 --chart yield.png --csv runs.csv
  dieyield --config ./wafer.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewZerologAdapter()

	root := &cobra.Command{
		Use:     "dieyield",
		Short:   "Compute die yield maps for wafers and panels",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Determine config path
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// load rebuilds the effective config from defaults+flags, then
			// file, then env. Watch mode calls it again on every change.
			load := func() (cliconfig.Config, error) {
				c := cfg
				if cfgFile != "" && cliconfig.FileExists(cfgFile) {
					fc, err := cliconfig.LoadFileConfig(cfgFile)
					if err != nil {
						return c, fmt.Errorf("load config: %w", err)
					}
					if err := cliconfig.ApplyFileConfig(&c, fc, changed); err != nil {
						return c, err
					}
				}
				if err := cliconfig.ApplyEnvConfig(&c, changed); err != nil {
					return c, err
				}
				return c, nil
			}

			run := func() (cliconfig.Config, error) {
				c, err := load()
				if err != nil {
					return c, err
				}
				return c, calculate(c, logger)
			}

			c, err := run()
			if err != nil {
				return err
			}
			if !c.Watch {
				return nil
			}
			if cfgFile == "" || !cliconfig.FileExists(cfgFile) {
				return fmt.Errorf("watch mode needs a config file (looked for %q)", cfgFile)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.New(cfgFile, logger, func() {
				if _, err := run(); err != nil {
					logger.Error("calculation failed", log.Err(err))
				}
			})
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			logger.Info("received signal, stopping...")
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.dieyield/config.toml)")

	root.Flags().StringVar(&cfg.Shape, "shape", cfg.Shape, "substrate shape: Wafer or Panel")
	root.Flags().Float64Var(&cfg.Diameter, "diameter", cfg.Diameter, "wafer diameter")
	root.Flags().Float64Var(&cfg.PanelWidth, "panel-width", cfg.PanelWidth, "panel width")
	root.Flags().Float64Var(&cfg.PanelHeight, "panel-height", cfg.PanelHeight, "panel height")
	root.Flags().Float64Var(&cfg.EdgeMargin, "edge-margin", cfg.EdgeMargin, "exclusion band inward from the substrate boundary")

	root.Flags().Float64Var(&cfg.ShotWidth, "shot-width", cfg.ShotWidth, "reticle shot width")
	root.Flags().Float64Var(&cfg.ShotHeight, "shot-height", cfg.ShotHeight, "reticle shot height")

	root.Flags().Float64Var(&cfg.DieWidth, "die-width", cfg.DieWidth, "die width")
	root.Flags().Float64Var(&cfg.DieHeight, "die-height", cfg.DieHeight, "die height")
	root.Flags().Float64Var(&cfg.ScribeX, "scribe-x", cfg.ScribeX, "scribe line width between die columns")
	root.Flags().Float64Var(&cfg.ScribeY, "scribe-y", cfg.ScribeY, "scribe line width between die rows")

	root.Flags().Float64Var(&cfg.DefectRate, "defect-rate", cfg.DefectRate, "defects per unit area")
	root.Flags().Float64Var(&cfg.CriticalArea, "critical-area", cfg.CriticalArea, "defect-sensitive area per die")
	root.Flags().StringVar(&cfg.Model, "model", cfg.Model, "yield model: Poisson, Murphy, Rectangular, Moore, or Seeds")

	root.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for defect injection")
	root.Flags().IntVar(&cfg.Runs, "runs", cfg.Runs, "number of Monte Carlo runs")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 or 1 for sequential)")

	root.Flags().StringVar(&cfg.MapPath, "map", cfg.MapPath, "write die-map PNG to this path")
	root.Flags().StringVar(&cfg.ChartPath, "chart", cfg.ChartPath, "write per-run yield chart PNG to this path (needs runs > 1)")
	root.Flags().StringVar(&cfg.JSONPath, "json", cfg.JSONPath, "write full output JSON to this path")
	root.Flags().StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "write per-run tallies CSV to this path")
	root.Flags().BoolVar(&cfg.ShowShots, "show-shots", cfg.ShowShots, "overlay reticle shot outlines on the die map")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "rerun whenever the config file changes")

	if err := root.Execute(); err != nil {
		logger.Error("dieyield", log.Err(err))
		os.Exit(1)
	}
}

// calculate runs the pipeline once and writes the configured outputs.
func calculate(c cliconfig.Config, logger log.Logger) error {
	ecfg, err := c.EngineConfig()
	if err != nil {
		return err
	}
	ecfg.Logger = logger

	logger.Info("configuration", log.Any("config", c))

	start := time.Now()
	out, err := engine.Calculate(ecfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	first := out.Runs[0].Result
	logger.Info("calculation complete",
		log.Int("shots", len(out.Shots)),
		log.Int("total", first.Total),
		log.Int("good", first.Good),
		log.Int("defective", first.Defective),
		log.Int("partial", first.Partial),
		log.Int("lost", first.Lost),
		log.Float64("yield_fraction", out.YieldFraction),
		log.Float64("fab_yield", first.FabYield),
		log.Duration("elapsed", elapsed))
	if len(out.Runs) > 1 {
		logger.Info("monte carlo summary",
			log.Int("runs", len(out.Runs)),
			log.Float64("mean_fab_yield", out.MeanFabYield))
	}

	return writeOutputs(c, out, logger)
}

// writeOutputs emits the artifacts the config asks for. The die map and
// JSON use the first run's grid, matching the interactive app's detailed
// view of run one.
func writeOutputs(c cliconfig.Config, out *engine.Output, logger log.Logger) error {
	ecfg, err := c.EngineConfig()
	if err != nil {
		return err
	}

	if c.MapPath != "" {
		opts := render.MapOptions{ShowShots: c.ShowShots}
		if err := render.WriteDieMap(c.MapPath, ecfg.Substrate, out.Runs[0].Dice, out.Shots, opts); err != nil {
			return err
		}
		logger.Info("wrote die map", log.String("path", c.MapPath))
	}
	if c.ChartPath != "" {
		results := runResults(out)
		if err := render.WriteYieldChart(c.ChartPath, results); err != nil {
			return err
		}
		logger.Info("wrote yield chart", log.String("path", c.ChartPath))
	}
	if c.JSONPath != "" {
		if err := render.WriteJSON(c.JSONPath, out); err != nil {
			return err
		}
		logger.Info("wrote json", log.String("path", c.JSONPath))
	}
	if c.CSVPath != "" {
		if err := render.WriteCSV(c.CSVPath, runResults(out)); err != nil {
			return err
		}
		logger.Info("wrote csv", log.String("path", c.CSVPath))
	}
	return nil
}

func runResults(out *engine.Output) []domain.Result {
	results := make([]domain.Result, len(out.Runs))
	for i, r := range out.Runs {
		results[i] = r.Result
	}
	return results
}
