package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/casey/combomatic/internal/domain"
	"github.com/casey/combomatic/internal/infra/config"
	"github.com/casey/combomatic/internal/infra/logger"
	"github.com/casey/combomatic/internal/infra/render"
	"github.com/casey/combomatic/internal/ports"
	"github.com/casey/combomatic/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// flagValues holds the raw root-command flags before they are resolved
// against an optional preset file and validated into a domain.Search.
type flagValues struct {
	min         int
	max         int
	radius      int
	combination []int
	csv         bool
}

func newRootCmd() *cobra.Command {
	var (
		flags      flagValues
		presetPath string
		noColor    bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "combomatic",
		Short: "Enumerate likely dial combinations around one you remember",
		Long: `Combomatic helps open a combination lock when the remembered
combination is close to, but not exactly, the real one. It generates
every combination within --range steps of the remembered one (wrapping
around the dial) and prints them grouped by how far off they are, most
likely first.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.Setup(logger.Config{Debug: debug})

			preset, err := resolvePreset(cmd, config.NewLoader(), presetPath, flags)
			if err != nil {
				return err
			}

			var renderer ports.GuessRenderer = render.Grouped{
				W:     cmd.OutOrStdout(),
				Color: !noColor,
			}
			if preset.CSV {
				renderer = render.CSV{W: cmd.OutOrStdout()}
			}

			uc := usecase.NewCrack(renderer)

			start := time.Now()
			if err := uc.Execute(cmd.Context(), preset.Search); err != nil {
				return err
			}
			logger.L().Debug("crack.finished",
				"preset", preset.Name,
				"candidates", preset.Search.Size(),
				"elapsed", time.Since(start),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.min, "min", domain.DefaultMin, "lowest digit on the dial")
	cmd.Flags().IntVar(&flags.max, "max", domain.DefaultMax, "highest digit on the dial")
	cmd.Flags().IntVar(&flags.radius, "range", domain.DefaultRadius, "how far each digit may be off, in dial steps")
	cmd.Flags().IntSliceVar(&flags.combination, "combination", nil, "the remembered combination, e.g. 12,34,56")
	cmd.Flags().BoolVar(&flags.csv, "csv", false, "emit a CSV table instead of grouped output")
	cmd.Flags().StringVar(&presetPath, "preset", "", "load search settings from a YAML preset file")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	cmd.Flags().BoolVar(&debug, "debug", false, "log progress to stderr")

	cmd.AddCommand(versionCmd())
	return cmd
}

// resolvePreset merges flags with an optional preset file and validates
// the result. Explicitly set flags win over preset values; preset values
// win over flag defaults.
func resolvePreset(cmd *cobra.Command, loader ports.PresetLoader, presetPath string, flags flagValues) (domain.Preset, error) {
	name := ""

	if presetPath != "" {
		p, err := loader.LoadPreset(presetPath)
		if err != nil {
			return domain.Preset{}, err
		}

		name = p.Name
		f := cmd.Flags()
		if !f.Changed("min") {
			flags.min = p.Search.Ring.Min
		}
		if !f.Changed("max") {
			flags.max = p.Search.Ring.Max
		}
		if !f.Changed("range") {
			flags.radius = p.Search.Radius
		}
		if !f.Changed("combination") {
			flags.combination = p.Search.Combination
		}
		if !f.Changed("csv") {
			flags.csv = p.CSV
		}
	}

	ring, err := domain.NewRing(flags.min, flags.max)
	if err != nil {
		return domain.Preset{}, err
	}

	search, err := domain.NewSearch(ring, domain.Combination(flags.combination), flags.radius)
	if err != nil {
		return domain.Preset{}, err
	}

	return domain.Preset{Name: name, Search: search, CSV: flags.csv}, nil
}
