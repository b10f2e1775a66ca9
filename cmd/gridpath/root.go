package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/evaluator"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/preset"
)

// options collects the flags shared by run and rank.
type options struct {
	configPath string
	presetName string
	random     bool
	rows, cols int
	seed       int64
	priority   string

	// metricsAddr is bound only by run.
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Compare eight grid pathfinding algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newRankCmd(), newPresetsCmd())
	return root
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.presetName, "preset", "", "preset name (see `gridpath presets`)")
	fs.BoolVar(&o.random, "random", false, "use a random grid instead of a preset")
	fs.IntVar(&o.rows, "rows", 0, "random grid rows")
	fs.IntVar(&o.cols, "cols", 0, "random grid columns")
	fs.Int64Var(&o.seed, "seed", 0, "random grid seed")
	fs.StringVar(&o.priority, "priority", "", "ranking order, e.g. cost,nodes,time")
}

// session is everything a command needs after flag resolution.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *preset.Registry
	order    evaluator.PriorityOrder
}

// resolve applies flags over the loaded configuration. Flags win over
// environment, file and defaults.
func (o *options) resolve(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("preset") {
		cfg.Preset = o.presetName
	}
	if fs.Changed("rows") {
		cfg.Random.Rows = o.rows
	}
	if fs.Changed("cols") {
		cfg.Random.Cols = o.cols
	}
	if fs.Changed("seed") {
		cfg.Random.Seed = o.seed
	}
	if fs.Changed("priority") {
		parts := strings.Split(o.priority, ",")
		for i := range parts {
			parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
		}
		cfg.Priority = parts
	}
	if fs.Changed("metrics-addr") {
		cfg.MetricsAddr = o.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	order, err := cfg.PriorityOrder()
	if err != nil {
		return nil, err
	}

	registry := preset.Builtin()
	if cfg.PresetFile != "" {
		if err := registry.LoadFile(cfg.PresetFile); err != nil {
			return nil, err
		}
	}

	return &session{
		cfg:      cfg,
		logger:   config.NewLogger(cfg.Log, cmd.ErrOrStderr()),
		registry: registry,
		order:    order,
	}, nil
}

// grid returns the random grid when requested, else the configured preset.
func (s *session) grid(random bool) (*grid.Grid, string, error) {
	if random {
		g, err := grid.Random(s.cfg.Random.Rows, s.cfg.Random.Cols, s.cfg.RandomOptions())
		if err != nil {
			return nil, "", err
		}
		return g, fmt.Sprintf("random %d×%d seed %d", g.Rows(), g.Cols(), s.cfg.Random.Seed), nil
	}
	g, err := s.registry.Get(s.cfg.Preset)
	if err != nil {
		return nil, "", err
	}
	return g, "preset " + s.cfg.Preset, nil
}

func newPresetsCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o := &options{configPath: configPath}
			s, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			return printPresets(cmd.OutOrStdout(), s.registry)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	return cmd
}

func printPresets(w io.Writer, r *preset.Registry) error {
	for _, name := range r.Names() {
		g, err := r.Get(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-10s %d×%d\n", name, g.Rows(), g.Cols()); err != nil {
			return err
		}
	}
	return nil
}
