package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajviz/internal/config"
	"github.com/san-kum/trajviz/internal/experiment"
	"github.com/san-kum/trajviz/internal/logs"
	"github.com/san-kum/trajviz/internal/viz"
	"github.com/san-kum/trajviz/internal/window"
)

const (
	windowWidth  = 960
	windowHeight = 720
)

var (
	dataDir    string
	configFile string
	logLevel   string
	logFile    string
	// Plot options
	dataFile  string
	outDir    string
	format    string
	theme     string
	width     int
	height    int
	noWait    bool
	useWindow bool
)

var (
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
)

// main registers the plotting commands and runs the one named on the
// command line. Any error, including the user aborting a plot, exits with
// a non-zero status.
func main() {
	rootCmd := &cobra.Command{
		Use:               "trajviz",
		Short:             "plot pendulum trajectory tables",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", config.DefaultDataDir, "directory holding the data files")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")

	netzwerkCmd := &cobra.Command{
		Use:   "netzwerk",
		Short: "plot angle and angular velocity over time from netzwerk3.data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotPreset(cmd, config.PresetNetzwerk)
		},
	}

	pendelCmd := &cobra.Command{
		Use:   "pendel",
		Short: "plot angle, energy and phase portrait from pendel_mp.data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotPreset(cmd, config.PresetPendelMP)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [preset]",
		Short: "plot the figures of any preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotPreset(cmd, args[0])
		},
	}

	for _, c := range []*cobra.Command{netzwerkCmd, pendelCmd, plotCmd} {
		c.Flags().StringVar(&dataFile, "file", "", "data file (overrides the preset)")
		c.Flags().StringVar(&outDir, "out", "", "also save every figure into this directory")
		c.Flags().StringVar(&format, "format", config.DefaultFormat, "export format ("+strings.Join(viz.Formats, ", ")+")")
		c.Flags().StringVar(&theme, "theme", config.DefaultTheme, "viewer theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
		c.Flags().IntVar(&width, "width", config.DefaultWidth, "plot width in terminal columns")
		c.Flags().IntVar(&height, "height", config.DefaultHeight, "plot height in terminal rows")
		c.Flags().BoolVar(&noWait, "no-wait", false, "print plots without waiting for dismissal")
		c.Flags().BoolVar(&useWindow, "window", false, "show figures in a desktop window")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	summaryCmd := &cobra.Command{
		Use:   "summary [preset]",
		Short: "print sample count, oscillation period and energy statistics of a preset's data",
		Args:  cobra.ExactArgs(1),
		RunE:  summarize,
	}
	summaryCmd.Flags().StringVar(&dataFile, "file", "", "data file (overrides the preset)")

	rootCmd.AddCommand(netzwerkCmd, pendelCmd, plotCmd, presetsCmd, summaryCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if closeLog != nil {
		_ = closeLog()
	}

	if err != nil {
		if errors.Is(err, viz.ErrInterrupted) || errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads the config file, applies explicitly set flags on top of it,
// and opens the logger.
func setup(cmd *cobra.Command, args []string) error {
	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		c.DataDir = dataDir
	}
	if flags.Changed("out") {
		c.OutDir = outDir
	}
	if flags.Changed("format") {
		c.Format = format
	}
	if flags.Changed("theme") {
		c.Theme = theme
	}
	if flags.Changed("width") {
		c.Width = width
	}
	if flags.Changed("height") {
		c.Height = height
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	opts := logs.Options{Level: logLevel}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		opts.File = f
		closeLog = f.Close
	}

	l, err := logs.New(opts)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func plotPreset(cmd *cobra.Command, name string) error {
	p, err := cfg.Preset(name)
	if err != nil {
		return err
	}

	exp, err := experiment.New(experiment.Config{
		Preset:  *p,
		DataDir: cfg.DataDir,
		File:    dataFile,
	}, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if useWindow {
		return showWindow(ctx, exp, p)
	}
	return exp.Run(ctx, newRenderer(p))
}

// newRenderer picks the terminal viewer, or the printer when asked to or
// when stdout is not a terminal, followed by the exporter when an output
// directory is set.
func newRenderer(p *config.Preset) viz.Renderer {
	var chain viz.Chain

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if noWait || !tty {
		if !noWait {
			logger.Debug("stdout is not a terminal, printing plots")
		}
		chain = append(chain, &viz.Printer{W: os.Stdout, Width: cfg.Width, Height: cfg.Height})
	} else {
		chain = append(chain, &viz.Viewer{Width: cfg.Width, Height: cfg.Height, Theme: cfg.Theme})
	}

	if cfg.OutDir != "" {
		chain = append(chain, newExporter(p))
	}
	return chain
}

func newExporter(p *config.Preset) *viz.Exporter {
	return &viz.Exporter{
		Dir:    cfg.OutDir,
		Prefix: p.Name,
		Format: cfg.Format,
		Logger: logger,
	}
}

func showWindow(ctx context.Context, exp *experiment.Experiment, p *config.Preset) error {
	figs, err := exp.Figures()
	if err != nil {
		return err
	}

	if cfg.OutDir != "" {
		e := newExporter(p)
		for _, f := range figs {
			if err := e.Render(ctx, f); err != nil {
				return err
			}
		}
	}

	return window.Show(ctx, figs, windowWidth, windowHeight, logger)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFILE\tFIGURES\tDESCRIPTION")

	for _, name := range cfg.PresetNames() {
		p, err := cfg.Preset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.File, strings.Join(p.Figures, ","), p.Description)
	}

	return w.Flush()
}

func summarize(cmd *cobra.Command, args []string) error {
	p, err := cfg.Preset(args[0])
	if err != nil {
		return err
	}

	exp, err := experiment.New(experiment.Config{
		Preset:  *p,
		DataDir: cfg.DataDir,
		File:    dataFile,
	}, logger)
	if err != nil {
		return err
	}

	rep, err := exp.Summarize()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "file:\t%s\n", rep.Path)
	fmt.Fprintf(w, "samples:\t%d\n", rep.Samples)
	fmt.Fprintf(w, "time:\t%.4f .. %.4f s\n", rep.Start, rep.End)
	if rep.Period > 0 {
		fmt.Fprintf(w, "period:\t%.4f s\n", rep.Period)
	} else {
		fmt.Fprintln(w, "period:\tn/a")
	}
	fmt.Fprintln(w, "\nenergy H = -cos(q) + p²/2:")
	fmt.Fprintf(w, "  initial:\t%.6f\n", rep.Energy.Initial)
	fmt.Fprintf(w, "  mean:\t%.6f\n", rep.Energy.Mean)
	fmt.Fprintf(w, "  min:\t%.6f\n", rep.Energy.Min)
	fmt.Fprintf(w, "  max:\t%.6f\n", rep.Energy.Max)
	fmt.Fprintf(w, "  max drift:\t%.2e\n", rep.Energy.MaxDrift)

	return w.Flush()
}
