package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/emojidrop/internal/config"
	"github.com/san-kum/emojidrop/internal/export"
	"github.com/san-kum/emojidrop/internal/glyph"
	"github.com/san-kum/emojidrop/internal/metrics"
	"github.com/san-kum/emojidrop/internal/random"
	"github.com/san-kum/emojidrop/internal/viz"
	"github.com/san-kum/emojidrop/internal/world"
)

const defaultText = "emojidrop"

var (
	configFile string
	preset     string
	seed       int64
	fps        int
	viewWidth  float64
	viewHeight float64
	theme      string
	text       string
	frames     int
	debug      bool
	logFile    string
	// run
	plotFile string
	// bench
	benchCounts []int
	// sweep
	runs int
	// export
	outFile string
	// config
	writeFile string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "emojidrop",
		Short:        "type to drop emoji into the terminal",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.Float64Var(&viewWidth, "width", config.DefaultWidth, "viewport width for headless runs")
	pf.Float64Var(&viewHeight, "height", config.DefaultHeight, "viewport height for headless runs")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.StringVar(&text, "text", "", "text typed during headless runs")
	pf.IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate in headless runs")
	pf.BoolVar(&debug, "debug", false, "write a debug log")
	pf.StringVar(&logFile, "log", "emojidrop.log", "debug log path")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scripted session without the terminal UI",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&plotFile, "plot", "", "write the awake-bodies history as SVG")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure frames per second for growing piles",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&benchCounts, "count", []int{50, 100, 200, 400}, "particle counts")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "play the same script across many seeds in parallel",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "  %s\t%s\n", name, config.PresetAbout(name))
			}
			return w.Flush()
		},
	}

	glyphsCmd := &cobra.Command{
		Use:   "glyphs [key]",
		Short: "show the glyphs a key spawns, or the tap pool",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showGlyphs,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "run a scripted session and write the last frame as SVG",
		Args:  cobra.NoArgs,
		RunE:  exportSnapshot,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "emojidrop.svg", "output file")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writeFile, "write", "", "also save it to this path")

	rootCmd.AddCommand(runCmd, benchCmd, sweepCmd, presetsCmd, glyphsCmd, exportCmd, configCmd)
	return rootCmd
}

// resolveConfig layers defaults, the preset, the config file and any flag
// set on the command line, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("width") {
		cfg.Width = viewWidth
	}
	if flags.Changed("height") {
		cfg.Height = viewHeight
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("text") {
		cfg.Text = text
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := viz.GetTheme(cfg.Theme); !ok {
		return nil, fmt.Errorf("%w: unknown theme %q (available: %v)", config.ErrInvalidConfig, cfg.Theme, viz.ThemeNames())
	}
	return cfg, nil
}

func newWorld(cfg *config.Config) *world.World {
	rng := random.Clock()
	if cfg.Seed != 0 {
		rng = random.New(cfg.Seed)
	}
	return world.New(cfg.Width, cfg.Height, cfg.Params(), rng)
}

// script is the configured input, or the default text when none is set.
func script(cfg *config.Config) world.Script {
	s := cfg.Script()
	if len(s) == 0 {
		s = world.TypeText(defaultText, 0, config.TypeEvery)
	}
	return s
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if debug {
		f, err := tea.LogToFile(logFile, "emojidrop")
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	viz.SetTheme(cfg.Theme)
	log.Printf("start: seed=%d fps=%d preset=%q", cfg.Seed, cfg.FPS, preset)
	return viz.Run(newWorld(cfg), cfg)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	w := newWorld(cfg)
	set := metrics.Default()
	awake := metrics.AwakeHistory(cfg.Frames)
	energy := metrics.EnergyHistory(cfg.Frames)
	w.AddObserver(set)
	w.AddObserver(awake)
	w.AddObserver(energy)

	fmt.Fprintf(out, "running %d frames...\n", cfg.Frames)
	start := time.Now()
	last, err := script(cfg).PlayContext(cmd.Context(), w, cfg.Frames, nil)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "particles: %d\n", last.Particles)
	fmt.Fprintf(out, "awake: %d\n", last.Awake)
	fmt.Fprintln(out, "\nmetrics:")
	values := set.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.6f\n", name, values[name])
	}

	if awake.Len() > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(awake.Values(), asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption("awake bodies")))
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(energy.Values(), asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption("kinetic energy")))
	}

	if plotFile != "" {
		svg := export.SeriesToSVG(awake.Values(), 800, 300, "#00ff88")
		if err := os.WriteFile(plotFile, []byte(svg), 0644); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		fmt.Fprintf(out, "plot: %s\n", plotFile)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "benchmarking %d frames\n\n", cfg.Frames)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNT\tFRAMES\tTIME\tFRAMES/SEC\tCONTACTS/FRAME\tAWAKE")

	for _, n := range benchCounts {
		if n < 1 {
			return fmt.Errorf("particle count must be positive, got %d", n)
		}
		w := newWorld(cfg)
		contacts := metrics.NewContacts()
		w.AddObserver(contacts)
		for i := 0; i < n; i++ {
			w.KeyPress(string(rune('a'+i%26)), false)
		}

		start := time.Now()
		var last world.Frame
		for i := 0; i < cfg.Frames; i++ {
			last = w.Tick()
		}
		elapsed := time.Since(start)

		fmt.Fprintf(tw, "%d\t%d\t%v\t%.0f\t%.1f\t%d\n",
			n, cfg.Frames, elapsed, float64(cfg.Frames)/elapsed.Seconds(), contacts.Value(), last.Awake)
	}
	return tw.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}
	out := cmd.OutOrStdout()

	seedStart := cfg.Seed
	if seedStart == 0 {
		seedStart = time.Now().UnixNano()
	}
	settles := make([]*metrics.Settle, runs)
	// Every run gets an explicit seed, zero included, so sweeps replay.
	build := func(s int64) *world.World {
		w := world.New(cfg.Width, cfg.Height, cfg.Params(), random.New(s))
		settles[s-seedStart] = metrics.NewSettle()
		w.AddObserver(settles[s-seedStart])
		return w
	}

	fmt.Fprintf(out, "sweeping %d seeds from %d...\n\n", runs, seedStart)
	start := time.Now()
	results, err := world.Ensemble(cmd.Context(), runs, seedStart, build, script(cfg), cfg.Frames)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tPARTICLES\tAWAKE\tSETTLED")
	settled := 0
	for i, f := range results {
		at := "-"
		if v := settles[i].Value(); v > 0 {
			at = fmt.Sprintf("%.0f", v)
			settled++
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", seedStart+int64(i), f.Particles, f.Awake, at)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d/%d settled in %v\n", settled, runs, elapsed)
	return nil
}

func showGlyphs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintf(out, "tap: %s\n", strings.Join(glyph.TapPool(), " "))
		return nil
	}

	key := args[0]
	if key == "space" {
		key = " "
	}
	pool, rule := glyph.Pool(key)
	fmt.Fprintf(out, "%s (%s): %s\n", args[0], rule, strings.Join(pool, " "))
	return nil
}

func exportSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w := newWorld(cfg)
	last, err := script(cfg).PlayContext(cmd.Context(), w, cfg.Frames, nil)
	if err != nil {
		return err
	}

	vs := w.Snapshot(nil)
	viz.DrawOrder(vs)
	svg := export.SnapshotToSVG(vs, w.Bounds(), w.Interacted())
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "frame %d: %d particles written to %s\n", last.Index, last.Particles, outFile)
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))

	if writeFile != "" {
		if err := config.Save(writeFile, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}
	return nil
}
