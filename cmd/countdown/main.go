package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/countdown/internal/anim"
	"github.com/san-kum/countdown/internal/config"
	"github.com/san-kum/countdown/internal/countdown"
	"github.com/san-kum/countdown/internal/logging"
	"github.com/san-kum/countdown/internal/storage"
	"github.com/san-kum/countdown/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
	// Timer parameters
	seconds     int
	tick        time.Duration
	period      time.Duration
	frameRate   int
	easing      string
	theme       string
	resetOnStop bool
	record      bool
	// Config file
	configFile string
	// Preset name
	preset string
	// history / curve
	plot    bool
	samples int
)

// main registers commands and flags and executes the root command, which
// runs the countdown when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "countdown",
		Short:        "visual countdown timer for the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runTimer,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".countdown", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.Flags().IntVar(&seconds, "seconds", config.DefaultSeconds, "countdown length in seconds")
	rootCmd.Flags().DurationVar(&tick, "tick", config.DefaultTickInterval, "tick interval")
	rootCmd.Flags().DurationVar(&period, "period", config.DefaultPeriod, "animation half-cycle")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "animation frame rate")
	rootCmd.Flags().StringVar(&easing, "easing", config.DefaultEasing, "animation easing")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.Flags().BoolVar(&resetOnStop, "reset-on-stop", false, "stopping restores the initial value")
	rootCmd.Flags().BoolVar(&record, "record", false, "record sessions to the data directory")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history [session-id]",
		Short: "list recorded sessions, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listHistory,
	}
	historyCmd.Flags().BoolVar(&plot, "plot", false, "plot counted-down seconds per session")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot one animation cycle",
		Args:  cobra.NoArgs,
		RunE:  plotCurve,
	}
	curveCmd.Flags().StringVar(&easing, "easing", config.DefaultEasing, "animation easing")
	curveCmd.Flags().DurationVar(&period, "period", config.DefaultPeriod, "animation half-cycle")
	curveCmd.Flags().IntVar(&samples, "samples", 80, "number of samples")

	initCmd := &cobra.Command{
		Use:   "init-config <path>",
		Short: "write a config file from the defaults or a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeConfig(args[0], preset); err != nil {
				return err
			}
			fmt.Printf("config written to %s\n", args[0])
			return nil
		},
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	rootCmd.AddCommand(presetsCmd, themesCmd, historyCmd, curveCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seconds") {
		cfg.Seconds = seconds
	}
	if flags.Changed("tick") {
		cfg.TickInterval = tick
	}
	if flags.Changed("period") {
		cfg.Period = period
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("easing") {
		cfg.Easing = easing
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("reset-on-stop") {
		cfg.ResetOnStop = resetOnStop
	}
	if flags.Changed("record") {
		cfg.Record = record
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTimer(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	closer, err := logging.Init(dataDir, level)
	if err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	defer closer.Close()

	ease, err := anim.EasingByName(cfg.Easing)
	if err != nil {
		return err
	}
	osc, err := anim.NewOscillator(cfg.Period, ease)
	if err != nil {
		return err
	}
	th, err := viz.GetTheme(cfg.Theme)
	if err != nil {
		return err
	}
	timer, err := countdown.New(cfg.Seconds, cfg.ResetOnStop)
	if err != nil {
		return err
	}

	opts := viz.Options{
		Interval:   cfg.TickInterval,
		FrameEvery: cfg.FrameInterval(),
		Oscillator: osc,
		Theme:      th,
		Logger:     logging.Logger,
	}
	if cfg.Record {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		opts.Recorder = st
	}

	m, err := viz.NewModel(timer, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(viz.Model); ok {
		fm.Unmount()
	}
	if err != nil {
		logging.Logger.Error("program exited with error", "err", err)
		return err
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSECONDS\tPERIOD\tFPS\tEASING\tTHEME\tRESET\tRECORD")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\t%s\t%t\t%t\n",
			name,
			p.Seconds,
			p.Period,
			p.FPS,
			p.Easing,
			p.Theme,
			p.ResetOnStop,
			p.Record,
		)
	}
	return w.Flush()
}

// writeConfig saves the defaults, or the named preset, as YAML.
func writeConfig(path, presetName string) error {
	cfg := config.DefaultConfig()
	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
	}
	return config.Save(path, cfg)
}

func listHistory(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if len(args) == 1 {
		return showSession(os.Stdout, st, args[0])
	}

	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	if plot {
		data := make([]float64, len(sessions))
		for i, s := range sessions {
			data[i] = float64(s.Elapsed())
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("seconds counted per session"),
		))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tINITIAL\tREMAINING\tELAPSED\tCOMPLETED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%ds\t%ds\t%ds\t%t\n",
			s.ID,
			s.Started.Format("2006-01-02 15:04:05"),
			s.Initial,
			s.Remaining,
			s.Elapsed(),
			s.Completed,
		)
	}
	return w.Flush()
}

func plotCurve(cmd *cobra.Command, args []string) error {
	ease, err := anim.EasingByName(easing)
	if err != nil {
		return err
	}
	osc, err := anim.NewOscillator(period, ease)
	if err != nil {
		return err
	}
	if samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", samples)
	}

	fmt.Println(asciigraph.Plot(osc.Samples(samples),
		asciigraph.Height(12),
		asciigraph.Width(samples),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("%s over %s forward + %s reverse", easing, period, period)),
	))
	return nil
}

// showSession prints one session and plots its count from the initial
// value down to where it ended.
func showSession(w io.Writer, st *storage.Store, id string) error {
	sess, err := st.Load(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "session: %s\n", sess.ID)
	fmt.Fprintf(w, "started: %s\n", sess.Started.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "ended: %s\n", sess.Ended.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "initial: %ds\n", sess.Initial)
	fmt.Fprintf(w, "remaining: %ds\n", sess.Remaining)
	fmt.Fprintf(w, "ticks: %d\n", sess.Ticks)
	fmt.Fprintf(w, "completed: %t\n", sess.Completed)

	if sess.Elapsed() < 1 {
		return nil
	}
	data := make([]float64, 0, sess.Elapsed()+1)
	for v := sess.Initial; v >= sess.Remaining; v-- {
		data = append(data, float64(v))
	}
	fmt.Fprintf(w, "\n%s\n", asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.LowerBound(0),
		asciigraph.Caption("remaining seconds"),
	))
	return nil
}
