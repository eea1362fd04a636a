// Package main provides the CLI entrypoint for tuicube.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuicube/internal/config"
	"github.com/verte-zerg/tuicube/internal/model"
	"github.com/verte-zerg/tuicube/internal/scramble"
	"github.com/verte-zerg/tuicube/internal/stats"
	"github.com/verte-zerg/tuicube/internal/statsui"
	"github.com/verte-zerg/tuicube/internal/store"
	"github.com/verte-zerg/tuicube/internal/timer"
	"github.com/verte-zerg/tuicube/internal/tui"
)

const (
	defaultTick           = 100 * time.Millisecond
	defaultScrambleLength = 20
	defaultPlotLast       = 200
	defaultPlotHeight     = 10
	defaultScrambleCount  = 1
	minAverageWindow      = 3
)

var (
	timerTick           time.Duration
	timerHistory        string
	timerScrambleLength int

	statsHistory     string
	statsLast        int
	statsWindow      int
	statsInteractive bool

	scrambleCount  int
	scrambleLength int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuicube",
		Short:         "TUI speedcube timer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTimerCmd,
	}

	rootCmd.Flags().DurationVar(&timerTick, "tick", defaultTick, "redraw interval")
	rootCmd.Flags().StringVar(&timerHistory, "history", "", "solve history file (default: $XDG_DATA_HOME/tuicube/times.txt)")
	rootCmd.Flags().IntVar(&timerScrambleLength, "scramble-length", defaultScrambleLength, "moves per scramble")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newScrambleCmd())

	return rootCmd
}

func runTimerCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, timerTick, timerHistory, timerScrambleLength)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	h, err := st.Load()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	m := tui.NewModel(cfg, st, h, timer.New(), scramble.New())
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveConfig merges flag values with the config file. File values only
// apply to flags the user did not set.
func resolveConfig(cmd *cobra.Command, tick time.Duration, history string, length int) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyTickConfig(cmd, "tick", &tick, fileCfg.Timer.TickMs)
	applyStringConfig(cmd, "history", &history, fileCfg.History.Path)
	applyIntConfig(cmd, "scramble-length", &length, fileCfg.Scramble.Length)

	if history == "" {
		history = config.DefaultHistoryPath()
	}
	cfg := model.Config{
		TickInterval:   tick,
		HistoryPath:    expandHome(history),
		ScrambleLength: length,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print solve statistics",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsHistory, "history", "", "solve history file")
	cmd.Flags().IntVar(&statsLast, "last", defaultPlotLast, "number of recent solves to plot")
	cmd.Flags().IntVar(&statsWindow, "window", stats.Ao5Window, "rolling average window for the browser")
	cmd.Flags().BoolVarP(&statsInteractive, "interactive", "i", false, "browse stats in a TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	path := statsHistory
	applyStringConfig(cmd, "history", &path, fileCfg.History.Path)
	if path == "" {
		path = config.DefaultHistoryPath()
	}

	st, err := store.Open(expandHome(path))
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	h, err := st.Load()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if statsInteractive {
		if err := validateWindow(statsWindow); err != nil {
			return err
		}
		m := statsui.NewModel(h, model.StatsConfig{Last: statsLast, Window: statsWindow})
		program := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run stats TUI: %w", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, h.Summary()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	times := h.Times()
	if statsLast == 0 || len(times) == 0 {
		return nil
	}
	if len(times) > statsLast {
		times = times[len(times)-statsLast:]
	}
	if _, err := fmt.Fprintf(out, "Trend: %s\n\n", stats.Sparkline(times)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	series := []stats.Series{
		{Name: "single", Values: times},
		{Name: "ao5", Values: stats.RollingAverages(times, stats.Ao5Window)},
		{Name: "ao12", Values: stats.RollingAverages(times, stats.Ao12Window)},
	}
	title := fmt.Sprintf("Last %d solves", len(times))
	if err := stats.PlotSeries(out, title, series, 0, defaultPlotHeight, stats.ShouldUseColor(out)); err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}
	return nil
}

func newScrambleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Print random scrambles",
		Args:  cobra.NoArgs,
		RunE:  runScrambleCmd,
	}
	cmd.Flags().IntVarP(&scrambleCount, "count", "n", defaultScrambleCount, "number of scrambles")
	cmd.Flags().IntVar(&scrambleLength, "length", defaultScrambleLength, "moves per scramble")
	return cmd
}

func runScrambleCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "length", &scrambleLength, fileCfg.Scramble.Length)
	if scrambleCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	if scrambleLength <= 0 {
		return fmt.Errorf("--length must be > 0")
	}
	gen := scramble.New()
	for i := 0; i < scrambleCount; i++ {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), gen.Generate(scrambleLength)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyTickConfig(cmd *cobra.Command, name string, target *time.Duration, ms *int) {
	if ms == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = time.Duration(*ms) * time.Millisecond
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		logErrf("failed to resolve home directory: %v\n", err)
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuicube configuration
# Uncomment a value to enable it. CLI flags override config values.

[timer]
# tick-ms = %d            # Redraw interval in milliseconds

[history]
# path = %q               # Solve history file, one time in seconds per line

[scramble]
# length = %d             # Moves per scramble
`,
		defaultTick.Milliseconds(),
		config.DefaultHistoryPath(),
		defaultScrambleLength,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("--tick must be > 0")
	}
	if cfg.ScrambleLength <= 0 {
		return fmt.Errorf("--scramble-length must be > 0")
	}
	if strings.TrimSpace(cfg.HistoryPath) == "" {
		return fmt.Errorf("--history must not be empty")
	}
	return nil
}

// validateWindow rejects windows too small for a trimmed mean, which drops
// one best and one worst time.
func validateWindow(window int) error {
	if window < minAverageWindow {
		return fmt.Errorf("--window must be >= %d", minAverageWindow)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
