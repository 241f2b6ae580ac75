// pongora is Skies of Pongora: a ball bounces between four pointer-driven
// paddles inside a ring of bricks, and the window grows every time the
// ball hits the outer walls.
//
// Usage:
//
//	pongora list              - List available variants
//	pongora play [variant]    - Play in the terminal (menu when no variant)
//	pongora window [variant]  - Play in a desktop window
//	pongora serve             - Start SSH server for remote play
//	pongora sessions          - Browse recorded sessions
//	pongora config <variant>  - Print a variant's default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.pongora/sessions.db)
//	--config <path>      - Load a custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skies-of-pongora/internal/core"
	"github.com/vovakirdan/skies-of-pongora/internal/games/pongora"
	"github.com/vovakirdan/skies-of-pongora/internal/registry"
	"github.com/vovakirdan/skies-of-pongora/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pongora",
	Short: "Skies of Pongora - pong against a sky of bricks",
	Long: `Skies of Pongora bounces a ball between four paddles that follow your
pointer. Knock out the ring of bricks, hit the flip and rainbow circles,
and watch the window grow every time the ball reaches the edge.

Available commands:
  list      - Show all variants
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  sessions  - Browse recorded sessions
  config    - Print a variant's default config

Examples:
  pongora play
  pongora play pongora_extended --difficulty hard
  pongora window --seed 42
  pongora serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		pongora.SetConfigPath(flagConfig)
		pongora.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pongora/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runtimeConfig builds the runtime config from the global flags.
// Zero sizes keep the defaults.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW = width
		cfg.ScreenH = height
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the session database. Failure is not fatal: the game
// runs without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "error", err)
		return nil
	}
	return store
}

// createGame resolves a variant ID, defaulting to the classic layout.
func createGame(args []string) (registry.Game, error) {
	id := "pongora"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown variant %q (run 'pongora list' to see variants)", id)
	}
	return registry.Create(id)
}

// stderrLogger logs to stderr for hosts that do not own the terminal.
func stderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pongora",
	})
}

// fileLogger logs to ~/.pongora/pongora.log so the alt screen stays clean.
// It falls back to stderr when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return stderrLogger(), func() {}
	}
	dir := filepath.Join(home, ".pongora")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return stderrLogger(), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "pongora.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return stderrLogger(), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pongora",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
