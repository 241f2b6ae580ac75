package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skies-of-pongora/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Play in a desktop window. The window follows the game: it grows and
recenters when the ball hits the outer walls, its title cycles, and it
fades while the ball is inside a circle.

Controls:
  Mouse  - Steer the paddles
  R      - Restart with a new seed
  Q/Esc  - Quit

Examples:
  pongora window
  pongora window pongora_extended --fps 120`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	game, err := createGame(args)
	if err != nil {
		return err
	}

	logger := stderrLogger()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return window.Run(game, store, runtimeConfig(0, 0), logger)
}
