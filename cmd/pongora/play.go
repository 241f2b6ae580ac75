package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skies-of-pongora/internal/platform/tui"
	"github.com/vovakirdan/skies-of-pongora/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Without a variant a picker menu is shown and
you return to it after each game.

Move the mouse to steer the paddles. The terminal cannot resize or move
itself, so the window the game asks for is shown in the status line.

Controls:
  Mouse      - Steer the paddles
  R          - Restart with a new seed
  P          - Save a PNG screenshot to ~/.pongora/screenshots
  Tab        - Toggle the status line
  Q/Esc      - Quit

Difficulty options:
  easy   - Slow ball, gentle speed-up
  normal - Defaults from the config
  hard   - Fast ball, speeds up twice as often
  fixed  - Ball speed never changes

Examples:
  pongora play
  pongora play pongora_extended
  pongora play --difficulty hard --seed 7
  pongora play --config ./my-sky.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()

	if len(args) == 1 {
		game, err := createGame(args)
		if err != nil {
			return err
		}
		return tui.Run(game, store, runtimeConfig(width, height), logger)
	}

	for {
		res, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		width, height = res.Width, res.Height

		switch {
		case res.Quit:
			return nil
		case res.WantsHistory:
			if err := tui.RunSessions(store, width, height); err != nil {
				return err
			}
		default:
			game, err := registry.Create(res.GameID)
			if err != nil {
				return err
			}
			if err := tui.Run(game, store, runtimeConfig(width, height), logger); err != nil {
				return err
			}
		}
	}
}
