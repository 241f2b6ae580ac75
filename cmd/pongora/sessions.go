package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skies-of-pongora/internal/platform/tui"
	"github.com/vovakirdan/skies-of-pongora/internal/storage"
)

var flagPlain bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse recorded sessions",
	Long: `Browse the sessions recorded by every host, one tab per variant.

With --plain the newest sessions are printed instead.

Examples:
  pongora sessions
  pongora sessions --plain
  pongora sessions --db ./sessions.db`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print sessions instead of opening the browser")
}

func runSessions(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if !flagPlain {
		width, height := terminalSize()
		return tui.RunSessions(store, width, height)
	}

	sessions, err := store.RecentSessions("", 20)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-17s  %-16s  %5s  %6s  %5s  %8s\n", "Date", "Variant", "Score", "Bricks", "Flips", "Time")
	fmt.Printf("  %-17s  %-16s  %5s  %6s  %5s  %8s\n", "----", "-------", "-----", "------", "-----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-17s  %-16s  %5d  %6d  %5d  %8s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.GameID,
			s.Score,
			s.BricksDestroyed,
			s.Flips,
			s.Duration.Round(time.Second),
		)
	}
	return nil
}
