package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skies-of-pongora/internal/config"
	"github.com/vovakirdan/skies-of-pongora/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <variant>",
	Short: "Print a variant's default config",
	Long: `Print the embedded default YAML for a variant. Save it to
~/.pongora/configs/<variant>.yaml or pass it with --config to customize.

Examples:
  pongora config pongora > ~/.pongora/configs/pongora.yaml
  pongora config pongora_extended`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q (run 'pongora list' to see variants)", id)
	}
	_, err := os.Stdout.Write(config.GetDefaultYAML(id))
	return err
}
