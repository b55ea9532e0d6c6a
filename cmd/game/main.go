// crypt is a top-down room-clearing action game.
//
// Usage:
//
//	crypt play [--world demo] [--seed N] [--record file]   - Play a world
//	crypt replay <file>                                    - Re-simulate a recording headless
//	crypt worlds                                           - List available worlds
//
// Global flags:
//
//	--log-level <level>  - panic, fatal, error, warn, info, debug or trace
//	--log-format <fmt>   - text or json
//	--config-dir <dir>   - Load configs from a directory instead of the embedded defaults
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/younwookim/crypt/internal/infrastructure/config"
	"github.com/younwookim/crypt/internal/infrastructure/logger"
)

//go:embed configs
var configFS embed.FS

var (
	// Global flags
	flagLogLevel  string
	flagLogFormat string
	flagConfigDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crypt",
	Short: "Crypt - clear the rooms, collect the tokens, beat the boss",
	Long: `Crypt is a top-down action game. Walk into a room to lock its doors,
defeat the wave inside to earn a token, and spend tokens to open the way on.

Examples:
  crypt play
  crypt play --world arena --seed 42 --record run.json
  crypt replay run.json
  crypt worlds`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json (default: $LOG_FORMAT or text)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Config directory (default: embedded configs)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(worldsCmd)
}

// newLogger builds the logger from the global flags
func newLogger() *logrus.Logger {
	return logger.New(logger.Options{
		Level:  flagLogLevel,
		Format: flagLogFormat,
	})
}

// newLoader returns a loader over --config-dir, or the embedded configs
func newLoader() (*config.Loader, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadWorld loads the game tuning and one world layout
func loadWorld(name string) (*config.GameConfig, *config.WorldConfig, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, nil, err
	}
	world, err := loader.LoadWorld(name)
	if err != nil {
		return nil, nil, err
	}
	return cfg, world, nil
}
