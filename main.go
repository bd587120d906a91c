// arena is a top-down arcade shooter. Move with WASD, aim and fire with
// the mouse, and keep enemy squares off you. The score is shown in the
// window title; F1 toggles a debug overlay.
//
// Flags (all optional):
//
//	--config <path>     YAML config file
//	--seed <value>      spawn RNG seed (0 = random based on time)
//	--log-level <lvl>   debug, info, warn or error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"squarearena/game"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "arena",
	Short:         "Top-down arcade shooter",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
	})

	config, err := loadConfig(cmd)
	if err != nil {
		logger.Error("could not load config", "err", err)
		return err
	}
	level, _ := log.ParseLevel(config.LogLevel)
	logger.SetLevel(level)

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		config.Seed = seed
	}
	logger.Info("starting",
		"width", config.ScreenWidth,
		"height", config.ScreenHeight,
		"seed", seed)

	g := game.NewGame(config, rand.New(rand.NewSource(seed)), logger)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(strconv.Itoa(g.Simulation().Score()))

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("error occurred", "err", err)
		return err
	}
	logger.Info("exited cleanly")
	return nil
}

// loadConfig reads the config file and applies flags that were set
func loadConfig(cmd *cobra.Command) (game.Config, error) {
	config, err := game.LoadConfig(flagConfig)
	if err != nil {
		return config, err
	}

	if cmd.Flags().Changed("seed") {
		config.Seed = flagSeed
	}
	if cmd.Flags().Changed("log-level") {
		config.LogLevel = flagLogLevel
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("flags: %w", err)
	}
	return config, nil
}
