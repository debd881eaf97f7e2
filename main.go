package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/iburimskiy/molnar/internal/config"
	"github.com/iburimskiy/molnar/internal/game"
	"github.com/iburimskiy/molnar/internal/logging"
	"github.com/iburimskiy/molnar/internal/sketch"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func rootCommand() *cobra.Command {
	var (
		seed     uint64
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "molnar",
		Short: "Draw nested jittered squares after Vera Molnar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(os.Stdout, logLevel)
			if err := run(seed, log); err != nil {
				log.Error().Err(err).Msg("molnar failed")
				_ = zenity.Error(err.Error(), zenity.Title("Molnar"), zenity.ErrorIcon)
				return err
			}
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the corner jitter, 0 picks one from the clock")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error or none")
	return cmd
}

func run(seed uint64, log zerolog.Logger) error {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Msg("starting")

	rng := rand.New(rand.NewPCG(seed, seed))
	g, err := game.New(sketch.NewMolnar(cfg, log), rng, log)
	if err != nil {
		return err
	}
	if err := game.Run(g, config.WindowTitle); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
