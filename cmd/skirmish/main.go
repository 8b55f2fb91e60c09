// Package main is the entry point for the skirmish battle simulator
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "skirmish",
	Short: "Hero-versus-monster battle simulator",
	Long: `Skirmish arms a hero and a monster, rolls a battle to its end, and
narrates every strike, the victory heal, and the looting of the fallen.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func main() {
	// .env may carry SKIRMISH_* defaults; a missing file is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log engine internals")
	rootCmd.AddCommand(simulateCmd)
}
