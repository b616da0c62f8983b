package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mhellwig/spendbook/internal/config"
)

var (
	cfg     *config.Config
	version = "dev"

	rootCmd = &cobra.Command{
		Use:   "spendbook",
		Short: "Track personal spending from the terminal",
		Long: `spendbook records what you spend, groups it into colored categories with
optional monthly limits, and answers questions like "what did I spend on
food this month". Data lives in two plain JSON files under the data
directory.`,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "data directory (default: $SPENDBOOK_DATA_DIR or ./data)")

	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(expensesCmd())
	rootCmd.AddCommand(versionCmd())
}

func setup(cmd *cobra.Command, _ []string) error {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	c, err := config.Load()
	if err != nil {
		return err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		c.DataDir = dir
	}

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg = c
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println("spendbook", version)
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
