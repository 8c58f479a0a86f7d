// Package cmd implements the command-line interface for ozstats. It provides
// the root command and subcommands for fetching lottery statistics and
// generating number suggestions.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/ozstats/cmd/fetch"
	"github.com/jonesrussell/ozstats/cmd/generate"
	"github.com/jonesrussell/ozstats/cmd/history"
	cmdscheduler "github.com/jonesrussell/ozstats/cmd/scheduler"
	"github.com/jonesrussell/ozstats/cmd/statscmd"
	"github.com/jonesrussell/ozstats/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging for all commands.
	debug bool

	// rootCmd represents the root command for the ozstats CLI.
	rootCmd = &cobra.Command{
		Use:   "ozstats",
		Short: "Lottery statistics scraper and number suggester",
		Long: `ozstats scrapes a lottery statistics page, extracts per-number
frequency and overdue statistics, and generates candidate number rows using
several selection heuristics. The suggestions carry no statistical guarantee.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Parse flags early so --config and --debug are visible to initConfig.
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(
		&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ozstats version %s\n", version)
		},
	})

	rootCmd.AddCommand(generate.Command())
	rootCmd.AddCommand(statscmd.Command())
	rootCmd.AddCommand(fetch.Command())
	rootCmd.AddCommand(history.Command())
	rootCmd.AddCommand(cmdscheduler.Command())
}

// initConfig reads the config file and environment variables into viper.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	// Load .env before reading config so its variables are visible to viper.
	_ = godotenv.Load()

	viper.SetEnvPrefix("OZSTATS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults()

	// The config file is optional: defaults and environment variables cover
	// every setting.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: config file not read: %v\n", err)
		}
	}

	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	return nil
}
