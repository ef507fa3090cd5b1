// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pluck CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pluck/internal/logging"
	"github.com/pdiddy/pluck/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the CLI logger, set up before any subcommand runs.
var log = logging.Nop()

// configFileErr records a failure to read a config file named with --config.
var configFileErr error

// rootCmd is the base command for the pluck CLI.
var rootCmd = &cobra.Command{
	Use:   "pluck",
	Short: "Extract fields from a list of records and reshape them",
	Long: `pluck reads a YAML or JSON list of records and extracts one or more
fields into a list of values, a list of rows, per-field lists, or joined
strings.

Reusable configurations can be stored as profiles in pluck.yaml and selected
with --profile.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Arguments parsed; from here on errors are not usage errors.
		cmd.SilenceUsage = true
		if configFileErr != nil {
			return configFileErr
		}
		l, err := logging.New(types.LoggingConfig{
			Level:       viper.GetString("log.level"),
			Development: viper.GetBool("log.development"),
		})
		if err != nil {
			return err
		}
		log = l
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pluck.yaml or ~/.config/pluck/pluck.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format: json, yaml, text, or spew")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, or error")
}

// initConfig starts every command from a clean viper state so flags, env,
// and the config file are layered the same way on each run.
func initConfig() {
	viper.Reset()
	configFileErr = nil

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pluck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pluck"))
		}
	}

	viper.SetEnvPrefix("PLUCK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		configFileErr = fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
