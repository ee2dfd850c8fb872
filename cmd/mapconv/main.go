// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mapconv CLI, which converts
// exported mind-map collections into the renderer's JSON format and
// maintains a search index over the result.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mapconv CLI.
var rootCmd = &cobra.Command{
	Use:   "mapconv",
	Short: "Convert exported mind maps into renderer-ready JSON",
	Long: `mapconv transforms mind-map documents exported from the editor into a
normalized JSON representation: nested node trees are flattened into
nodes, subnodes, and connections; emoji taxonomy markers become category
labels; internal cross-document links are rewritten to relative paths.

Use the convert subcommand for the transformation itself and the index
subcommands to build and query a full-text node index over the output.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mapconv.yaml or ~/.config/mapconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mapconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mapconv"))
		}
	}

	viper.SetEnvPrefix("MAPCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
