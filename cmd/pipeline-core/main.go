// Copyright Asteria Studio, 2026. All rights reserved.

// Package main is the entry point for the pipeline-core CLI, the surface the
// Asteria Studio host application shells out to until a native binding layer
// exists.
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

// rootCmd is the base command for the pipeline-core CLI.
var rootCmd = &cobra.Command{
	Use:   "pipeline-core",
	Short: "Page-processing core for Asteria Studio",
	Long: `pipeline-core is the page-processing backend for Asteria Studio. The host
application hands it page identifiers, individually or as a YAML pages file,
and reads back a status message per page.

Processing stages are not implemented yet; every page currently yields a
placeholder status so the host integration can be built against a stable
contract.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pipeline-core.yaml or ~/.config/pipeline-core/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pipeline-core")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pipeline-core"))
		}
	}

	viper.SetEnvPrefix("PIPELINE_CORE")
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
