package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rangkaian/kompilator/internal/config"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// loadedConfig is populated by rootCmd's PersistentPreRunE before any
// subcommand's Run executes, so every subcommand sees .kompilator.yaml's
// settings (or Default()) without loading the file itself.
var loadedConfig = config.Default()

const defaultConfigPath = ".kompilator.yaml"

var rootCmd = &cobra.Command{
	Use:   "kompilator",
	Short: "Front end compiler for an Indonesian-keyword Pascal-like language",
	Long: `kompilator parses, lowers, and semantically analyzes programs written in
an Indonesian-keyword Pascal-like source language.

It implements three tightly coupled stages:
  - a predictive recursive-descent parser producing a concrete syntax tree
  - AST lowering, collapsing the grammar-driven tree into a semantic one
  - a semantic analyzer building the identifier, block, and array tables

There is no code generation, optimization, or runtime: kompilator stops at
a validated AST plus populated symbol tables.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = defaultConfigPath
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		loadedConfig = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("config", "", "path to .kompilator.yaml (default: ./.kompilator.yaml)")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
