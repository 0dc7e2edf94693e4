package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rangkaian/kompilator/internal/diagnostics"
	"github.com/rangkaian/kompilator/internal/dump"
	"github.com/rangkaian/kompilator/internal/pipeline"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print the concrete syntax tree",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := loadSource(args[0])
		if err != nil {
			exitWithError("%v", err)
		}
		res, err := pipeline.Parse(src)
		if err != nil {
			fmt.Println(diagnostics.NewSyntaxError(err).Format(true))
			exitWithError("parsing failed")
			return
		}
		printDump(res.CST, resolveFormat(parseFormat))
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "", "output format: text, json, yaml (default: config's dump_format, else text)")
	rootCmd.AddCommand(parseCmd)
}

// resolveFormat falls back to the loaded config's DumpFormat (spec §7's
// "default dump format") when a command's --format flag was left unset.
func resolveFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return string(loadedConfig.DumpFormat)
}

// printDump renders v in the requested format, exiting on an unsupported
// choice rather than silently falling back.
func printDump(v any, format string) {
	switch format {
	case "text":
		fmt.Println(dump.Tree(v))
	case "json":
		out, err := dump.JSON(v, true)
		if err != nil {
			exitWithError("%v", err)
		}
		fmt.Println(out)
	case "yaml":
		out, err := dump.YAML(v)
		if err != nil {
			exitWithError("%v", err)
		}
		fmt.Println(out)
	default:
		exitWithError("unknown format %q (want text, json, or yaml)", format)
	}
}
