package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rangkaian/kompilator/internal/dump"
	"github.com/rangkaian/kompilator/internal/pipeline"
)

var (
	dumpFormat string
	dumpTarget string
	dumpQuery  string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the CST, AST, or symbol tables in text, JSON, or YAML",
	Long: `dump runs the pipeline far enough to produce --target, then renders it
in --format. --query pulls a single field out of the dumped value using
gjson path syntax (e.g. "idt.3.name", "art.1.size") instead of printing
the whole tree.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := loadSource(args[0])
		if err != nil {
			exitWithError("%v", err)
		}

		var v any
		switch dumpTarget {
		case "cst":
			res, err := pipeline.Parse(src)
			if err != nil {
				reportAnalyzeError(err)
				return
			}
			v = res.CST
		case "ast":
			res, err := pipeline.Lower(src)
			if err != nil {
				reportAnalyzeError(err)
				return
			}
			v = res.AST
		case "tables":
			res, err := pipeline.Analyze(src, pipeline.WithBooleanContextPolicy(loadedConfig.BooleanContextPolicy))
			if err != nil {
				reportAnalyzeError(err)
				return
			}
			v = dump.Tables{IDT: res.Analyzer.IDT, BLT: res.Analyzer.BLT, ART: res.Analyzer.ART}
		default:
			exitWithError("unknown target %q (want cst, ast, or tables)", dumpTarget)
			return
		}

		if dumpQuery != "" {
			result, err := dump.Query(v, dumpQuery)
			if err != nil {
				exitWithError("%v", err)
			}
			fmt.Println(result)
			return
		}
		printDump(v, resolveFormat(dumpFormat))
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "", "output format: text, json, yaml (default: config's dump_format, else text)")
	dumpCmd.Flags().StringVar(&dumpTarget, "target", "tables", "what to dump: cst, ast, tables")
	dumpCmd.Flags().StringVar(&dumpQuery, "query", "", "gjson path to extract a single field instead of the whole tree")
	rootCmd.AddCommand(dumpCmd)
}
