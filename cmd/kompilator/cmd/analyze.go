package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rangkaian/kompilator/internal/diagnostics"
	"github.com/rangkaian/kompilator/internal/dump"
	"github.com/rangkaian/kompilator/internal/pipeline"
)

var (
	analyzeFormat string
	analyzeTarget string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Run the full pipeline and print the AST or symbol tables",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := loadSource(args[0])
		if err != nil {
			exitWithError("%v", err)
		}
		res, err := pipeline.Analyze(src, pipeline.WithBooleanContextPolicy(loadedConfig.BooleanContextPolicy))
		if err != nil {
			reportAnalyzeError(err)
			return
		}

		format := resolveFormat(analyzeFormat)
		switch analyzeTarget {
		case "ast":
			printDump(res.AST, format)
		case "tables":
			printDump(dump.Tables{IDT: res.Analyzer.IDT, BLT: res.Analyzer.BLT, ART: res.Analyzer.ART}, format)
		default:
			exitWithError("unknown target %q (want ast or tables)", analyzeTarget)
		}
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "output format: text, json, yaml (default: config's dump_format, else text)")
	analyzeCmd.Flags().StringVar(&analyzeTarget, "target", "tables", "what to print: ast, tables")
	rootCmd.AddCommand(analyzeCmd)
}

// reportAnalyzeError renders whichever stage failed: a syntax error if
// parsing never reached semantic analysis, otherwise a semantic one.
func reportAnalyzeError(err error) {
	if diagnostics.IsSemantic(err) {
		fmt.Println(diagnostics.NewSemanticError(err).Format(true))
	} else {
		fmt.Println(diagnostics.NewSyntaxError(err).Format(true))
	}
	exitWithError("analysis failed")
}
