package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rangkaian/kompilator/internal/pipeline"
)

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Run the whole pipeline: lex, parse, lower, analyze",
	Long: `compile runs every stage and reports success or the first error
encountered. There is no codegen stage: a successful compile means a
validated AST plus populated IDT/BLT/ART tables, nothing more.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := loadSource(args[0])
		if err != nil {
			exitWithError("%v", err)
		}
		res, err := pipeline.Compile(src, pipeline.WithBooleanContextPolicy(loadedConfig.BooleanContextPolicy))
		if err != nil {
			reportAnalyzeError(err)
			return
		}
		fmt.Printf("OK: %d identifiers, %d blocks, %d arrays\n",
			len(res.Analyzer.IDT), len(res.Analyzer.BLT), len(res.Analyzer.ART))
		for _, w := range res.Analyzer.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
