package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rangkaian/kompilator/pkg/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a source file and stop (--lexer-only)",
	Long: `lex reads a .pas source file (or a pre-tokenized .txt file, one
KIND(lexeme) per line) and prints the resulting token stream, without
parsing it. This is the original driver's --lexer-only milestone.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		toks, err := loadTokens(args[0])
		if err != nil {
			exitWithError("%v", err)
		}
		printTokens(toks)
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func printTokens(toks []token.Token) {
	for _, t := range toks {
		if t.Lexeme == "" {
			fmt.Println(t.Kind.String())
		} else {
			fmt.Printf("%s(%s)\n", t.Kind, t.Lexeme)
		}
	}
}
