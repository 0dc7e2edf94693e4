// Command kompilator is the CLI front end for the parser, AST lowering,
// and semantic analyzer in internal/pipeline.
package main

import (
	"os"

	"github.com/rangkaian/kompilator/cmd/kompilator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
