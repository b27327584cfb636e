// Command viper is the CLI entry point: run a script file, evaluate an
// inline expression, or start an interactive session.
package main

import (
	"fmt"
	"os"

	"github.com/sanmaykant/viper/cmd/viper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
