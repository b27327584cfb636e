package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Viper session",
	Long: `Start an interactive session: each block of input is read until a
blank line, then lexed, parsed and run against a fresh scope — variables
and functions do not carry over between blocks. Type "exit" on its own
line to quit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// getBlock reads lines from in, prompting once per line, until a blank line
// or the literal sentinel line "exit". It returns the accumulated block and
// whether the session should keep going; on "exit" the lines read so far
// are discarded and the block is empty.
func getBlock(in *bufio.Reader, out *os.File) (block string, keepGoing bool) {
	var b strings.Builder
	for {
		fmt.Fprint(out, "viper > ")
		line, err := in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return b.String(), err == nil
		}
		if line == "exit" {
			return "", false
		}
		b.WriteString(line)
		b.WriteString("\n")
		if err != nil {
			return b.String(), false
		}
	}
}

func runRepl(_ *cobra.Command, _ []string) error {
	in := bufio.NewReader(os.Stdin)
	for {
		block, keepGoing := getBlock(in, os.Stdout)
		if block != "" {
			if err := runSource(block, "<repl>"); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		if !keepGoing {
			return nil
		}
	}
}
