package interp

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/sanmaykant/viper/internal/lexer"
	"github.com/sanmaykant/viper/internal/parser"
)

// TestScriptFixtures runs every script under testdata/fixtures through the
// full lexer/parser/interpreter pipeline and snapshots what it printed.
// The fixtures are ordinary programs, so they double as end-to-end
// regression coverage for the evaluation order and output formatting that
// the unit tests only probe piecewise.
func TestScriptFixtures(t *testing.T) {
	fixtures, err := filepath.Glob(filepath.Join("testdata", "fixtures", "*.vp"))
	if err != nil {
		t.Fatalf("failed to glob fixtures: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, fixture := range fixtures {
		name := filepath.Base(fixture)
		t.Run(name, func(t *testing.T) {
			content, err := os.ReadFile(fixture)
			if err != nil {
				t.Fatalf("failed to read %s: %v", fixture, err)
			}
			src := string(content)

			tokens, lexErr := lexer.New(src).Tokenize()
			if lexErr != nil {
				t.Fatalf("lex error in %s: %s", name, lexErr.Error())
			}
			prog, parseErr := parser.Parse(tokens, src)
			if parseErr != nil {
				t.Fatalf("parse error in %s: %s", name, parseErr.Error())
			}

			var out bytes.Buffer
			if runErr := Run(prog, src, WithStdout(&out)); runErr != nil {
				t.Fatalf("runtime error in %s: %s", name, runErr.Error())
			}

			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), out.String())
		})
	}
}
