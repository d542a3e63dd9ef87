package pipeline

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/dhallcore/dhallcore/internal/prettyprinter"
)

// Each archive bundles one input document with its expected rendered type
// and normal form, so a scenario and its two expectations travel as one
// unit instead of three separately-named test fixtures.
var goldenArchives = []string{
	`
-- input.yaml --
kind: App
fn:
  kind: Lam
  label: x
  type:
    kind: Builtin
    builtin: Natural
  body:
    kind: Var
    name: x
    index: 0
arg:
  kind: NaturalLit
  natural: 7
-- type --
Natural
-- normal --
7
`,
	`
-- input.yaml --
kind: RecordLit
fields:
  a:
    kind: NaturalLit
    natural: 1
  b:
    kind: BoolLit
    bool: true
-- type --
{ a : Natural, b : Bool }
-- normal --
{ a = 1, b = True }
`,
}

func TestGoldenEndToEndScenarios(t *testing.T) {
	for _, raw := range goldenArchives {
		raw := raw
		ar := txtar.Parse([]byte(strings.TrimPrefix(raw, "\n")))
		files := make(map[string]string, len(ar.Files))
		for _, f := range ar.Files {
			files[f.Name] = strings.TrimSpace(string(f.Data))
		}

		input, ok := files["input.yaml"]
		if !ok {
			t.Fatalf("golden archive missing input.yaml: %v", ar.Files)
		}

		ctx := NewPipelineContext([]byte(input))
		Standard().Run(ctx)

		if !ctx.OK() {
			t.Fatalf("pipeline failed on %q: %v", input, ctx.Errors)
		}
		if wantType, ok := files["type"]; ok {
			if got := prettyprinter.Print(ctx.Type); got != wantType {
				t.Errorf("type = %q, want %q", got, wantType)
			}
		}
		if wantNormal, ok := files["normal"]; ok {
			if ctx.Rendered != wantNormal {
				t.Errorf("normal form = %q, want %q", ctx.Rendered, wantNormal)
			}
		}
	}
}
