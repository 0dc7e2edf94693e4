package pipeline_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/rangkaian/kompilator/internal/dump"
	"github.com/rangkaian/kompilator/internal/pipeline"
)

// TestDumpSnapshots runs a handful of representative programs end to end
// and snapshots their table output, the way
// internal/interp/fixture_test.go's TestDWScriptFixtures snapshots
// interpreter results for each fixture category.
func TestDumpSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			name: "scalar_vars",
			src:  "program contoh; variabel x : integer; y : real; mulai x := 1; y := 2.5 selesai.",
		},
		{
			name: "array_decl",
			src: `
program contoh;
tipe vektor = larik[1..5] dari integer;
variabel v : vektor;
mulai
  v[1] := 10
selesai.
`,
		},
		{
			name: "procedure_decl",
			src: `
program contoh;
prosedur tambah(x, y : integer);
mulai
selesai;
mulai
  tambah(1, 2)
selesai.
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := pipeline.Analyze(tc.src)
			if err != nil {
				t.Fatalf("pipeline.Analyze() error = %v", err)
			}
			out, err := dump.JSON(dump.Tables{IDT: res.Analyzer.IDT, BLT: res.Analyzer.BLT, ART: res.Analyzer.ART}, false)
			if err != nil {
				t.Fatalf("dump.JSON() error = %v", err)
			}
			snaps.MatchSnapshot(t, tc.name+"_tables", out)
		})
	}
}
