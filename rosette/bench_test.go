// File: rosette/bench_test.go
package rosette_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/symmetry/polar"
	"github.com/katalvlaran/symmetry/rosette"
)

// BenchmarkUpdateCoefficients measures a three-rule edit on a 31×31 grid.
func BenchmarkUpdateCoefficients(b *testing.B) {
	g, err := rosette.FindOption("p2mm")
	if err != nil {
		b.Fatal(err)
	}
	rules, err := g.Rules(5)
	if err != nil {
		b.Fatal(err)
	}
	s, err := rosette.New(31, rules, rosette.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		b.Fatal(err)
	}
	coeffs := make([]polar.Polar, 31*31)
	term := polar.New(1, 0.3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.UpdateCoefficients(coeffs, i%len(coeffs), term); err != nil {
			b.Fatal(err)
		}
	}
}
