// File: wallpaper/bench_test.go
package wallpaper_test

import (
	"testing"

	"github.com/katalvlaran/symmetry/series"
	"github.com/katalvlaran/symmetry/wallpaper"
)

// BenchmarkExpand measures the largest orbit in the catalogue.
func BenchmarkExpand(b *testing.B) {
	g := mustGroup(b, "p6m")
	term := series.NewTerm(3, 1, 1, 0.25)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = wallpaper.Expand(g, term)
	}
}

// BenchmarkFindGroup measures the name index.
func BenchmarkFindGroup(b *testing.B) {
	names := wallpaper.Names()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wallpaper.FindGroup(names[i%len(names)]); err != nil {
			b.Fatal(err)
		}
	}
}
