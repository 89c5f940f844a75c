package main

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/symmetry/series"
)

// orbitPlot scatters the frequencies of s, positive and negative
// amplitudes in two colors, with glyphs sized by |r|.
func orbitPlot(title string, s series.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "n"
	p.Y.Label.Text = "m"
	p.Add(plotter.NewGrid())

	var pos, neg plotter.XYs
	var posR, negR []float64
	for _, t := range s.Terms {
		xy := plotter.XY{X: float64(t.Freq.N), Y: float64(t.Freq.M)}
		if t.Coef.R < 0 {
			neg = append(neg, xy)
			negR = append(negR, -t.Coef.R)
			continue
		}
		pos = append(pos, xy)
		posR = append(posR, t.Coef.R)
	}

	for _, set := range []struct {
		name  string
		xys   plotter.XYs
		radii []float64
		fill  color.Color
	}{
		{"r > 0", pos, posR, color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}},
		{"r < 0", neg, negR, color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}},
	} {
		if len(set.xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(set.xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = set.fill
		radii := set.radii
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			gs := sc.GlyphStyle
			gs.Radius = vg.Points(2 + 6*radii[i])
			return gs
		}
		p.Add(sc)
		p.Legend.Add(set.name, sc)
	}

	return p, nil
}

func runPlot(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("plot", stdout)
	path := fs.String("config", "", "session file (.toml, .yaml)")
	out := fs.String("out", "orbit.png", "output image (.png, .svg, .pdf)")
	size := fs.Float64("inches", 5, "image width and height in inches")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("%w: plot needs -config", errUsage)
	}

	s, err := loadSession(*path, stderr)
	if err != nil {
		return err
	}
	terms, err := s.apply()
	if err != nil {
		return err
	}
	title := s.cfg.Option
	if s.group != nil {
		title = s.group.ID
	}
	p, err := orbitPlot(title, terms)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(*size)*vg.Inch, vg.Length(*size)*vg.Inch, *out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %d terms to %s\n", terms.Len(), *out)

	return nil
}
