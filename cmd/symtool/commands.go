package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/symmetry/config"
	"github.com/katalvlaran/symmetry/grid"
	"github.com/katalvlaran/symmetry/polar"
	"github.com/katalvlaran/symmetry/rosette"
	"github.com/katalvlaran/symmetry/series"
	"github.com/katalvlaran/symmetry/uniforms"
	"github.com/katalvlaran/symmetry/wallpaper"
)

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func runGroups(args []string, stdout io.Writer) error {
	fs := newFlagSet("groups", stdout)
	color := fs.Bool("color", false, "list the color-reversing groups")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := wallpaper.Groups
	if *color {
		list = wallpaper.ColorReversingGroups
	}
	for _, g := range list {
		rules := make([]string, len(g.Rules))
		for i, r := range g.Rules {
			rules[i] = r.String()
		}
		fmt.Fprintf(stdout, "%-9s %-13s %-7s [%s]", g.ID, g.Lattice, g.BaseRule, strings.Join(rules, " "))
		if *color {
			fmt.Fprintf(stdout, " parity=%s reversing=%s", g.Parity, g.ColorReversing)
		}
		fmt.Fprintln(stdout)
	}

	return nil
}

func runExpand(args []string, stdout io.Writer) error {
	fs := newFlagSet("expand", stdout)
	name := fs.String("group", "p1", "wallpaper group id")
	n := fs.Int("n", 1, "first frequency")
	m := fs.Int("m", 0, "second frequency")
	r := fs.Float64("r", 1, "amplitude")
	theta := fs.Float64("theta", 0, "phase in radians")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := wallpaper.FindGroup(*name)
	if err != nil {
		return err
	}
	for _, t := range wallpaper.Expand(g, series.NewTerm(*n, *m, *r, *theta)) {
		fmt.Fprintf(stdout, "%s r=%+.4f θ=%.4f\n", t.Freq, t.Coef.R, t.Coef.Theta)
	}

	return nil
}

func runGrid(args []string, stdout io.Writer, logger *slog.Logger) error {
	fs := newFlagSet("grid", stdout)
	option := fs.String("option", "p1", "rosette group option id")
	folds := fs.Int("folds", 5, "rotation folds k")
	size := fs.Int("size", 7, "grid size")
	orbits := fs.Bool("orbits", false, "also print how many cell groups an edit links")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opt, err := rosette.FindOption(*option)
	if err != nil {
		return err
	}
	rules, err := opt.Rules(*folds)
	if err != nil {
		return err
	}
	sym, err := rosette.New(*size, rules, rosette.WithLogger(logger))
	if err != nil {
		return err
	}

	for row := 0; row < *size; row++ {
		labels := make([]string, *size)
		for col := 0; col < *size; col++ {
			idx := grid.Indices{Row: row, Col: col}
			editable, err := sym.IsEditable(idx)
			if err != nil {
				return err
			}
			if !editable {
				labels[col] = fmt.Sprintf("%9s", "--")
				continue
			}
			f, err := sym.FrequencyMap(idx)
			if err != nil {
				return err
			}
			labels[col] = fmt.Sprintf("%9s", f)
		}
		fmt.Fprintln(stdout, strings.Join(labels, ""))
	}
	if *orbits {
		linked, err := sym.Orbits()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "orbits: %d\n", len(linked))
	}

	return nil
}

// session is a loaded config bound to its engine.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	// frequency map and update function of the active engine
	label  func(grid.Indices) (string, bool, error)
	update func([]polar.Polar, int, polar.Polar) error
	terms  func([]polar.Polar) (series.Series, error)
	group  *wallpaper.Group
}

func loadSession(path string, stderr io.Writer) (*session, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	s := &session{cfg: cfg, logger: logger}

	switch cfg.Kind {
	case config.Rosette:
		rules, err := cfg.Rules()
		if err != nil {
			return nil, err
		}
		sym, err := rosette.New(cfg.GridSize, rules, rosette.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		s.label = func(idx grid.Indices) (string, bool, error) {
			ok, err := sym.IsEditable(idx)
			if err != nil || !ok {
				return "", false, err
			}
			f, err := sym.FrequencyMap(idx)
			return f.String(), true, err
		}
		s.update = sym.UpdateCoefficients
		s.terms = sym.Terms
	case config.Wallpaper:
		g, err := wallpaper.FindGroup(cfg.Group)
		if err != nil {
			return nil, err
		}
		ed, err := wallpaper.NewEditor(cfg.GridSize, g, wallpaper.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		s.group = g
		s.label = func(idx grid.Indices) (string, bool, error) {
			ok, err := ed.IsEditable(idx)
			if err != nil || !ok {
				return "", false, err
			}
			f, err := ed.FrequencyMap(idx)
			return f.String(), true, err
		}
		s.update = ed.UpdateCoefficients
		s.terms = ed.Terms
	}

	return s, nil
}

// cellIndex finds the editable cell labelled with the frequencies of t.
func (s *session) cellIndex(t series.Term) (int, bool, error) {
	size := s.cfg.GridSize
	want := t.Freq.String()
	for i := 0; i < size*size; i++ {
		idx, err := grid.ToIndices2D(i, size)
		if err != nil {
			return 0, false, err
		}
		label, ok, err := s.label(idx)
		if err != nil {
			return 0, false, err
		}
		if ok && label == want {
			return i, true, nil
		}
	}

	return 0, false, nil
}

// apply edits every session term into a fresh grid and returns the result.
func (s *session) apply() (series.Series, error) {
	size := s.cfg.GridSize
	coeffs := make([]polar.Polar, size*size)
	for _, t := range s.cfg.Series().Terms {
		index, ok, err := s.cellIndex(t)
		if err != nil {
			return series.Series{}, err
		}
		if !ok {
			s.logger.Warn("term not on grid, skipped", slog.String("freq", t.Freq.String()))
			continue
		}
		if err := s.update(coeffs, index, t.Coef); err != nil {
			return series.Series{}, err
		}
	}

	return s.terms(coeffs)
}

func runEdit(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("edit", stdout)
	path := fs.String("config", "", "session file (.toml, .yaml)")
	maxTerms := fs.Int("uniforms", 0, "also pack the result for a shader with this many slots")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("%w: edit needs -config", errUsage)
	}

	s, err := loadSession(*path, stderr)
	if err != nil {
		return err
	}
	out, err := s.apply()
	if err != nil {
		return err
	}
	for _, t := range out.Terms {
		fmt.Fprintf(stdout, "%s r=%+.4f θ=%.4f\n", t.Freq, t.Coef.R, t.Coef.Theta)
	}

	if *maxTerms > 0 {
		if s.group != nil {
			b, err := uniforms.PackWallpaper(s.group, out, *maxTerms)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "uniforms: %d terms, lattice %v, reversing %d, parity %d\n",
				b.Count, b.Lattice, b.ColorReversing, b.Parity)
			return nil
		}
		b, err := uniforms.Pack(out, *maxTerms)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "uniforms: %d terms\n", b.Count)
	}

	return nil
}
