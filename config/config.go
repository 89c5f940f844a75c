// Package config loads symtool session files. A session names the
// symmetry to enforce, the grid it lives on and the terms to apply, in
// TOML or YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symmetry/rosette"
	"github.com/katalvlaran/symmetry/series"
	"github.com/katalvlaran/symmetry/wallpaper"
)

var (
	// ErrUnknownFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")
	// ErrBadConfig indicates a session that fails validation.
	ErrBadConfig = errors.New("config: invalid configuration")
)

// Kind selects the symmetry engine.
type Kind string

const (
	Rosette   Kind = "rosette"
	Wallpaper Kind = "wallpaper"
)

// Format is a serialization format.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Choice is the output side picked for one constraint of a rosette option.
type Choice struct {
	OutputRotations  int  `toml:"output_rotations" yaml:"output_rotations"`
	OutputReflection bool `toml:"output_reflection" yaml:"output_reflection"`
}

// Term is one edit: the frequencies and the polar coefficient.
type Term struct {
	N     int     `toml:"n" yaml:"n"`
	M     int     `toml:"m" yaml:"m"`
	R     float64 `toml:"r" yaml:"r"`
	Theta float64 `toml:"theta" yaml:"theta"`
}

// Log configures the command-line logger.
type Log struct {
	Level string `toml:"level" yaml:"level"`
}

// Config is one session.
type Config struct {
	GridSize int      `toml:"grid_size" yaml:"grid_size"`
	Kind     Kind     `toml:"kind" yaml:"kind"`
	Group    string   `toml:"group,omitempty" yaml:"group,omitempty"`
	Option   string   `toml:"option,omitempty" yaml:"option,omitempty"`
	Folds    int      `toml:"folds,omitempty" yaml:"folds,omitempty"`
	Choices  []Choice `toml:"choices,omitempty" yaml:"choices,omitempty"`
	Terms    []Term   `toml:"terms" yaml:"terms"`
	Log      Log      `toml:"log" yaml:"log"`
}

// Default returns a 5-fold rotation on a 15×15 grid with no terms.
func Default() Config {
	return Config{
		GridSize: 15,
		Kind:     Rosette,
		Option:   "p1",
		Folds:    5,
		Group:    "p4",
		Log:      Log{Level: "info"},
	}
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and validates a session file. Fields missing from the file
// keep their Default values.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	c := Default()
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &c)
	case YAML:
		err = yaml.Unmarshal(data, &c)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", format, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Marshal encodes c in the given format.
func (c Config) Marshal(format Format) ([]byte, error) {
	switch format {
	case TOML:
		return toml.Marshal(c)
	case YAML:
		return yaml.Marshal(c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes c to path in the format its extension names.
func (c Config) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := c.Marshal(format)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the grid, the symmetry name for the chosen kind and the
// log level.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: grid_size %d", ErrBadConfig, c.GridSize)
	}
	switch c.Kind {
	case Rosette:
		if _, err := c.Rules(); err != nil {
			return fmt.Errorf("%w: %w", ErrBadConfig, err)
		}
	case Wallpaper:
		if _, err := wallpaper.FindGroup(c.Group); err != nil {
			return fmt.Errorf("%w: %w", ErrBadConfig, err)
		}
	default:
		return fmt.Errorf("%w: kind %q", ErrBadConfig, c.Kind)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return nil
}

// Rules builds the rosette rules of the session's option.
func (c Config) Rules() ([]rosette.Rule, error) {
	opt, err := rosette.FindOption(c.Option)
	if err != nil {
		return nil, err
	}
	choices := make([]rosette.Choice, len(c.Choices))
	for i, ch := range c.Choices {
		choices[i] = rosette.Choice{OutputRotations: ch.OutputRotations, OutputReflection: ch.OutputReflection}
	}

	return opt.Rules(c.Folds, choices...)
}

// Series returns the session terms in order.
func (c Config) Series() series.Series {
	s := series.Series{Terms: make([]series.Term, len(c.Terms))}
	for i, t := range c.Terms {
		s.Terms[i] = series.NewTerm(t.N, t.M, t.R, t.Theta)
	}

	return s
}

// Level parses the log level; an empty level is info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, err
	}

	return l, nil
}
