// SPDX-License-Identifier: MIT
// Package: multigrid/config
//
// config.go: YAML run configuration for the multigrid CLI.
//
// Flow:
//   Load/Parse → yaml.v3 decode (unknown keys rejected) → applyDefaults →
//   Validate (embedded CUE schema + finiteness) → BuildBasis / GenerateOptions.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/multigrid/basis"
	"github.com/katalvlaran/multigrid/builder"
	"github.com/katalvlaran/multigrid/export"
	"github.com/katalvlaran/multigrid/multigrid"
	"github.com/katalvlaran/multigrid/space"
)

// Basis kinds accepted in basis.kind.
const (
	KindCubic   = "cubic"
	KindRotSym  = "rotsym"
	KindPenrose = "penrose"
	KindCustom  = "custom"
)

// Defaults filled in after decoding when a field is left at its zero value.
const (
	DefaultKind       = KindPenrose
	DefaultDims       = 2
	DefaultSymmetry   = builder.PenroseSymmetry
	DefaultIndexRange = 3
	DefaultWorkers    = 1
	DefaultMaxCells   = 1_000_000
)

var (
	// ErrParse indicates the file is not valid YAML or has unknown keys.
	ErrParse = errors.New("config: parse error")
	// ErrInvalid indicates a decoded configuration that violates the schema.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config holds a complete run description.
type Config struct {
	Basis    BasisConfig    `yaml:"basis" json:"basis"`
	Generate GenerateConfig `yaml:"generate" json:"generate"`
	Filter   FilterConfig   `yaml:"filter,omitempty" json:"filter"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// BasisConfig selects a preset and its offsets. Dims is read by cubic,
// Symmetry by rotsym and Directions by custom.
type BasisConfig struct {
	Kind          string      `yaml:"kind" json:"kind"`
	Dims          int         `yaml:"dims,omitempty" json:"dims"`
	Symmetry      int         `yaml:"symmetry,omitempty" json:"symmetry"`
	Directions    [][]float64 `yaml:"directions,omitempty" json:"directions,omitempty"`
	Offsets       []float64   `yaml:"offsets,omitempty" json:"offsets,omitempty"`
	UniformOffset *float64    `yaml:"uniform_offset,omitempty" json:"uniform_offset,omitempty"`
	RandomOffsets bool        `yaml:"random_offsets,omitempty" json:"random_offsets,omitempty"`
	Seed          int64       `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// GenerateConfig mirrors the multigrid.Generate options. Zero values are
// replaced by defaults, so index_range 0 must be requested on the command line.
type GenerateConfig struct {
	IndexRange  int     `yaml:"index_range" json:"index_range"`
	Workers     int     `yaml:"workers" json:"workers"`
	ChunkSize   int     `yaml:"chunk_size" json:"chunk_size"`
	SingularTol float64 `yaml:"singular_tol" json:"singular_tol"`
	MaxCells    int     `yaml:"max_cells" json:"max_cells"`
}

// FilterConfig is applied after generation. MaxRadius 0 keeps every cell.
type FilterConfig struct {
	MaxRadius float64 `yaml:"max_radius,omitempty" json:"max_radius,omitempty"`
}

// OutputConfig names the destination. An empty path means stdout.
type OutputConfig struct {
	Path   string `yaml:"path,omitempty" json:"path,omitempty"`
	Format string `yaml:"format" json:"format"`
}

// Default returns the configuration used when no file is given: a Penrose
// pentagrid with index range 3 written as numpy text to stdout.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	cfg.applyDefaults()
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return out, nil
}

// applyDefaults sets defaults if not provided.
func (c *Config) applyDefaults() {
	if c.Basis.Kind == "" {
		c.Basis.Kind = DefaultKind
	}
	if c.Basis.Dims == 0 {
		c.Basis.Dims = DefaultDims
	}
	if c.Basis.Symmetry == 0 {
		c.Basis.Symmetry = DefaultSymmetry
	}
	if c.Generate.IndexRange == 0 {
		c.Generate.IndexRange = DefaultIndexRange
	}
	if c.Generate.Workers == 0 {
		c.Generate.Workers = DefaultWorkers
	}
	if c.Generate.ChunkSize == 0 {
		c.Generate.ChunkSize = multigrid.DefaultChunkSize
	}
	if c.Generate.SingularTol == 0 {
		c.Generate.SingularTol = multigrid.DefaultSingularTol
	}
	if c.Generate.MaxCells == 0 {
		c.Generate.MaxCells = DefaultMaxCells
	}
	if c.Output.Format == "" {
		c.Output.Format = string(export.FormatNumpy)
	} else if f, err := export.ParseFormat(c.Output.Format); err == nil {
		c.Output.Format = string(f)
	}
}

// Validate checks cfg against the embedded CUE schema and rejects
// non-finite numbers, which the schema cannot express.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalid)
	}
	if err := checkFinite(cfg); err != nil {
		return err
	}

	return validateSchema(cfg)
}

func checkFinite(cfg *Config) error {
	bad := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
	for _, v := range cfg.Basis.Offsets {
		if bad(v) {
			return fmt.Errorf("%w: basis.offsets: non-finite value", ErrInvalid)
		}
	}
	for _, d := range cfg.Basis.Directions {
		for _, v := range d {
			if bad(v) {
				return fmt.Errorf("%w: basis.directions: non-finite value", ErrInvalid)
			}
		}
	}
	if cfg.Basis.UniformOffset != nil && bad(*cfg.Basis.UniformOffset) {
		return fmt.Errorf("%w: basis.uniform_offset: non-finite value", ErrInvalid)
	}
	if bad(cfg.Generate.SingularTol) || bad(cfg.Filter.MaxRadius) {
		return fmt.Errorf("%w: non-finite tolerance or radius", ErrInvalid)
	}

	return nil
}

// BuildBasis builds the configured basis.
func (c *Config) BuildBasis() (*basis.Linear, error) {
	var opts []builder.BuilderOption
	if len(c.Basis.Offsets) > 0 {
		opts = append(opts, builder.WithOffsets(c.Basis.Offsets))
	}
	if c.Basis.UniformOffset != nil {
		opts = append(opts, builder.WithUniformOffset(*c.Basis.UniformOffset))
	}
	if c.Basis.RandomOffsets {
		opts = append(opts, builder.WithRandomOffsets(), builder.WithSeed(c.Basis.Seed))
	}

	switch c.Basis.Kind {
	case KindCubic:
		return builder.Cubic(c.Basis.Dims, opts...)
	case KindRotSym:
		return builder.RotSym(c.Basis.Symmetry, opts...)
	case KindPenrose:
		return builder.Penrose(opts...)
	case KindCustom:
		dirs := make([]space.RealSpace, len(c.Basis.Directions))
		for i, d := range c.Basis.Directions {
			dirs[i] = space.RealSpace(d)
		}
		return builder.Custom(dirs, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown basis kind %q", ErrInvalid, c.Basis.Kind)
	}
}

// GenerateOptions translates the generate section into multigrid options.
// logger may be nil.
func (c *Config) GenerateOptions(logger *slog.Logger) []multigrid.Option {
	opts := []multigrid.Option{
		multigrid.WithWorkers(c.Generate.Workers),
		multigrid.WithChunkSize(c.Generate.ChunkSize),
		multigrid.WithSingularTol(c.Generate.SingularTol),
	}
	if c.Generate.MaxCells > 0 {
		opts = append(opts, multigrid.WithMaxCells(c.Generate.MaxCells))
	}
	if logger != nil {
		opts = append(opts, multigrid.WithLogger(logger))
	}

	return opts
}

// Format returns the parsed output format.
func (c *Config) Format() (export.Format, error) {
	return export.ParseFormat(c.Output.Format)
}
