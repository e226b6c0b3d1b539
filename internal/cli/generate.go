package cli

import (
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/multigrid/config"
	"github.com/katalvlaran/multigrid/export"
	"github.com/katalvlaran/multigrid/filter"
	"github.com/katalvlaran/multigrid/multigrid"
)

// GenerateOptions holds flags for the generate command. Flags that are set
// override the matching config file values.
type GenerateOptions struct {
	*RootOptions
	ConfigPath    string
	Kind          string
	Dims          int
	Symmetry      int
	IndexRange    int
	Offsets       []float64
	UniformOffset float64
	RandomOffsets bool
	Seed          int64
	Workers       int
	MaxCells      int
	MaxRadius     float64
	Output        string
	CellsFormat   string

	// RunID overrides the generated run id (for testing).
	// If empty, a UUIDv7 is used.
	RunID string
}

// RunSummary is the report printed after a successful generate run.
type RunSummary struct {
	RunID        string `json:"run_id"`
	Kind         string `json:"kind"`
	Families     int    `json:"families"`
	RealDims     int    `json:"real_dims"`
	IndexRange   int    `json:"index_range"`
	Combinations int    `json:"combinations"`
	Degenerate   int    `json:"degenerate"`
	Generated    int    `json:"generated"`
	Kept         int    `json:"kept"`
	Output       string `json:"output"`
	CellsFormat  string `json:"cells_format"`
	ElapsedMS    int64  `json:"elapsed_ms"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tiling and write its cells",
		Long: `Generate the dual tiling of a basis and write every cell's vertices.

Settings come from an optional YAML file (--config); flags override it.
Without --output the cells go to stdout and the report to stderr.

Example:
  multigrid generate --kind penrose --range 4 --max-radius 4 -o penrose.txt
  multigrid generate -c tiling.yaml --cells-format jsonl --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML run configuration")
	f.StringVar(&opts.Kind, "kind", "", "basis preset (cubic|rotsym|penrose|custom)")
	f.IntVar(&opts.Dims, "dims", 0, "dimension of the cubic preset")
	f.IntVar(&opts.Symmetry, "symmetry", 0, "rotational order of the rotsym preset")
	f.IntVarP(&opts.IndexRange, "range", "n", 0, "hyperplane index range [-n, n] per family")
	f.Float64SliceVar(&opts.Offsets, "offsets", nil, "explicit per-family offsets")
	f.Float64Var(&opts.UniformOffset, "uniform-offset", 0, "same offset on every family")
	f.BoolVar(&opts.RandomOffsets, "random-offsets", false, "draw offsets uniformly from [0,1)")
	f.Int64Var(&opts.Seed, "seed", 0, "seed for --random-offsets")
	f.IntVar(&opts.Workers, "workers", 0, "goroutines building cells")
	f.IntVar(&opts.MaxCells, "max-cells", 0, "refuse runs that could exceed this many cells")
	f.Float64Var(&opts.MaxRadius, "max-radius", 0, "keep only cells with |index| below this radius")
	f.StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&opts.CellsFormat, "cells-format", "", "cell encoding (numpy|jsonl)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	applyFlags(cmd.Flags(), opts, cfg)
	if err := config.Validate(cfg); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	format, err := cfg.Format()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid cells format", err)
	}
	b, err := cfg.BuildBasis()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build basis", err)
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.Must(uuid.NewV7()).String()
	}
	logger := opts.newLogger(cmd.ErrOrStderr()).With("run_id", runID)
	logger.Info("generating",
		"kind", cfg.Basis.Kind,
		"families", b.IndexDims(),
		"real_dims", b.RealDims(),
		"range", cfg.Generate.IndexRange,
		"bound", multigrid.ExpectedCells(b.IndexDims(), b.RealDims(), cfg.Generate.IndexRange),
	)

	start := time.Now()
	res, err := multigrid.Generate(b, cfg.Generate.IndexRange, cfg.GenerateOptions(logger)...)
	if errors.Is(err, multigrid.ErrTooManyCells) {
		return WrapExitError(ExitFailure, "refusing run (raise --max-cells)", err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "generation failed", err)
	}

	cells := res.Cells
	if cfg.Filter.MaxRadius > 0 {
		cells = filter.ByRadius(cells, cfg.Filter.MaxRadius)
		logger.Debug("filtered", "max_radius", cfg.Filter.MaxRadius, "kept", len(cells))
	}

	toStdout := cfg.Output.Path == "" || cfg.Output.Path == "-"
	if toStdout {
		err = export.Write(cmd.OutOrStdout(), format, cells)
	} else {
		err = export.WriteFile(cfg.Output.Path, format, cells)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "failed to write cells", err)
	}

	summary := RunSummary{
		RunID:        runID,
		Kind:         cfg.Basis.Kind,
		Families:     b.IndexDims(),
		RealDims:     b.RealDims(),
		IndexRange:   cfg.Generate.IndexRange,
		Combinations: res.Stats.Combinations,
		Degenerate:   res.Stats.Degenerate,
		Generated:    res.Stats.Cells,
		Kept:         len(cells),
		Output:       "stdout",
		CellsFormat:  string(format),
		ElapsedMS:    time.Since(start).Milliseconds(),
	}
	if !toStdout {
		summary.Output = cfg.Output.Path
	}
	logger.Info("done", "cells", summary.Kept, "elapsed_ms", summary.ElapsedMS)

	reportW := cmd.OutOrStdout()
	if toStdout {
		reportW = cmd.ErrOrStderr()
	}
	out := &OutputFormatter{Format: opts.Format, Writer: reportW}
	return out.Success(summary, summary.writeText)
}

// writeText renders the summary with grouped digits.
func (s RunSummary) writeText(w io.Writer) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w,
		"run       %s\nbasis     %s (I=%d, R=%d)\nrange     %d\ncells     %d generated, %d kept\nskipped   %d of %d combinations\noutput    %s (%s)\n",
		s.RunID, s.Kind, s.Families, s.RealDims, s.IndexRange,
		s.Generated, s.Kept, s.Degenerate, s.Combinations, s.Output, s.CellsFormat)
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFlags copies every explicitly set flag into cfg.
func applyFlags(fs *pflag.FlagSet, opts *GenerateOptions, cfg *config.Config) {
	set := fs.Changed
	if set("kind") {
		cfg.Basis.Kind = opts.Kind
	}
	if set("dims") {
		cfg.Basis.Dims = opts.Dims
	}
	if set("symmetry") {
		cfg.Basis.Symmetry = opts.Symmetry
	}
	if set("range") {
		cfg.Generate.IndexRange = opts.IndexRange
	}
	if set("offsets") {
		cfg.Basis.Offsets = opts.Offsets
	}
	if set("uniform-offset") {
		v := opts.UniformOffset
		cfg.Basis.UniformOffset = &v
	}
	if set("random-offsets") {
		cfg.Basis.RandomOffsets = opts.RandomOffsets
	}
	if set("seed") {
		cfg.Basis.Seed = opts.Seed
	}
	if set("workers") {
		cfg.Generate.Workers = opts.Workers
	}
	if set("max-cells") {
		cfg.Generate.MaxCells = opts.MaxCells
	}
	if set("max-radius") {
		cfg.Filter.MaxRadius = opts.MaxRadius
	}
	if set("output") {
		cfg.Output.Path = opts.Output
	}
	if set("cells-format") {
		cfg.Output.Format = opts.CellsFormat
		if f, err := export.ParseFormat(opts.CellsFormat); err == nil {
			cfg.Output.Format = string(f)
		}
	}
}
