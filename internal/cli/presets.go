package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/multigrid/builder"
	"github.com/katalvlaran/multigrid/config"
)

// PresetInfo describes one basis kind with its default parameters.
type PresetInfo struct {
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Families    int       `json:"families"`
	RealDims    int       `json:"real_dims"`
	Offsets     []float64 `json:"offsets"`
}

// NewPresetsCommand creates the presets command.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	var symmetry, dims int

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in basis presets",
		Long: `List the basis kinds accepted by --kind and basis.kind, with the family
count and default offsets each one produces.

Example:
  multigrid presets
  multigrid presets --symmetry 8 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := listPresets(dims, symmetry)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid preset parameters", err)
			}
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return out.Success(infos, func(w io.Writer) error {
				return writePresetsText(w, infos)
			})
		},
	}

	cmd.Flags().IntVar(&dims, "dims", config.DefaultDims, "dimension shown for cubic")
	cmd.Flags().IntVar(&symmetry, "symmetry", config.DefaultSymmetry, "rotational order shown for rotsym")

	return cmd
}

func listPresets(dims, symmetry int) ([]PresetInfo, error) {
	cubic, err := builder.Cubic(dims)
	if err != nil {
		return nil, err
	}
	rot, err := builder.RotSym(symmetry)
	if err != nil {
		return nil, err
	}
	pen, err := builder.Penrose()
	if err != nil {
		return nil, err
	}

	return []PresetInfo{
		{
			Kind:        config.KindCubic,
			Description: fmt.Sprintf("standard basis of R^%d, I = R", dims),
			Families:    cubic.IndexDims(), RealDims: cubic.RealDims(), Offsets: cubic.Offsets(),
		},
		{
			Kind:        config.KindRotSym,
			Description: fmt.Sprintf("%d-fold planar star; even orders drop antipodal directions", symmetry),
			Families:    rot.IndexDims(), RealDims: rot.RealDims(), Offsets: rot.Offsets(),
		},
		{
			Kind:        config.KindPenrose,
			Description: "5-fold pentagrid with offsets constrained to sum to zero",
			Families:    pen.IndexDims(), RealDims: pen.RealDims(), Offsets: pen.Offsets(),
		},
		{
			Kind:        config.KindCustom,
			Description: "directions from basis.directions, offsets default to zero",
		},
	}, nil
}

func writePresetsText(w io.Writer, infos []PresetInfo) error {
	for _, p := range infos {
		dims := "-"
		if p.Families > 0 {
			dims = fmt.Sprintf("I=%d R=%d", p.Families, p.RealDims)
		}
		if _, err := fmt.Fprintf(w, "%-8s %-10s %s\n", p.Kind, dims, p.Description); err != nil {
			return err
		}
	}
	return nil
}
