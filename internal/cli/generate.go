package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/example/propgen/internal/config"
	"github.com/example/propgen/internal/propgen"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [preset]",
		Short: "Print property declarations for a preset",
		Long: `Print C# property declarations (backing field, PropertyOrder annotation,
optional Category annotation and accessor) for one of the built-in presets.
The output goes to stdout and is meant to be pasted into a DbTool entry class.

Field types: int, string, TypeEnum, SexEnum (bare names are int)

Examples:
  propgen generate
  propgen generate drops --start 9
  propgen generate start --group Position
  propgen generate --fields "number,name:string,sex:SexEnum" --start 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd, args)
			if err != nil {
				return err
			}

			preset, err := cfg.Resolve()
			if err != nil {
				return err
			}

			gen, err := propgen.NewGenerator(newLogger(cmd.ErrOrStderr(), cfg.Verbose))
			if err != nil {
				return err
			}
			if err := gen.GeneratePreset(cmd.OutOrStdout(), preset); err != nil {
				return fmt.Errorf("failed to generate %s: %w", preset.Name, err)
			}
			return nil
		},
	}

	cmd.Flags().Int("start", 0, "Order of the first property (defaults to the preset's)")
	cmd.Flags().String("group", "", "Category label added to every property")
	cmd.Flags().Bool("infer", false, "Use declared field types instead of forcing int")
	cmd.Flags().String("fields", "", "Field list replacing the preset's (e.g., 'number,name:string')")
	cmd.Flags().BoolP("verbose", "v", false, "Log each rendered declaration to stderr")

	return cmd
}

// configFromFlags builds a run configuration; only flags set on the command
// line override the preset.
func configFromFlags(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if len(args) > 0 {
		cfg.Preset = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		start, err := flags.GetInt("start")
		if err != nil {
			return nil, err
		}
		cfg.StartOrder = &start
	}
	if flags.Changed("group") {
		group, err := flags.GetString("group")
		if err != nil {
			return nil, err
		}
		cfg.GroupLabel = &group
	}
	if flags.Changed("infer") {
		infer, err := flags.GetBool("infer")
		if err != nil {
			return nil, err
		}
		cfg.InferType = &infer
	}
	fields, err := flags.GetString("fields")
	if err != nil {
		return nil, err
	}
	cfg.Fields = fields
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	cfg.Verbose = verbose

	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
