package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/propgen/internal/propgen"
)

// PresetsCmd returns the presets command
func PresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in field presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asYAML, _ := cmd.Flags().GetBool("yaml")
			out := cmd.OutOrStdout()
			presets := propgen.Presets()

			if asYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(presets); err != nil {
					return fmt.Errorf("failed to encode presets: %w", err)
				}
				return enc.Close()
			}

			for _, p := range presets {
				name := color.New(color.FgCyan).Sprint(p.Name)
				if p.Name == propgen.DefaultPreset {
					name += color.New(color.FgHiMagenta).Sprint(" [default]")
				}
				fmt.Fprintf(out, "%s - %s\n", name, p.Description)
				fmt.Fprintf(out, "  fields: %d, start: %d", len(p.Fields), p.StartOrder)
				if p.Options.InferType {
					fmt.Fprint(out, ", typed")
				}
				if p.Options.GroupLabel != "" {
					fmt.Fprintf(out, ", group: %s", p.Options.GroupLabel)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().Bool("yaml", false, "Print preset definitions as YAML")

	return cmd
}

// TypesCmd returns the types command
func TypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List declared types and their default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range propgen.DataTypes() {
				def, err := propgen.DefaultValue(t)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-10s %s\n", t, def)
			}
			return nil
		},
	}
}
