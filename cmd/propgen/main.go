package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/propgen/internal/cli"
	"github.com/example/propgen/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "propgen",
		Short:   "propgen - property declaration generator for DbTool entries",
		Version: version.String(),
		Long: `propgen prints C# property declarations for DbTool entry classes.
Paste the output into the entry class and adjust by hand.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.PresetsCmd())
	rootCmd.AddCommand(cli.TypesCmd())

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
