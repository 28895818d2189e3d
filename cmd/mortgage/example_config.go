package main

import (
	"fmt"

	"github.com/rpgo/mortgage-calculator/internal/config"
	"github.com/rpgo/mortgage-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example loan input file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_loan.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(example, filename); err != nil {
				return fmt.Errorf("failed to write %s: %w", filename, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", filename)
			return nil
		},
	}
}
