package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/strength"
)

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <password>",
		Short: "Evaluate the strength of a password",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			report := strength.Score(args[0])
			out := cmd.OutOrStdout()

			if quiet {
				fmt.Fprintln(out, report.Score)
				return
			}

			fmt.Fprintf(out, "Password: %s\n", args[0])
			fmt.Fprintf(out, "Length: %d\n", report.Length)
			fmt.Fprintf(out, "Has lowercase: %t\n", report.HasLowercase)
			fmt.Fprintf(out, "Has uppercase: %t\n", report.HasUppercase)
			fmt.Fprintf(out, "Has digits: %t\n", report.HasDigits)
			fmt.Fprintf(out, "Has symbols: %t\n", report.HasSymbols)
			fmt.Fprintf(out, "Strength score: %d/100\n", report.Score)
			fmt.Fprintf(out, "Strength: %s\n", strength.Band(report.Score))
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only output the score")

	return cmd
}
