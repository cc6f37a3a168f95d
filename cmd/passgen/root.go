package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

type generateFlags struct {
	length      int
	count       int
	noLowercase bool
	noUppercase bool
	noDigits    bool
	noSymbols   bool
	exclude     string
	quiet       bool
}

func newRootCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate secure random passwords",
		Long: `passgen generates cryptographically secure random passwords.

Examples:
  passgen                 generate a 12-character password
  passgen -l 16           generate a 16-character password
  passgen -c 5            generate 5 passwords
  passgen --no-symbols    generate without symbols
  passgen -e "0O1l"       exclude confusing characters
  passgen check <pw>      evaluate the strength of a password`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	cmd.Flags().IntVarP(&f.length, "length", "l", 12, "password length")
	cmd.Flags().IntVarP(&f.count, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&f.noLowercase, "no-lowercase", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&f.noUppercase, "no-uppercase", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&f.noDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&f.noSymbols, "no-symbols", false, "exclude symbols")
	cmd.Flags().StringVarP(&f.exclude, "exclude", "e", "", "characters to exclude from passwords")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "only output the password(s)")

	cmd.AddCommand(newCheckCmd())

	return cmd
}

func runGenerate(cmd *cobra.Command, f generateFlags) error {
	svc := service.NewGeneratorService()

	resp, err := svc.Generate(model.GenerateRequest{
		Length:    f.length,
		Count:     f.count,
		Lowercase: boolPtr(!f.noLowercase),
		Uppercase: boolPtr(!f.noUppercase),
		Digits:    boolPtr(!f.noDigits),
		Symbols:   boolPtr(!f.noSymbols),
		Exclude:   f.exclude,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if f.quiet {
		for _, pw := range resp.Passwords {
			fmt.Fprintln(out, pw)
		}
		return nil
	}

	if resp.Count == 1 {
		fmt.Fprintf(out, "Generated password: %s\n", resp.Passwords[0])
		return nil
	}

	fmt.Fprintf(out, "Generated %d passwords:\n", resp.Count)
	for i, pw := range resp.Passwords {
		fmt.Fprintf(out, "  %d: %s\n", i+1, pw)
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
