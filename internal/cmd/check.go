package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezerfernandes/mdcallout/internal/callout"
)

func checkCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "check [flags] [filename...]",
		Short: "Report fences that are passed through as text",
		Long:  checkHelp,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}

			var count int

			for _, filename := range args {
				src, err := readSource(cmd, filename)
				if err != nil {
					return err
				}

				for _, issue := range callout.Check(string(src)) {
					count++

					fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %v: %s\n", filename, issue.Line, issue.Err, issue.Text)
				}
			}

			if count > 0 {
				return fmt.Errorf("%d issue(s) found", count)
			}

			opts.status("no issues found\n")

			return nil
		},

		DisableAutoGenTag: true,
	}

	return cmd
}
