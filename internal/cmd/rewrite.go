package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezerfernandes/mdcallout/internal/callout"
)

func rewriteCmd(opts *options) *cobra.Command {
	var write bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "rewrite [flags] [filename] [-- command]",
		Aliases: []string{"r"},
		Short:   "Rewrite custom blocks into HTML wrappers",
		Long:    rewriteHelp,
		Args:    checkargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, args := script(cmd, args)
			if cmd.ArgsLenAtDash() >= 0 && len(scr) == 0 {
				return errMissingCommand
			}

			filename := source(args)

			src, err := readSource(cmd, filename)
			if err != nil {
				return err
			}

			result := callout.Rewrite(string(src))

			if write {
				if filename == stdinName {
					return errWriteStdin
				}

				if result == string(src) {
					opts.status("%s: unchanged\n", filename)

					return nil
				}

				opts.status("%s: rewritten\n", filename)

				return os.WriteFile(filename, []byte(result), fileMode)
			}

			if len(scr) == 0 {
				_, err = io.WriteString(cmd.OutOrStdout(), result)

				return err
			}

			exitCode, err := runCommand(cmd.Context(), scr, ".", strings.NewReader(result), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if exitCode != 0 {
				return fmt.Errorf("command exited with %d", exitCode)
			}

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back into the file")

	return cmd
}

var errWriteStdin = errors.New("--write requires a filename")
