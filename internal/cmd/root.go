// Package cmd implements the mdcallout command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	fileMode = 0o644

	stdinName = "-"
)

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet  bool
	config string
	types  []string
	filter filterFunc
	status statusFunc
}

func (opts *options) createStatus(w io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

func rootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "mdcallout",
		Short: "Rewrite :::type custom blocks in markdown documents",
		Long:  rootHelp,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.createStatus(cmd.ErrOrStderr())
		},

		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	quietFlag(root, opts)

	root.AddCommand(
		rewriteCmd(opts),
		renderCmd(opts),
		listCmd(opts),
		checkCmd(opts),
		buildCmd(opts),
		serveCmd(opts),
	)

	return root
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := rootCmd(&options{}) //nolint:exhaustruct

	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

// Execute runs the command line with args and exits with a non-zero status on
// failure.
func Execute(args []string, stdout, stderr io.Writer) {
	if err := run(args, os.Stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "mdcallout: %v\n", err)
		os.Exit(1)
	}
}

func checkargs(cmd *cobra.Command, args []string) error {
	n := len(args)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		n = dash
	}

	if n > 1 {
		return fmt.Errorf("accepts at most 1 arg(s), received %d", n)
	}

	return nil
}

func source(args []string) string {
	if len(args) == 0 {
		return stdinName
	}

	return args[0]
}

func readSource(cmd *cobra.Command, filename string) ([]byte, error) {
	if filename == stdinName {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(filename)
}
