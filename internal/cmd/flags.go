package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ezerfernandes/mdcallout/internal/config"
)

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
}

func configFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.config, "config", "c", config.DefaultFile, "configuration file")
}

func typeFlag(flags *pflag.FlagSet, opts *options) {
	flags.StringSliceVarP(&opts.types, "type", "t", []string{"*"}, "block type glob patterns")
}
