package cmd

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename]",
		Aliases: []string{"ls"},
		Short:   "List custom blocks",
		Long:    listHelp,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			opts.filter, err = filter(opts.types)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, source(args))
			if err != nil {
				return err
			}

			blocks, err := walk(src, opts.filter)
			if err != nil {
				return err
			}

			tbl := table.New("Lines", "Type", "Title").WithWriter(cmd.OutOrStdout())

			for _, block := range blocks {
				tbl.AddRow(fmt.Sprintf("%d-%d", block.StartLine, block.EndLine), block.Type, block.Title)
			}

			tbl.Print()

			opts.status("%d block(s)\n", len(blocks))

			return nil
		},

		DisableAutoGenTag: true,
	}

	typeFlag(cmd.Flags(), opts)

	return cmd
}
