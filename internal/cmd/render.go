package cmd

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezerfernandes/mdcallout/internal/render"
)

func renderCmd(_ *options) *cobra.Command {
	var (
		page      bool
		output    string
		noHeading bool
		scripts   bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "render [flags] [filename]",
		Short: "Compile a markdown document into HTML",
		Long:  renderHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, source(args))
			if err != nil {
				return err
			}

			var ropts []render.Option
			if noHeading {
				ropts = append(ropts, render.WithoutHeadingIDs())
			}

			if scripts {
				ropts = append(ropts, render.WithScripts())
			}

			var body bytes.Buffer

			doc, err := render.New(ropts...).Compile(src, &body)
			if err != nil {
				return err
			}

			result := body.Bytes()

			if page {
				var buff bytes.Buffer
				if err := render.Page(&buff, doc, result); err != nil {
					return err
				}

				result = buff.Bytes()
			}

			if len(output) != 0 {
				return os.WriteFile(output, result, fileMode)
			}

			_, err = cmd.OutOrStdout().Write(result)

			return err
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&page, "page", false, "wrap the result in a complete HTML page")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file instead of standard output")
	cmd.Flags().BoolVar(&noHeading, "no-heading-ids", false, "don't generate heading ids")
	cmd.Flags().BoolVar(&scripts, "scripts", false, "keep script elements")

	return cmd
}
