package cmd

import (
	"github.com/gobwas/glob"

	"github.com/ezerfernandes/mdcallout/internal/callout"
)

type filterFunc func(typ callout.Type) bool

func filter(patterns []string) (filterFunc, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return func(typ callout.Type) bool {
		for _, g := range globs {
			if g.Match(string(typ)) {
				return true
			}
		}

		return false
	}, nil
}

func walk(source []byte, filter filterFunc) (callout.Blocks, error) {
	var blocks callout.Blocks

	err := callout.Walk(string(source), func(block *callout.Block) error {
		if filter(block.Type) {
			blocks = append(blocks, block)
		}

		return nil
	})

	return blocks, err
}
