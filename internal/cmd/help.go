package cmd

import _ "embed"

var (
	//go:embed help/root.md
	rootHelp string
	//go:embed help/rewrite.md
	rewriteHelp string
	//go:embed help/render.md
	renderHelp string
	//go:embed help/list.md
	listHelp string
	//go:embed help/check.md
	checkHelp string
	//go:embed help/build.md
	buildHelp string
	//go:embed help/serve.md
	serveHelp string
)
