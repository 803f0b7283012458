// Package render compiles markdown documents containing custom blocks into
// HTML with goldmark.
package render

import (
	"bytes"
	"io"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ezerfernandes/mdcallout/internal/callout"
)

var reScript = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)

// Compiler turns markdown into an HTML fragment.
type Compiler struct {
	md        goldmark.Markdown
	rewriter  *callout.Rewriter
	headingID bool
	scripts   bool
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithoutHeadingIDs disables generated id attributes on headings.
func WithoutHeadingIDs() Option {
	return func(c *Compiler) {
		c.headingID = false
	}
}

// WithScripts keeps <script> elements in the compiled output.
func WithScripts() Option {
	return func(c *Compiler) {
		c.scripts = true
	}
}

// New returns a Compiler with GFM extensions, heading ids and raw HTML
// pass-through enabled.
func New(opts ...Option) *Compiler {
	c := &Compiler{headingID: true, rewriter: callout.New(callout.WithPadding())}

	for _, opt := range opts {
		opt(c)
	}

	var parserOpts []parser.Option
	if c.headingID {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	c.md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	return c
}

// Compile writes the HTML rendering of source to w and returns the document
// metadata found in its frontmatter.
func (c *Compiler) Compile(source []byte, w io.Writer) (*Document, error) {
	doc := splitFrontmatter(source)
	body := c.rewriter.Rewrite(doc.body)

	var buff bytes.Buffer
	if err := c.md.Convert([]byte(body), &buff); err != nil {
		return nil, err
	}

	out := buff.Bytes()
	if !c.scripts {
		out = reScript.ReplaceAll(out, nil)
	}

	if _, err := w.Write(out); err != nil {
		return nil, err
	}

	return doc, nil
}
