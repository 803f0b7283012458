package callout

import "strings"

// Rewriter replaces custom blocks with their HTML wrapper.
type Rewriter struct {
	padding bool
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithPadding surrounds a non-empty body with empty lines. CommonMark ends an
// HTML block at the first empty line, so padding lets a downstream compiler
// render the body as markdown instead of raw HTML.
func WithPadding() Option {
	return func(r *Rewriter) {
		r.padding = true
	}
}

// New returns a Rewriter configured with opts.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var plain = New()

// Rewrite replaces every valid custom block in document with a
// <div class="custom-block TYPE"> wrapper, an optional escaped title paragraph
// and the untouched body. Anything else, including unknown types and
// unterminated blocks, is returned unchanged.
func Rewrite(document string) string {
	return plain.Rewrite(document)
}

// Rewrite applies the rewriter to document. It never fails.
func (r *Rewriter) Rewrite(document string) string {
	out := &writer{padding: r.padding}
	out.buff.Grow(len(document))

	_ = scan(document, out)

	return out.buff.String()
}

type writer struct {
	buff    strings.Builder
	padding bool
}

func (w *writer) text(ln line) {
	w.buff.WriteString(ln.text)
	w.buff.WriteString(ln.eol)
}

func (w *writer) issue(Issue) {}

func (w *writer) block(b *Block, open, end line, body []line) error {
	eol := open.eol

	w.buff.WriteString(`<div class="custom-block `)
	w.buff.WriteString(string(b.Type))
	w.buff.WriteString(`">`)
	w.buff.WriteString(eol)

	if len(b.Title) != 0 {
		w.buff.WriteString(`<p class="custom-block-title">`)
		w.buff.WriteString(EscapeHTML(b.Title))
		w.buff.WriteString(`</p>`)
		w.buff.WriteString(eol)
	}

	pad := w.padding && len(body) != 0
	if pad {
		w.buff.WriteString(eol)
	}

	for _, ln := range body {
		w.text(ln)
	}

	if pad {
		w.buff.WriteString(eol)
	}

	w.buff.WriteString(`</div>`)
	w.buff.WriteString(end.eol)

	return nil
}

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// EscapeHTML escapes the characters that are significant in HTML text and
// attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
