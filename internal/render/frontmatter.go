package render

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document holds the metadata of a compiled markdown file.
type Document struct {
	Title       string
	Frontmatter map[string]interface{}

	body string
}

// splitFrontmatter separates YAML frontmatter between leading --- lines from
// the markdown body. Missing, unclosed or invalid frontmatter leaves the whole
// source as body.
func splitFrontmatter(source []byte) *Document {
	const delim = "---"

	doc := &Document{body: string(source)}

	trimmed := bytes.TrimLeft(source, "\n\r")
	if bytes.HasPrefix(trimmed, []byte(delim)) {
		rest := trimmed[len(delim):]

		if idx := bytes.Index(rest, []byte("\n"+delim)); idx >= 0 {
			var fm map[string]interface{}

			if err := yaml.Unmarshal(rest[:idx], &fm); err == nil {
				doc.Frontmatter = fm
				doc.body = strings.TrimLeft(string(rest[idx+1+len(delim):]), "\n\r")
			}
		}
	}

	doc.Title = deriveTitle(doc.Frontmatter, doc.body)

	return doc
}

func deriveTitle(fm map[string]interface{}, body string) string {
	if s, ok := fm["title"].(string); ok && s != "" {
		return s
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}

	return ""
}
