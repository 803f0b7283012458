package render

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Page writes a complete HTML page around body, an HTML fragment produced by
// Compile.
func Page(w io.Writer, doc *Document, body []byte) error {
	var title string
	if doc != nil {
		title = doc.Title
	}

	return pageTemplate.Execute(w, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(body), //nolint:gosec
	})
}
