package document

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const htmlPage = `<!DOCTYPE html>
<html lang="pt">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 860px; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.6; }
img { max-width: 100%%; border: 1px solid #ddd; }
blockquote { border-left: 3px solid #888; margin-left: 0; padding-left: 1rem; color: #555; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders the assembled markdown digest as a standalone HTML page.
func HTML(title, markdown string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	return fmt.Sprintf(htmlPage, title, buf.String()), nil
}
