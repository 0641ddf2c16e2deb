package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var converter = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ToHTML converts a markdown document into an HTML fragment.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("converting markdown to html: %w", err)
	}
	return buf.String(), nil
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body style="font-family: sans-serif; max-width: 48rem; margin: auto">
{{if .Style}}<div style="background: {{.Style.Background}}; color: {{.Style.Text}}; border: 2px solid {{.Style.Border}}; padding: 1rem">
{{.Body}}</div>{{else}}{{.Body}}{{end}}
</body>
</html>
`))

// ReportHTML renders r as a standalone HTML page, framed with the colors of
// its interpretation band.
func ReportHTML(r *Report) (string, error) {
	body, err := ToHTML(RenderReport(r))
	if err != nil {
		return "", err
	}
	data := struct {
		Title string
		Style any
		Body  template.HTML
	}{
		Title: "Calculadora de Tasa de Rendimiento",
		Body:  template.HTML(body),
	}
	if r.Valid {
		data.Style = r.Interpretation.Style
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering html page: %w", err)
	}
	return buf.String(), nil
}
