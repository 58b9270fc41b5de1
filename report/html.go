package report

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"loan-amortizer/domain"
)

//go:embed templates
var templateFS embed.FS

var (
	styleSheet   = mustRead("templates/styles.css")
	htmlTemplate = template.Must(template.ParseFS(templateFS, "templates/summary.html"))
)

type htmlCell struct {
	Label string
	Value string
}

type htmlView struct {
	Style template.CSS
	Rows  [][]htmlCell
}

func mustRead(name string) string {
	b, err := templateFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// WriteHTML renders the summary as an HTML fragment with inline styles.
// Header and value rows alternate, four columns at a time.
func WriteHTML(w io.Writer, s domain.Summary) error {
	lines := append(summaryLines(s), interestOnlyLines(s)...)
	view := htmlView{Style: template.CSS(styleSheet)}
	for start := 0; start < len(lines); start += 4 {
		end := min(start+4, len(lines))
		row := make([]htmlCell, 0, end-start)
		for _, l := range lines[start:end] {
			row = append(row, htmlCell{Label: l.label, Value: l.value})
		}
		view.Rows = append(view.Rows, row)
	}
	return htmlTemplate.Execute(w, view)
}

func HTML(s domain.Summary) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}
