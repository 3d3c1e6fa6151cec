package preview

import (
	"fmt"
	"html/template"
	"io"
	"slices"

	"uplcompare/internal/exporter"
	"uplcompare/pkg/contracts/domain"
)

// KindOption is one entry of the Super Button sheet selector
type KindOption struct {
	Name     string
	Selected bool
}

// Page is everything the guide page shows
type Page struct {
	Title     string
	Intro     string
	Rules     []Rule
	Results   []Result
	Kinds     []KindOption
	ExportURL string
	DummyURL  string
	DummyName string
	FileName  string
}

// PageOptions configures NewPage
type PageOptions struct {
	ExportURL string
	DummyURL  string
	FileName  string
	// Selected preselects sheets in the Super Button form; nil selects all
	Selected []string
}

// NewPage assembles the guide page around the built-in example tables
func NewPage(opts PageOptions) Page {
	if opts.FileName == "" {
		opts.FileName = exporter.DefaultFileName
	}

	kinds := make([]KindOption, 0, len(domain.AllKinds()))
	for _, name := range domain.KindNames() {
		kinds = append(kinds, KindOption{
			Name:     name,
			Selected: opts.Selected == nil || slices.Contains(opts.Selected, name),
		})
	}

	return Page{
		Title:     pageTitle,
		Intro:     introText,
		Rules:     Rules(),
		Results:   Results(),
		Kinds:     kinds,
		ExportURL: opts.ExportURL,
		DummyURL:  opts.DummyURL,
		DummyName: exporter.DummyArchiveName,
		FileName:  opts.FileName,
	}
}

var pageTemplate = template.Must(template.New("guide").Funcs(template.FuncMap{
	"markdown": Markdown,
	"css":      func(s string) template.CSS { return template.CSS(s) },
}).Parse(pageHTML))

// Render writes the guide page as HTML
func Render(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render guide page: %w", err)
	}
	return nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; font-size: 15px; }
.prose { text-align: justify; }
.badge { display: inline-block; padding: 2px 8px; border-radius: 6px; font-weight: 600; font-size: 0.8rem; }
.badge-red { background: #FFD6D6; } .badge-orange { background: #FFE3C2; } .badge-yellow { background: #FFF4B8; }
.badge-green { background: #D4F5D4; } .badge-blue { background: #D6E8FF; } .badge-violet { background: #EAD9FF; }
.legend span { display: inline-block; padding: 2px 8px; border-radius: 6px; font-weight: 600; font-size: 0.75rem; margin-right: 6px; }
table { border-collapse: collapse; margin: 10px 0 25px; }
th, td { border: 1px solid #DDDDDD; padding: 4px 8px; white-space: nowrap; }
th { background: #F3F3F3; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="prose">{{markdown .Intro}}</div>

<h2>Constraint</h2>
{{range .Rules}}
<section>
<p><span class="badge badge-{{.Badge}}">{{.Title}}</span></p>
<div class="prose">{{markdown .Body}}</div>
{{with .Example}}{{template "table" .}}{{end}}
{{with .Note}}<div class="prose">{{markdown .}}</div>{{end}}
</section>
{{end}}

<h2>What is Displayed?</h2>
<p>You can try this menu with the dummy dataset:
<a href="{{.DummyURL}}" download="{{.DummyName}}">Dummy Dataset</a></p>
{{range .Results}}
<section>
<p><span class="badge badge-{{.Badge}}">{{.Title}}</span></p>
<div class="prose">{{markdown .Body}}</div>
{{with .Legend}}<div class="legend">{{range .}}<span style="{{css .Style}}">{{.Label}}</span>{{end}}</div>{{end}}
{{template "table" .Table}}
</section>
{{end}}

<section id="super-button">
<p><span class="badge badge-violet">SUPER BUTTON</span></p>
<div class="prose">Every generated table can be downloaded as a single workbook with one sheet per table, in the order you select.</div>
<form method="get" action="{{.ExportURL}}">
<input type="hidden" name="sheet" value="">
<label for="sheets">Select sheets to download in a single Excel file:</label><br>
<select id="sheets" name="sheet" multiple size="{{len .Kinds}}">
{{range .Kinds}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select><br>
<button type="submit">Download {{.FileName}}</button>
</form>
</section>
</body>
</html>
{{define "table"}}<table data-kind="{{.Kind}}">
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>{{range .Rows}}
<tr>{{range .}}<td{{with .Style}} style="{{css .}}"{{end}}>{{.Text}}</td>{{end}}</tr>{{end}}
</tbody>
</table>{{end}}
`
