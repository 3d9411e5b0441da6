package render

import (
	"html/template"
	"io"
	"strings"

	"svcdocs/scanner"
)

type htmlFunction struct {
	Name       string
	Signature  string
	Paragraphs []string
}

type htmlFile struct {
	Path      string
	Functions []htmlFunction
}

type htmlCategory struct {
	Name      string
	ID        string
	Functions int
	Files     []htmlFile
}

type htmlPage struct {
	Title      string
	Categories []htmlCategory
	Total      int
	Generated  string
}

// HTML writes the report as a standalone document with collapsible
// category sections. Categories and files are ordered lexicographically;
// all text is escaped by the template engine.
func HTML(w io.Writer, report *scanner.Report, title string) error {
	page := htmlPage{
		Title:     title,
		Total:     report.TotalFunctions(),
		Generated: report.GeneratedAt.Format("2006-01-02"),
	}

	for _, label := range report.SortedCategories() {
		files := report.Categories[label]
		cat := htmlCategory{
			Name:      label,
			ID:        anchorID(label),
			Functions: report.CategoryFunctions(label),
		}
		for _, path := range scanner.SortedFiles(files) {
			file := htmlFile{Path: path}
			for _, fn := range files[path] {
				file.Functions = append(file.Functions, htmlFunction{
					Name:       fn.Name,
					Signature:  fn.Signature,
					Paragraphs: docParagraphs(fn.Documentation),
				})
			}
			cat.Files = append(cat.Files, file)
		}
		page.Categories = append(page.Categories, cat)
	}

	return htmlTmpl.Execute(w, page)
}

// anchorID turns a category label into a fragment identifier.
func anchorID(label string) string {
	return strings.ToLower(strings.ReplaceAll(label, " ", "-"))
}

var htmlTmpl = template.Must(template.New("report").Parse(htmlTemplate))

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 2rem;
            border-radius: 10px;
            margin-bottom: 2rem;
            text-align: center;
        }
        .header h1 { margin: 0; font-size: 2.5rem; font-weight: 300; }
        .stats {
            background: white;
            padding: 1.5rem;
            border-radius: 8px;
            margin-bottom: 2rem;
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 1rem;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .stat-item { text-align: center; padding: 1rem; border-radius: 6px; background: #f8f9fa; }
        .stat-number { font-size: 2rem; font-weight: bold; color: #667eea; display: block; }
        .toc {
            background: white;
            padding: 1.5rem;
            border-radius: 8px;
            margin-bottom: 2rem;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .toc ul { list-style: none; padding: 0; }
        .toc a { color: #667eea; text-decoration: none; }
        .category {
            background: white;
            margin-bottom: 1.5rem;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            overflow: hidden;
        }
        .category-header {
            background: #667eea;
            color: white;
            padding: 1rem 1.5rem;
            cursor: pointer;
            user-select: none;
        }
        .category-header h2 { margin: 0; font-size: 1.3rem; font-weight: 500; }
        .category.collapsed .category-content { display: none; }
        .file-section { border-bottom: 1px solid #e2e8f0; }
        .file-header {
            background: #f8f9fa;
            padding: 0.75rem 1.5rem;
            font-weight: 500;
            color: #4a5568;
            font-family: 'Monaco', 'Consolas', monospace;
            font-size: 0.9rem;
        }
        .function { padding: 1.5rem; border-bottom: 1px solid #f1f5f9; }
        .function-name { font-size: 1.2rem; font-weight: 600; color: #2d3748; margin-bottom: 0.5rem; }
        .function-signature {
            background: #f7fafc;
            padding: 1rem;
            border-radius: 6px;
            border-left: 4px solid #667eea;
            font-family: 'Monaco', 'Consolas', monospace;
            font-size: 0.9rem;
            color: #4a5568;
            margin-bottom: 1rem;
            overflow-x: auto;
        }
        .function-docs { color: #4a5568; line-height: 1.7; }
        .no-docs { color: #a0aec0; font-style: italic; }
        .footer {
            text-align: center;
            padding: 2rem;
            color: #718096;
            border-top: 1px solid #e2e8f0;
            margin-top: 3rem;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Title}}</h1>
        <p>Documentation for all public service functions</p>
    </div>

    <div class="stats">
        <div class="stat-item">
            <span class="stat-number">{{len .Categories}}</span>
            Service Categories
        </div>
        <div class="stat-item">
            <span class="stat-number">{{.Total}}</span>
            Public Functions
        </div>
        <div class="stat-item">
            <span class="stat-number">{{.Generated}}</span>
            Generated
        </div>
    </div>

    <div class="toc">
        <h3>Table of Contents</h3>
        <ul>
{{- range .Categories}}
            <li><a href="#{{.ID}}">{{.Name}}</a> ({{.Functions}} functions)</li>
{{- end}}
        </ul>
    </div>
{{range .Categories}}
    <div class="category" id="{{.ID}}">
        <div class="category-header" onclick="toggleCategory(this)">
            <h2>{{.Name}}</h2>
        </div>
        <div class="category-content">
{{- range .Files}}
            <div class="file-section">
                <div class="file-header">{{.Path}}</div>
{{- range .Functions}}
                <div class="function">
                    <div class="function-name">{{.Name}}</div>
                    <div class="function-signature">{{.Signature}}</div>
                    <div class="function-docs">
{{- if .Paragraphs}}
{{- range .Paragraphs}}
                        <p>{{.}}</p>
{{- end}}
{{- else}}
                        <p class="no-docs">No documentation available.</p>
{{- end}}
                    </div>
                </div>
{{- end}}
            </div>
{{- end}}
        </div>
    </div>
{{end}}
    <div class="footer">
        <p>Generated on {{.Generated}} | Total functions documented: {{.Total}}</p>
    </div>

    <script>
        function toggleCategory(header) {
            header.parentElement.classList.toggle('collapsed');
        }
    </script>
</body>
</html>
`
