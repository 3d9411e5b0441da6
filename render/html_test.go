package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svcdocs/scanner"
)

func fixtureReport() *scanner.Report {
	report := scanner.NewReport("/tmp/service")
	report.Add("Miscellaneous", "helpers.go", []scanner.FunctionRecord{
		{
			Name:       "FormatName",
			Signature:  "func FormatName(name string) string",
			LineNumber: 4,
		},
	})
	report.Add("Domain Management", "domain.go", []scanner.FunctionRecord{
		{
			Name:          "GetDomain",
			Signature:     "func GetDomain(id int) (*Domain, error)",
			Documentation: []string{"GetDomain returns a domain by ID.", "", "It fails when <id> is negative."},
			LineNumber:    4,
		},
		{
			Name:          "CreateDomain",
			Signature:     "func CreateDomain(name string) (*Domain, error)",
			Documentation: []string{"CreateDomain creates a new domain."},
			LineNumber:    9,
		},
	})
	return report
}

func TestHTMLReport(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, HTML(&sb, fixtureReport(), "Service Layer Documentation"))
	out := sb.String()

	assert.Contains(t, out, "<title>Service Layer Documentation</title>")
	assert.Contains(t, out, "GetDomain")
	assert.Contains(t, out, "CreateDomain")
	assert.Contains(t, out, `id="domain-management"`)

	// Signatures and docs are escaped for HTML.
	assert.Contains(t, out, "func GetDomain(id int) (*Domain, error)")
	assert.Contains(t, out, "It fails when &lt;id&gt; is negative.")
	assert.NotContains(t, out, "<id>")

	// Undocumented functions get the fallback text.
	assert.Contains(t, out, "No documentation available.")

	// Categories appear in lexicographic order.
	assert.Less(t, strings.Index(out, `id="domain-management"`), strings.Index(out, `id="miscellaneous"`))
}

func TestHTMLDocParagraphs(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, HTML(&sb, fixtureReport(), "Docs"))
	out := sb.String()

	// A blank comment line splits the documentation into paragraphs.
	assert.Contains(t, out, "<p>GetDomain returns a domain by ID.</p>")
	assert.Contains(t, out, "<p>It fails when &lt;id&gt; is negative.</p>")
}

func TestAnchorID(t *testing.T) {
	assert.Equal(t, "threat-pattern-conditions", anchorID("Threat Pattern Conditions"))
	assert.Equal(t, "miscellaneous", anchorID("Miscellaneous"))
}
