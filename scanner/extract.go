// Package scanner extracts exported function documentation from Go
// service files and groups it into report categories.
//
// The extractor is a line-oriented scanner, not a parser. It recognizes
// declarations of the form "func UppercaseName(...)", reassembles
// signatures that span multiple lines, and attaches the block of //
// comments written above the declaration. Unconventionally formatted
// declarations are skipped rather than reported as errors.
package scanner

import (
	"regexp"
	"strings"
)

var (
	// func <Name>( with an uppercase first letter. Methods never match:
	// the receiver's opening parenthesis sits where the name would be.
	reFuncStart = regexp.MustCompile(`^func\s+[A-Z]`)
	reFuncName  = regexp.MustCompile(`^func\s+([A-Z][a-zA-Z0-9]*)`)

	reSpaces     = regexp.MustCompile(`\s+`)
	reTrailBrace = regexp.MustCompile(`\s*\{\s*$`)
)

// Extract scans src line by line and returns a record for every exported
// top-level function declaration, in source order. Line numbers are
// 1-based and point at the line holding the func keyword.
func Extract(src string) []FunctionRecord {
	lines := strings.Split(src, "\n")
	var records []FunctionRecord

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "func ") || !reFuncStart.MatchString(line) {
			continue
		}

		sig, ok := collectSignature(lines, i)
		if !ok {
			// Declaration never closed before EOF. Skip the candidate;
			// scanning resumes on the next line so later declarations
			// are still found.
			continue
		}

		m := reFuncName.FindStringSubmatch(sig)
		if m == nil {
			continue
		}

		records = append(records, FunctionRecord{
			Name:          m[1],
			Signature:     sig,
			Documentation: collectDocs(lines, i),
			LineNumber:    i + 1,
		})
	}
	return records
}

// collectDocs walks backward from the line above the declaration,
// gathering // comment lines top-to-bottom with their markers stripped.
// Blank lines are absorbed, so a comment block separated from the
// function by whitespace still attaches. Any other content ends the walk.
func collectDocs(lines []string, decl int) []string {
	var docs []string
	for j := decl - 1; j >= 0; j-- {
		t := strings.TrimSpace(lines[j])
		switch {
		case strings.HasPrefix(t, "//"):
			docs = append([]string{strings.TrimSpace(t[2:])}, docs...)
		case t == "":
			// Keep looking upward.
		default:
			return docs
		}
	}
	return docs
}

// collectSignature reassembles the declaration from its starting line up
// to the opening body brace, tracking parenthesis depth so multi-line
// parameter lists are handled. ok is false when the declaration never
// closes before end of file.
func collectSignature(lines []string, decl int) (sig string, ok bool) {
	var buf []string
	parens := 0

	for k := decl; k < len(lines); k++ {
		cur := strings.TrimSpace(lines[k])
		buf = append(buf, cur)
		parens += strings.Count(cur, "(") - strings.Count(cur, ")")

		if strings.Contains(cur, "{") {
			ok = true
			break
		}
		if parens == 0 && k > decl {
			// Parameter list and return clause have closed; the body
			// brace may still sit alone on a later line.
			next := k + 1
			for next < len(lines) && strings.TrimSpace(lines[next]) == "" {
				next++
			}
			if next < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[next]), "{") {
				ok = true
				break
			}
		}
	}
	if !ok {
		return "", false
	}

	sig = strings.TrimSpace(strings.Join(buf, " "))
	sig = reSpaces.ReplaceAllString(sig, " ")
	sig = reTrailBrace.ReplaceAllString(sig, "")
	return sig, true
}
