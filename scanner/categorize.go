package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StemRule maps a filename-stem substring to a category label. Rules are
// evaluated top to bottom; the first match wins.
type StemRule struct {
	Match string `yaml:"match"`
	Label string `yaml:"label"`
}

// CategoryRules is the table driving Categorize. It is plain data so a
// deployment can swap the mapping without touching extraction: a path
// containing the Subarea segment is classified by stem rules, any other
// file by exact base-name lookup, and everything else falls through to
// Fallback.
type CategoryRules struct {
	Subarea        string            `yaml:"subarea"`
	SubareaStems   []StemRule        `yaml:"subarea_stems"`
	SubareaDefault string            `yaml:"subarea_default"`
	BaseNames      map[string]string `yaml:"base_names"`
	Fallback       string            `yaml:"fallback"`
}

// DefaultCategoryRules mirrors the service layer layout this tool was
// built against.
func DefaultCategoryRules() CategoryRules {
	return CategoryRules{
		Subarea: "threat_pattern",
		SubareaStems: []StemRule{
			{Match: "pattern_condition", Label: "Threat Pattern Conditions"},
			{Match: "instance_threat_pattern", Label: "Instance Threat Pattern Evaluation"},
		},
		SubareaDefault: "Threat Pattern Management",
		BaseNames: map[string]string{
			"control":           "Control Management",
			"domain":            "Domain Management",
			"instance":          "Instance Management",
			"product":           "Product Management",
			"threat":            "Threat Management",
			"relationship":      "Relationship Management",
			"tag":               "Tag Management",
			"threat_resolution": "Threat Resolution Management",
		},
		Fallback: "Miscellaneous",
	}
}

// Categorize assigns a category label from a file's relative path. It is
// a pure function of the path and the rule table.
func (r CategoryRules) Categorize(relPath string) string {
	stem := strings.TrimSuffix(filepath.Base(relPath), filepath.Ext(relPath))

	if r.Subarea != "" && hasSegment(relPath, r.Subarea) {
		for _, rule := range r.SubareaStems {
			if strings.Contains(stem, rule.Match) {
				return rule.Label
			}
		}
		return r.SubareaDefault
	}

	if label, ok := r.BaseNames[stem]; ok {
		return label
	}
	return r.Fallback
}

func hasSegment(relPath, name string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if part == name {
			return true
		}
	}
	return false
}

// LoadCategoryRules reads a YAML rule table. Values from the file
// override the defaults; base-name entries are merged into the default
// map, and fields absent from the file keep their default values.
func LoadCategoryRules(path string) (CategoryRules, error) {
	rules := DefaultCategoryRules()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read category rules: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse category rules %s: %w", path, err)
	}
	return rules, nil
}
