package naming

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// Rule is a named character-class constraint.
type Rule struct {
	Kind    string
	Pattern *regexp.Regexp
	Allowed string
}

const (
	mixedCaseClass = "letters, numbers, and underscores"
	lowerCaseClass = "lowercase letters, numbers, and underscores"
)

var (
	mixedCasePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	lowerCasePattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// Built-in rules.
var (
	ProjectRule    = Rule{Kind: "Name", Pattern: mixedCasePattern, Allowed: mixedCaseClass}
	SliceRule      = Rule{Kind: "Slice", Pattern: lowerCasePattern, Allowed: lowerCaseClass}
	IngredientRule = Rule{Kind: "Ingredient", Pattern: lowerCasePattern, Allowed: lowerCaseClass}
	ColumnRule     = Rule{Kind: "Column", Pattern: mixedCasePattern, Allowed: mixedCaseClass}
)

// Validate checks name against rule. It returns nil when the name is
// acceptable and a *NameError otherwise.
func Validate(name string, rule Rule) error {
	if rule.Pattern.MatchString(name) {
		return nil
	}
	return &NameError{
		Kind:       rule.Kind,
		Value:      name,
		Allowed:    rule.Allowed,
		Suggestion: suggest(name, rule),
	}
}

// suggest derives a valid spelling from an invalid name, or "" if the
// slugified form still fails the rule.
func suggest(name string, rule Rule) string {
	s := strings.ReplaceAll(slug.Make(name), "-", "_")
	if s == "" || !rule.Pattern.MatchString(s) {
		return ""
	}
	return s
}
