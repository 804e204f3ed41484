// Package core implements the history scanning pipeline: rule compilation,
// severity classification, commit log parsing, content matching, findings
// aggregation and run orchestration.
package core

import (
	"regexp"

	"github.com/gitsleuth/gitsleuth/internal/contract"
	"github.com/gitsleuth/gitsleuth/schema"
)

// DetectorRule is one compiled detector. Immutable once built: the pattern
// text, the label, the compiled expression and the severity tier derived
// from the rule's identifying text never change during a run.
type DetectorRule struct {
	ID       int
	Label    string // Built-in rule name; empty for custom patterns
	Pattern  string
	Severity schema.Severity

	re *regexp.Regexp
}

// Info returns the renderable description of the rule.
func (r *DetectorRule) Info() schema.RuleInfo {
	return schema.RuleInfo{
		ID:       r.ID,
		Severity: r.Severity,
		Label:    r.Label,
		Pattern:  r.Pattern,
	}
}

// CompileRules builds the ordered rule set from pattern texts. Severity is a
// property of each rule's identifying text (label plus pattern source) and
// is fixed here, not at match time. Built-in rules carry a label, so the
// AWS access-key literal classifies by what it detects rather than by its
// opaque regex. Custom pattern lists have already been syntax-checked during
// config validation, so a compile failure here indicates a broken built-in
// pattern.
func CompileRules(patterns []string) ([]DetectorRule, error) {
	rules := make([]DetectorRule, 0, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &contract.InvalidPatternError{Pattern: p, Err: err}
		}
		label := schema.DefaultPatternLabels[p]
		ident := p
		if label != "" {
			ident = label + " " + p
		}
		rules = append(rules, DetectorRule{
			ID:       i + 1,
			Label:    label,
			Pattern:  p,
			Severity: ClassifySeverity(ident),
			re:       re,
		})
	}
	return rules, nil
}

// RuleInfos converts a rule set into its renderable form.
func RuleInfos(rules []DetectorRule) []schema.RuleInfo {
	infos := make([]schema.RuleInfo, 0, len(rules))
	for i := range rules {
		infos = append(infos, rules[i].Info())
	}
	return infos
}
