package core

// RawMatch is one pattern hit inside a commit's introduced content, before it
// is joined with commit metadata into a Finding.
type RawMatch struct {
	Rule *DetectorRule
	Text string
}

// ScanContent runs every rule against the content and returns all
// non-overlapping matches in rule order, then match order within each rule.
//
// When a rule defines one or more capturing groups the reported text is the
// first group's capture, not the whole match span. This mirrors how the
// labeled-assignment patterns are authored: the label is captured, the value
// is not. The capture may be empty (e.g. the optional key-variant group in
// the PEM header rule). Rules without groups report the full match span.
func ScanContent(content string, rules []DetectorRule) []RawMatch {
	var matches []RawMatch
	for i := range rules {
		rule := &rules[i]
		for _, m := range rule.re.FindAllStringSubmatch(content, -1) {
			text := m[0]
			if rule.re.NumSubexp() >= 1 {
				text = m[1]
			}
			matches = append(matches, RawMatch{Rule: rule, Text: text})
		}
	}
	return matches
}
