package diversity

import (
	"sort"
	"strings"
	"unicode"
)

// stopWords are common words ignored during concept extraction.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "day": true,
	"get": true, "has": true, "him": true, "his": true, "how": true,
	"its": true, "may": true, "new": true, "now": true, "old": true,
	"see": true, "two": true, "way": true, "who": true, "did": true,
	"what": true, "when": true, "which": true, "with": true, "this": true,
	"that": true, "these": true, "those": true, "they": true, "them": true,
	"then": true, "than": true, "there": true, "their": true, "would": true,
	"could": true, "should": true, "about": true, "into": true, "from": true,
	"have": true, "does": true, "each": true, "between": true, "following": true,
	"using": true, "used": true, "uses": true, "based": true, "given": true,
	"true": true, "false": true, "none": true, "most": true, "best": true,
	"main": true, "primary": true, "correct": true, "answer": true,
	"question": true, "example": true, "describe": true, "explain": true,
}

// ExtractConcepts pulls normalized concept terms out of question text.
// Hyphenated technical terms survive as single concepts; everything is
// lowercased and deduplicated, stop words and short tokens dropped.
func ExtractConcepts(text string) []string {
	seen := make(map[string]bool)
	var concepts []string

	for _, tok := range tokenize(text) {
		if len(tok) < 4 && !strings.Contains(tok, "-") {
			continue
		}
		if stopWords[tok] {
			continue
		}
		if !seen[tok] {
			seen[tok] = true
			concepts = append(concepts, tok)
		}
	}

	sort.Strings(concepts)
	return concepts
}

// tokenize splits text into lowercase tokens, keeping interior hyphens
// so terms like "gradient-descent" stay intact.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		tok := strings.Trim(b.String(), "-")
		if tok != "" {
			tokens = append(tokens, tok)
		}
		b.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
