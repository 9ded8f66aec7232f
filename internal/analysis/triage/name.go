package triage

import (
	"regexp"

	"github.com/carepal/backend/internal/analysis/measure"
)

// Longer phrases come before their prefixes so "i'm called ana" yields Ana.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`my name is ([a-z]+)`),
	regexp.MustCompile(`my name's ([a-z]+)`),
	regexp.MustCompile(`name's ([a-z]+)`),
	regexp.MustCompile(`i'm called ([a-z]+)`),
	regexp.MustCompile(`you can call me ([a-z]+)`),
	regexp.MustCompile(`call me ([a-z]+)`),
	regexp.MustCompile(`i go by ([a-z]+)`),
	regexp.MustCompile(`\bi'm ([a-z]+)`),
	regexp.MustCompile(`\bi am ([a-z]+)`),
}

// ExtractName finds a self-introduction in text and returns the capitalised
// name. Inputs carrying a body measurement never yield a name.
func ExtractName(text string) (string, bool) {
	t := Normalize(text)
	if measure.HasMeasurement(t) {
		return "", false
	}

	for _, re := range namePatterns {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		if nonNames[m[1]] {
			continue
		}
		return capitalize(m[1]), true
	}
	return "", false
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return string(word[0]-'a'+'A') + word[1:]
}
