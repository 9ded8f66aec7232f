// Package triage routes free-text wellness questions to a response kind
// using ordered keyword tables.
package triage

import (
	"regexp"
	"strings"

	"github.com/carepal/backend/internal/analysis/measure"
)

// Kind is the response family selected for an input.
type Kind string

const (
	KindEmergency Kind = "emergency"
	KindGreeting  Kind = "greeting"
	KindRefusal   Kind = "refusal"
	KindTopic     Kind = "topic"
	KindFallback  Kind = "fallback"
)

// Route is the classification result. Only the field matching Kind is set.
type Route struct {
	Kind      Kind
	Emergency EmergencyKind
	Category  Category
	Topic     Topic
}

// String renders the route as "kind" or "kind:detail".
func (r Route) String() string {
	switch r.Kind {
	case KindEmergency:
		return string(r.Kind) + ":" + string(r.Emergency)
	case KindRefusal:
		return string(r.Kind) + ":" + string(r.Category)
	case KindTopic:
		return string(r.Kind) + ":" + string(r.Topic)
	default:
		return string(r.Kind)
	}
}

// Gated reports whether the route must be answered locally, never by the
// external model.
func (r Route) Gated() bool {
	return r.Kind == KindEmergency || r.Kind == KindGreeting || r.Kind == KindRefusal
}

var greetingRe = regexp.MustCompile(`\b(?:` + strings.Join(greetingWords, "|") + `)\b`)

// Normalize lower-cases text and straightens typographic apostrophes.
func Normalize(text string) string {
	t := strings.ToLower(text)
	return strings.NewReplacer("’", "'", "‘", "'").Replace(t)
}

// Classify picks the route for text: emergency, greeting, refusal, topic,
// then fallback.
func Classify(text string) Route {
	t := Normalize(text)

	if IsEmergency(t) {
		return Route{Kind: KindEmergency, Emergency: emergencyKind(t)}
	}
	if IsGreeting(t) {
		return Route{Kind: KindGreeting}
	}
	if category, ok := DisallowedCategory(t); ok {
		return Route{Kind: KindRefusal, Category: category}
	}
	if topic, ok := matchTopic(t); ok {
		return Route{Kind: KindTopic, Topic: topic}
	}
	return Route{Kind: KindFallback}
}

// IsEmergency reports whether text mentions any emergency keyword.
func IsEmergency(text string) bool {
	t := Normalize(text)
	for _, k := range emergencyKeywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// IsGreeting reports whether text is a greeting. "hi" only counts on its
// own; the other greeting words count anywhere as whole words.
func IsGreeting(text string) bool {
	t := Normalize(text)
	if strings.TrimSpace(t) == "hi" {
		return true
	}
	return greetingRe.MatchString(t)
}

// DisallowedCategory returns the first blocklist category text falls into.
func DisallowedCategory(text string) (Category, bool) {
	t := Normalize(text)
	for _, entry := range blocklist {
		for _, k := range entry.keywords {
			if strings.Contains(t, k) {
				return entry.category, true
			}
		}
	}
	return "", false
}

func emergencyKind(t string) EmergencyKind {
	for _, entry := range emergencyKinds {
		for _, k := range entry.keywords {
			if strings.Contains(t, k) {
				return entry.kind
			}
		}
	}
	return EmergencyGeneral
}

func matchTopic(t string) (Topic, bool) {
	for _, rule := range topicRules {
		if rule.match(t) {
			return rule.topic, true
		}
	}
	if measure.HasMeasurement(t) {
		return TopicMeasurement, true
	}
	return "", false
}

func anyOf(keywords ...string) func(string) bool {
	return func(t string) bool {
		for _, k := range keywords {
			if strings.Contains(t, k) {
				return true
			}
		}
		return false
	}
}

func allOf(keywords ...string) func(string) bool {
	return func(t string) bool {
		for _, k := range keywords {
			if !strings.Contains(t, k) {
				return false
			}
		}
		return true
	}
}

func either(a, b func(string) bool) func(string) bool {
	return func(t string) bool { return a(t) || b(t) }
}
