// Package advice renders the canned Care Pal answers: emergency
// instructions, refusals, greetings, topic guides and the general fallback.
package advice

import "strings"

// Disclaimer is attached to every answer Care Pal gives.
const Disclaimer = "⚠️ I am not a medical professional. This is for general information only. " +
	"For serious or emergency situations, please consult a licensed doctor or call local emergency services."

// Sections is the structured body of a topic answer.
type Sections struct {
	Title     string
	WhatItIs  string
	DoNow     []string
	WatchFor  []string
	WhenToSee []string
	Notes     []string
}

// FormatSections renders s as markdown. Empty sections are skipped; the
// disclaimer always closes the answer.
func FormatSections(s Sections) string {
	parts := make([]string, 0, 7)
	if s.Title != "" {
		parts = append(parts, "**"+s.Title+"**")
	}
	if s.WhatItIs != "" {
		parts = append(parts, "\n**What it is:**\n"+s.WhatItIs)
	}
	parts = appendBullets(parts, "Do now", s.DoNow)
	parts = appendBullets(parts, "Watch for", s.WatchFor)
	parts = appendBullets(parts, "When to see a doctor", s.WhenToSee)
	parts = appendBullets(parts, "Notes", s.Notes)
	parts = append(parts, "\n"+Disclaimer)
	return strings.Join(parts, "\n\n")
}

func appendBullets(parts []string, heading string, items []string) []string {
	if len(items) == 0 {
		return parts
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return append(parts, "\n**"+heading+"**\n"+strings.Join(lines, "\n"))
}

// Fallback is the general wellness answer for questions nothing else matched.
func Fallback() string {
	return FormatSections(Sections{
		Title:     "General wellness",
		WhatItIs:  "I couldn’t fully understand your question, so here are safe general tips that often help with mild concerns.",
		DoNow:     []string{"Drink water.", "Get enough rest.", "Eat balanced meals."},
		WatchFor:  []string{"Symptoms that persist, worsen, or include red‑flag signs (severe pain, trouble breathing, confusion)."},
		WhenToSee: []string{"Any serious or persistent symptoms."},
	})
}

// ExamplePrompts are suggested first questions shown to new users.
var ExamplePrompts = []string{
	"First aid for a small cut",
	"Tips to relieve a cold",
	"Healthy snacks for studying",
	"Quick stress-relief exercises",
}
