package advice

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carepal/backend/internal/analysis/triage"
)

func TestFormatSections(t *testing.T) {
	got := FormatSections(Sections{
		Title:     "Title",
		WhatItIs:  "Thing.",
		DoNow:     []string{"one", "two"},
		WhenToSee: []string{"later"},
	})

	want := "**Title**\n\n" +
		"\n**What it is:**\nThing.\n\n" +
		"\n**Do now**\n- one\n- two\n\n" +
		"\n**When to see a doctor**\n- later\n\n" +
		"\n" + Disclaimer
	assert.Equal(t, want, got)
}

func TestEmergencyIncludesDisclaimerAndNumber(t *testing.T) {
	got := Emergency(triage.EmergencyChest, "")
	assert.True(t, strings.HasPrefix(got, Disclaimer))
	assert.Contains(t, got, "🚨 **CHEST PAIN/HEART ATTACK - EMERGENCY**")
	assert.Contains(t, got, "**CALL 911 IMMEDIATELY!**")

	local := Emergency(triage.EmergencyKind("unknown"), "112")
	assert.Contains(t, local, "**MEDICAL EMERGENCY**")
	assert.Contains(t, local, "**CALL 112 IMMEDIATELY!**")
}

func TestRefusalVerbatim(t *testing.T) {
	got := Refusal(triage.CategoryMedication, "")
	assert.Equal(t, Disclaimer+"\n\n"+refusals[triage.CategoryMedication], got)

	highRisk := Refusal(triage.CategoryHighRisk, "911")
	assert.Contains(t, highRisk, "call 911 right now")
	assert.NotContains(t, highRisk, numberPlaceholder)

	assert.Equal(t, Disclaimer+"\n\n"+genericRefusal, Refusal(triage.Category("other"), ""))
}

func TestTimeOfDay(t *testing.T) {
	tests := map[int]string{
		4: "Hello", 5: "Good morning", 11: "Good morning", 12: "Good afternoon",
		16: "Good afternoon", 17: "Good evening", 20: "Good evening", 21: "Hello", 0: "Hello",
	}
	for hour, want := range tests {
		assert.Equal(t, want, TimeOfDay(hour), "hour %d", hour)
	}
}

func TestGreeting(t *testing.T) {
	anon := Greeting("", 9)
	assert.True(t, strings.HasPrefix(anon, "Good morning! 👋"))
	assert.Contains(t, anon, "What's your name?")
	assert.True(t, strings.HasSuffix(anon, Disclaimer))

	named := Greeting("Ana", 18)
	assert.True(t, strings.HasPrefix(named, "Good evening, Ana! 👋"))
	assert.Contains(t, named, "What can I help you with today, Ana?")
	assert.NotContains(t, named, "What's your name?")
}

func TestNutrition(t *testing.T) {
	got := Nutrition()
	assert.Contains(t, got, "**Nutrition & Hydration Guide**")
	assert.Contains(t, got, "**Monday:**\n**Breakfast:** Arroz caldo")
	assert.Contains(t, got, "**Sunday:**")
	assert.Contains(t, got, "**Dairy:** Fresh milk")
	assert.Contains(t, got, "- Drink 8-10 glasses of water daily (2-2.5 liters)")
	assert.True(t, strings.HasSuffix(got, Disclaimer))
}

func TestExercise(t *testing.T) {
	tests := []struct {
		input string
		title string
	}{
		{"I want to lose weight, I'm 95kg and 170cm", "Weight Loss Exercise Plan"},
		{"how do I lose weight", "Healthy Weight Management"},
		{"help me build muscle", "Muscle Building Exercise Plan"},
		{"is cardio good", "Cardiovascular Exercise"},
		{"gym routine", "Strength Training Basics"},
		{"I'm a beginner", "Getting Started with Exercise"},
		{"I'm 45kg and 170cm", "Exercise & Nutrition Plan for Healthy Weight Gain"},
		{"I'm 65kg and 170cm", "Exercise & Nutrition Plan for Healthy Maintenance"},
		{"I'm 80kg and 170cm", "Exercise & Nutrition Plan for Healthy Weight Management"},
		{"I'm 100kg and 170cm", "Exercise & Nutrition Plan for Safe Weight Management"},
		{"workout ideas", "General Exercise Guidelines"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Exercise(tt.input)
			assert.True(t, strings.HasPrefix(got, "**"+tt.title+"**"), got)
		})
	}
}

func TestFallback(t *testing.T) {
	got := Fallback()
	assert.True(t, strings.HasPrefix(got, "**General wellness**"))
	assert.True(t, strings.HasSuffix(got, Disclaimer))
}

func TestResponderRespond(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	clock := func() time.Time { return time.Date(2025, 3, 1, 1, 30, 0, 0, time.UTC) }
	r := NewResponder(WithEmergencyNumber("117"), WithLocation(manila), WithClock(clock))

	require.Equal(t, 9, r.Hour())
	assert.Equal(t, "117", r.EmergencyNumber())

	greeting := r.Respond(triage.Classify("hi"), "hi", "Leo")
	assert.True(t, strings.HasPrefix(greeting, "Good morning, Leo!"))

	emergency := r.Respond(triage.Classify("he is choking"), "he is choking", "")
	assert.Contains(t, emergency, "**CALL 117 IMMEDIATELY!**")

	cut := r.Respond(triage.Classify("small cut"), "small cut", "")
	assert.True(t, strings.HasPrefix(cut, "**Small cut or minor wound**"))

	assert.Equal(t, Fallback(), r.Respond(triage.Classify("tell me something"), "tell me something", ""))
}

func TestRespondIsIdempotent(t *testing.T) {
	r := NewResponder()
	for _, input := range []string{"chest pain!", "what dosage should I take"} {
		route := triage.Classify(input)
		assert.Equal(t, r.Respond(route, input, ""), r.Respond(route, input, ""))
	}
}
