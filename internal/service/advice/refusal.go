package advice

import (
	"strings"

	"github.com/carepal/backend/internal/analysis/triage"
)

const numberPlaceholder = "{number}"

var refusals = map[triage.Category]string{
	triage.CategoryMedication: "I can’t provide prescriptions or dosage instructions. Prescription medicines should only be taken when they are prescribed specifically for you. " +
		"Usually, clinicians choose a medicine and dose based on your age, weight, medical history, allergies, other medicines, and an in-person exam.\n\n" +
		"Safe general steps you can consider: keep a brief symptoms log (start time, severity, what worsens/relieves), rest, hydrate, eat light meals, and use over-the-counter options only as directed on the product label. " +
		"Avoid taking multiple products with the same active ingredient. If symptoms persist, worsen, or you notice red-flag signs, please see a licensed healthcare provider promptly.",
	triage.CategoryHighRisk: "I’m really sorry you’re going through this. I can’t help with self-harm or life-threatening situations. " +
		"Please seek immediate help: call {number} right now. If you can, reach out to someone you trust nearby. " +
		"If you are in immediate danger, try not to be alone and get urgent help.",
	triage.CategoryDiagnostic: "I can’t provide an exact diagnosis. A clinician would need a physical exam, history, and possibly tests. " +
		"Consider keeping a symptoms log (onset, triggers, what helps) and see a licensed healthcare provider, especially if symptoms persist, worsen, or you notice red-flag signs.",
	triage.CategoryDangerous: "I can’t assist with dangerous or invasive procedures. Please do not attempt this at home. " +
		"Keep the area clean, avoid actions that could worsen harm or infection, and seek care from a licensed healthcare professional. " +
		"Call {number} if there is severe bleeding, breathing trouble, or loss of consciousness.",
}

const genericRefusal = "I can’t assist with that request. Please consult a licensed healthcare provider."

// Refusal returns the fixed refusal for category. Categories without their
// own wording get a generic refusal.
func Refusal(category triage.Category, number string) string {
	if number == "" {
		number = DefaultEmergencyNumber
	}
	body, ok := refusals[category]
	if !ok {
		body = genericRefusal
	}
	return Disclaimer + "\n\n" + strings.ReplaceAll(body, numberPlaceholder, number)
}
