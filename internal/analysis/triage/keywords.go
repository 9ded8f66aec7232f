package triage

// Category names a disallowed topic bucket.
type Category string

const (
	CategoryMedication Category = "Medication specifics / prescribing"
	CategoryHighRisk   Category = "High-risk domains"
	CategoryDiagnostic Category = "Diagnostic certainty"
	CategoryDangerous  Category = "Experimental/dangerous"
)

// EmergencyKind selects which emergency instructions apply.
type EmergencyKind string

const (
	EmergencyChest       EmergencyKind = "chest"
	EmergencyBreathing   EmergencyKind = "breathing"
	EmergencyUnconscious EmergencyKind = "unconscious"
	EmergencyBleeding    EmergencyKind = "bleeding"
	EmergencyStroke      EmergencyKind = "stroke"
	EmergencyChoking     EmergencyKind = "choking"
	EmergencyAllergy     EmergencyKind = "allergy"
	EmergencyGeneral     EmergencyKind = "general"
)

// Topic identifies an advice template.
type Topic string

const (
	TopicCut            Topic = "cut"
	TopicCold           Topic = "cold"
	TopicStress         Topic = "stress"
	TopicFever          Topic = "fever"
	TopicSoreThroat     Topic = "sore-throat"
	TopicHeadache       Topic = "headache"
	TopicStomachAche    Topic = "stomach-ache"
	TopicDiarrhea       Topic = "diarrhea"
	TopicBurn           Topic = "burn"
	TopicNosebleed      Topic = "nosebleed"
	TopicFainting       Topic = "fainting"
	TopicDehydration    Topic = "dehydration"
	TopicFoodPoisoning  Topic = "food-poisoning"
	TopicDengue         Topic = "dengue"
	TopicHeatExhaustion Topic = "heat-exhaustion"
	TopicNutrition      Topic = "nutrition"
	TopicExercise       Topic = "exercise"
	TopicMeasurement    Topic = "measurement"
)

var emergencyKeywords = []string{
	"chest pain", "severe bleeding", "not breathing", "unconscious", "stroke", "heart attack",
	"can't breathe", "breathing trouble", "passed out", "fainted", "bleeding heavily",
	"blood everywhere", "cardiac arrest", "choking", "severe allergic reaction",
	"anaphylaxis", "severe head injury", "spinal injury", "severe burn", "overdose",
}

// emergencyKinds is checked in order; the first hit wins.
var emergencyKinds = []struct {
	kind     EmergencyKind
	keywords []string
}{
	{EmergencyChest, []string{"chest pain", "heart attack"}},
	{EmergencyBreathing, []string{"not breathing", "can't breathe", "breathing trouble"}},
	{EmergencyUnconscious, []string{"unconscious", "passed out", "fainted"}},
	{EmergencyBleeding, []string{"severe bleeding", "bleeding heavily", "blood everywhere"}},
	{EmergencyStroke, []string{"stroke"}},
	{EmergencyChoking, []string{"choking", "can't swallow"}},
	{EmergencyAllergy, []string{"severe allergic reaction", "anaphylaxis"}},
}

var greetingWords = []string{
	"hello", "hey", "good morning", "good afternoon", "good evening", "greetings",
}

// blocklist is ordered; the first category with a matching keyword wins.
var blocklist = []struct {
	category Category
	keywords []string
}{
	{CategoryMedication, []string{
		"dosage", "dose", "mg", "milligram", "prescribe", "prescription",
		"antibiotic", "amoxicillin", "metformin", "insulin", "opioid",
	}},
	{CategoryHighRisk, []string{
		"self-harm", "suicide", "kill myself", "overdose",
	}},
	{CategoryDiagnostic, []string{
		"exact diagnosis", "what disease is this exactly",
	}},
	{CategoryDangerous, []string{
		"inject", "iv drip at home", "home surgery", "stitches at home",
	}},
}

// topicRules is ordered; the first matching rule wins.
var topicRules = []struct {
	topic Topic
	match func(t string) bool
}{
	{TopicCut, anyOf("cut", "wound")},
	{TopicCold, anyOf("cold", "cough")},
	{TopicStress, anyOf("stress", "anxiety", "panic attacks")},
	{TopicFever, anyOf("fever", "high temperature")},
	{TopicSoreThroat, anyOf("sore throat", "throat pain")},
	{TopicHeadache, anyOf("headache", "migraine", "head pain")},
	{TopicStomachAche, anyOf("stomach ache", "stomachache", "abdominal pain")},
	{TopicDiarrhea, anyOf("diarrhea", "loose stools")},
	{TopicBurn, anyOf("burn", "scald")},
	{TopicNosebleed, anyOf("nosebleed", "nose bleed")},
	{TopicFainting, anyOf("faint", "passed out", "syncope")},
	{TopicDehydration, anyOf("dehydration")},
	{TopicFoodPoisoning, either(anyOf("food poisoning"), allOf("vomit", "diarrhea"))},
	{TopicDengue, anyOf("dengue")},
	{TopicHeatExhaustion, either(anyOf("heat exhaustion"), allOf("heat", "dizzy"))},
	{TopicNutrition, anyOf(
		"nutrition", "diet", "food", "eating", "eat", "meal", "breakfast", "lunch", "dinner",
		"snack", "hydrate", "water", "healthy food", "meal plan",
	)},
	{TopicExercise, anyOf(
		"exercise", "workout", "fitness", "gym", "weight loss", "lose weight", "gain weight",
		"muscle", "cardio", "strength training",
	)},
}

// nonNames are words that follow "i'm"/"i am" far more often than a name does.
var nonNames = map[string]bool{
	"a": true, "an": true, "the": true, "not": true, "so": true, "very": true, "really": true,
	"just": true, "feeling": true, "having": true, "getting": true, "going": true, "trying": true,
	"sick": true, "ill": true, "tired": true, "fine": true, "good": true, "okay": true, "ok": true,
	"well": true, "here": true, "back": true, "new": true, "worried": true, "scared": true,
	"sad": true, "stressed": true, "anxious": true, "hungry": true, "thirsty": true, "sorry": true,
	"pregnant": true, "bleeding": true, "dizzy": true, "always": true, "still": true, "also": true,
	"in": true, "on": true, "at": true, "from": true, "looking": true, "wondering": true,
}
