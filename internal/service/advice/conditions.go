package advice

import "github.com/carepal/backend/internal/analysis/triage"

var (
	otcLabelNote       = "Do not mix products with the same active ingredient."
	askClinicianNote   = "If pregnant/breastfeeding, for children, or with chronic conditions, ask a clinician before taking any medication."
	checkClinicianNote = "If pregnant/breastfeeding, for children, or with chronic conditions, check with a clinician first."
)

var conditions = map[triage.Topic]Sections{
	triage.TopicCut: {
		Title:    "Small cut or minor wound",
		WhatItIs: "A small break in the skin that may bleed a little and usually heals on its own with basic care.",
		DoNow: []string{
			"Wash your hands.",
			"Gently clean the cut with clean water.",
			"Apply gentle pressure with a clean cloth to stop bleeding.",
			"Cover with a clean bandage.",
		},
		WatchFor: []string{
			"Redness spreading, pus, or increasing pain/swelling (possible infection).",
			"Bleeding that doesn’t stop after 10 minutes of pressure.",
		},
		WhenToSee: []string{
			"The cut is deep, very dirty, or edges are far apart.",
			"You haven’t had a tetanus shot in the last 5–10 years.",
		},
	},
	triage.TopicCold: {
		Title:    "Common cold or cough",
		WhatItIs: "A mild viral illness causing stuffy/runny nose, sore throat, or cough.",
		DoNow: []string{
			"Drink plenty of water and rest well.",
			"Warm soups, steam, or a humidifier may help.",
		},
		WatchFor: []string{
			"High fever, chest pain, trouble breathing, or confusion.",
			"Symptoms lasting more than a week or getting worse.",
		},
		WhenToSee: []string{
			"Breathing difficulties, severe chest pain, or persistent high fever.",
		},
		Notes: []string{
			"Over-the-counter options may help; follow the product label exactly.",
			otcLabelNote,
			askClinicianNote,
		},
	},
	triage.TopicStress: {
		Title:    "Stress or anxiety",
		WhatItIs: "A common response to pressure; short-term strategies can help you feel calmer.",
		DoNow: []string{
			"Take slow, deep breaths for 1–2 minutes.",
			"Stretch or do light exercise; take a short walk.",
			"Write down worries and one small action you can take.",
			"Talk to a supportive friend or family member.",
		},
		WatchFor: []string{
			"Panic attacks, unrelenting anxiety, or thoughts of self-harm.",
		},
		WhenToSee: []string{
			"Symptoms that persist or interfere with daily life.",
		},
	},
	triage.TopicFever: {
		Title:    "Fever (non-emergency care)",
		WhatItIs: "A temporary rise in body temperature, often due to infection.",
		DoNow: []string{
			"Drink plenty of fluids (water, oral rehydration, broths).",
			"Rest and wear light clothing; keep the room comfortably cool.",
			"Sponge with lukewarm water if uncomfortable (avoid ice-cold baths).",
		},
		WatchFor: []string{
			"Very high fever, stiff neck, confusion, severe headache, breathing trouble, chest pain, persistent vomiting.",
		},
		WhenToSee: []string{
			"Fever lasting more than 2–3 days or if you feel very unwell.",
		},
		Notes: []string{
			"You may consider over-the-counter fever reducers; follow the product label exactly.",
			otcLabelNote,
			checkClinicianNote,
		},
	},
	triage.TopicSoreThroat: {
		Title:    "Sore throat",
		WhatItIs: "Irritation or pain in the throat, often from a viral infection.",
		DoNow: []string{
			"Warm saltwater gargles (1/2 tsp salt in a cup of warm water).",
			"Warm fluids (soups, tea with honey) and good hydration.",
			"Use a humidifier or take steamy showers.",
			"Throat lozenges or sprays can help; follow the label directions.",
		},
		WatchFor: []string{
			"Severe pain, drooling, trouble breathing, rash, or high fever.",
		},
		WhenToSee: []string{
			"Symptoms lasting more than a few days or worsening.",
		},
		Notes: []string{
			otcLabelNote,
			askClinicianNote,
		},
	},
	triage.TopicHeadache: {
		Title:    "Common headache",
		WhatItIs: "Head pain often related to tension, dehydration, or screen strain.",
		DoNow: []string{
			"Hydrate and have regular, balanced meals.",
			"Rest in a quiet, dim room; take screen breaks and mind your posture.",
			"Manage stress with brief breathing or stretching breaks.",
		},
		WatchFor: []string{
			"Worst-ever sudden headache, head injury, fever with stiff neck, confusion, weakness/numbness, vision changes.",
		},
		WhenToSee: []string{
			"Headaches that get worse, keep returning, or don’t respond to simple care.",
		},
		Notes: []string{
			"Over-the-counter pain relievers may help; follow the product label exactly.",
			otcLabelNote,
			checkClinicianNote,
		},
	},
	triage.TopicStomachAche: {
		Title:    "Mild stomach ache",
		WhatItIs: "Abdominal discomfort that often improves with rest and light diet.",
		DoNow: []string{
			"Sip clear fluids (water or oral rehydration).",
			"Try small, bland meals (crackers, toast, rice, bananas).",
			"Rest and avoid strenuous activity.",
		},
		WatchFor: []string{
			"Severe pain, persistent vomiting, blood in stool/vomit, black stool, fever with pain, or worsening pain.",
		},
		WhenToSee: []string{
			"Pain that lasts more than a day or is severe.",
		},
	},
	triage.TopicDiarrhea: {
		Title:    "Diarrhea",
		WhatItIs: "Frequent, loose stools that can cause dehydration.",
		DoNow: []string{
			"Hydrate with water or oral rehydration solution (small, frequent sips).",
			"Eat bland foods (bananas, rice, applesauce, toast) as tolerated.",
			"Wash hands and clean surfaces to prevent spread.",
		},
		WatchFor: []string{
			"Blood or black stool, high fever, signs of dehydration (very dry mouth, dizziness).",
		},
		WhenToSee: []string{
			"Symptoms lasting more than 2–3 days or any red-flag symptoms.",
		},
	},
	triage.TopicBurn: {
		Title:    "Minor burn or scald (first-degree)",
		WhatItIs: "Red, painful skin without blisters.",
		DoNow: []string{
			"Cool the area under cool running water for 10–20 minutes (not ice).",
			"Remove tight items (rings/watches) near the area before swelling.",
			"Cover loosely with a clean, non‑stick dressing.",
		},
		WatchFor: []string{
			"Large area, worsening pain, or signs of infection.",
		},
		WhenToSee: []string{
			"Face, hands, genitals, or a large area; or if blisters form.",
		},
	},
	triage.TopicNosebleed: {
		Title:    "Nosebleed",
		WhatItIs: "Bleeding from inside the nose, often from dryness or minor injury.",
		DoNow: []string{
			"Sit upright, tilt head slightly forward.",
			"Pinch the soft part of the nose for 10–15 minutes without releasing.",
			"Spit out blood; avoid swallowing.",
		},
		WatchFor: []string{
			"Bleeding that doesn’t stop after 20 minutes, dizziness, or if on blood thinners.",
		},
		WhenToSee: []string{
			"Frequent nosebleeds or after a significant injury.",
		},
	},
	triage.TopicFainting: {
		Title:    "Fainting (syncope)",
		WhatItIs: "Brief loss of consciousness often from low blood pressure or dehydration.",
		DoNow: []string{
			"Lay the person on their back and raise legs if safe.",
			"Loosen tight clothing and ensure fresh air.",
			"When awake, offer sips of water if not nauseated.",
		},
		WatchFor: []string{
			"Head injury, chest pain, shortness of breath, confusion, or repeated fainting.",
		},
		WhenToSee: []string{
			"Any head injury or if episodes repeat or don’t recover quickly.",
		},
	},
	triage.TopicDehydration: {
		Title:    "Dehydration",
		WhatItIs: "Not enough fluids in the body; can cause dizziness or fatigue.",
		DoNow: []string{
			"Sip oral rehydration solution or water regularly.",
			"Rest in a cool area and avoid heat.",
		},
		WatchFor: []string{
			"Very dry mouth, minimal urine, dizziness/fainting, confusion.",
		},
		WhenToSee: []string{
			"Severe symptoms or if unable to keep fluids down.",
		},
	},
	triage.TopicFoodPoisoning: {
		Title:    "Suspected food poisoning",
		WhatItIs: "Gastro symptoms after eating contaminated food.",
		DoNow: []string{
			"Hydrate with water or oral rehydration solution.",
			"Rest and reintroduce bland foods slowly.",
		},
		WatchFor: []string{
			"Blood in stool/vomit, black stool, high fever, signs of dehydration.",
		},
		WhenToSee: []string{
			"Symptoms lasting more than 1–2 days or any red‑flag symptoms.",
		},
	},
	triage.TopicDengue: {
		Title:    "Dengue prevention (Philippines)",
		WhatItIs: "Viral illness spread by Aedes mosquitoes.",
		DoNow: []string{
			"Eliminate standing water (flower pots, containers).",
			"Use mosquito repellent and wear long sleeves/pants.",
			"Use screens or nets; keep surroundings clean.",
		},
		WatchFor: []string{
			"High fever, severe headache, eye pain, joint/muscle pain, bleeding gums or nose.",
		},
		WhenToSee: []string{
			"Any warning signs or persistent high fever; seek medical care.",
		},
	},
	triage.TopicHeatExhaustion: {
		Title:    "Heat exhaustion",
		WhatItIs: "Overheating with heavy sweating and weakness.",
		DoNow: []string{
			"Move to a cool place; loosen clothing.",
			"Sip water or oral rehydration solution; cool the skin with wet cloths or a fan.",
		},
		WatchFor: []string{
			"Confusion, fainting, very high temperature, or no sweating (possible heat stroke).",
		},
		WhenToSee: []string{
			"Symptoms not improving within 30 minutes or any red‑flag signs.",
		},
	},
}

// Condition returns the guide for a first-aid or common-illness topic.
func Condition(topic triage.Topic) (string, bool) {
	s, ok := conditions[topic]
	if !ok {
		return "", false
	}
	return FormatSections(s), true
}
