package advice

import (
	"strings"

	"github.com/carepal/backend/internal/analysis/measure"
)

const measurementHint = "💡 **For personalized advice, tell me your height and weight like:** 'I'm 70kg and 170cm' or 'I'm 5'8\" and 150lbs'"

var (
	weightLossPlan = Sections{
		Title:    "Weight Loss Exercise Plan",
		WhatItIs: "A safe, gradual approach to losing weight through exercise and healthy habits.",
		DoNow: []string{
			"Start with 30 minutes of moderate cardio 3-4 times per week (walking, cycling, swimming)",
			"Add 2-3 strength training sessions per week to build muscle and boost metabolism",
			"Begin with bodyweight exercises: squats, push-ups, planks, lunges",
			"Include flexibility exercises: yoga or stretching for 10-15 minutes daily",
		},
		WatchFor: []string{
			"Joint pain or excessive fatigue",
			"Dizziness or feeling faint during exercise",
			"Chest pain or difficulty breathing",
		},
		WhenToSee: []string{
			"Any concerning symptoms during exercise",
			"If you have heart conditions, diabetes, or other health issues",
		},
		Notes: []string{
			"Start slowly and gradually increase intensity",
			"Aim for 150 minutes of moderate exercise per week",
			"Combine with healthy eating for best results",
			"Track your progress but don't obsess over the scale",
			measurementHint,
		},
	}

	weightManagementPlan = Sections{
		Title:    "Healthy Weight Management",
		WhatItIs: "Maintaining a healthy weight through balanced exercise and nutrition.",
		DoNow: []string{
			"Mix cardio and strength training for overall fitness",
			"Try 30-45 minutes of moderate exercise most days",
			"Include activities you enjoy: dancing, sports, hiking",
			"Focus on building strength and endurance",
		},
		WatchFor: []string{
			"Signs of overtraining: excessive fatigue, mood changes",
			"Joint pain or injury",
		},
		WhenToSee: []string{
			"Persistent pain or injury",
			"If you have concerns about your weight or health",
		},
		Notes: []string{
			"Maintain a balanced approach to exercise and nutrition",
			"Listen to your body and rest when needed",
		},
	}

	muscleBuildingPlan = Sections{
		Title:    "Muscle Building Exercise Plan",
		WhatItIs: "A structured approach to building muscle mass and strength safely.",
		DoNow: []string{
			"Focus on compound exercises: squats, deadlifts, bench press, rows",
			"Start with 3-4 strength training sessions per week",
			"Use progressive overload: gradually increase weight or reps",
			"Include 1-2 days of light cardio for heart health",
		},
		WatchFor: []string{
			"Overtraining signs: excessive fatigue, poor sleep, mood changes",
			"Joint pain or injury from improper form",
		},
		WhenToSee: []string{
			"Persistent pain or injury",
			"If you have heart conditions or other health concerns",
		},
		Notes: []string{
			"Proper form is more important than heavy weights",
			"Rest and recovery are crucial for muscle growth",
			"Combine with adequate protein intake",
			"Consider working with a trainer for proper technique",
			measurementHint,
		},
	}

	cardioPlan = Sections{
		Title:    "Cardiovascular Exercise",
		WhatItIs: "Exercise that strengthens your heart and improves endurance.",
		DoNow: []string{
			"Start with 20-30 minutes of moderate cardio 3-4 times per week",
			"Choose activities you enjoy: walking, running, cycling, swimming, dancing",
			"Warm up for 5-10 minutes before intense exercise",
			"Cool down and stretch after your workout",
		},
		WatchFor: []string{
			"Chest pain, dizziness, or difficulty breathing",
			"Excessive fatigue that doesn't improve with rest",
		},
		WhenToSee: []string{
			"Any concerning symptoms during exercise",
			"If you have heart conditions or breathing problems",
		},
		Notes: []string{
			"Build up gradually - don't overdo it in the beginning",
			"Stay hydrated before, during, and after exercise",
			"Listen to your body and rest when needed",
		},
	}

	strengthPlan = Sections{
		Title:    "Strength Training Basics",
		WhatItIs: "Exercise that builds muscle strength and bone density.",
		DoNow: []string{
			"Start with bodyweight exercises: squats, push-ups, planks, lunges",
			"Focus on proper form before adding weight",
			"Work all major muscle groups: legs, chest, back, arms, core",
			"Rest 1-2 days between strength training sessions",
		},
		WatchFor: []string{
			"Sharp pain during exercise",
			"Excessive muscle soreness that lasts more than 3 days",
		},
		WhenToSee: []string{
			"Persistent pain or injury",
			"If you have joint problems or other health conditions",
		},
		Notes: []string{
			"Proper form prevents injury and maximizes results",
			"Start light and gradually increase weight",
			"Include both pushing and pulling movements",
			"Don't skip leg day - work all muscle groups",
		},
	}

	beginnerPlan = Sections{
		Title:    "Getting Started with Exercise",
		WhatItIs: "A beginner-friendly approach to starting a regular exercise routine.",
		DoNow: []string{
			"Start with 10-15 minutes of light activity daily",
			"Try walking, gentle stretching, or basic bodyweight exercises",
			"Set realistic goals: aim for 3 days per week initially",
			"Choose activities you enjoy to build the habit",
		},
		WatchFor: []string{
			"Excessive fatigue or muscle soreness",
			"Any pain or discomfort during exercise",
		},
		WhenToSee: []string{
			"If you have health concerns or chronic conditions",
			"Persistent pain or unusual symptoms",
		},
		Notes: []string{
			"Consistency is more important than intensity",
			"Listen to your body and progress gradually",
			"Consider consulting a fitness professional for guidance",
			"Remember: any movement is better than no movement",
			measurementHint,
		},
	}

	generalExercisePlan = Sections{
		Title:    "General Exercise Guidelines",
		WhatItIs: "Safe, effective exercise recommendations for overall health and fitness.",
		DoNow: []string{
			"Aim for 150 minutes of moderate exercise per week",
			"Include both cardio and strength training",
			"Start with activities you enjoy: walking, dancing, sports",
			"Warm up before and cool down after exercise",
		},
		WatchFor: []string{
			"Chest pain, dizziness, or difficulty breathing",
			"Excessive fatigue or muscle soreness",
			"Joint pain or injury",
		},
		WhenToSee: []string{
			"Any concerning symptoms during exercise",
			"If you have health conditions or concerns",
		},
		Notes: []string{
			"Start slowly and gradually increase intensity",
			"Stay hydrated and listen to your body",
			"Consistency is key - even 10 minutes is better than nothing",
			measurementHint,
		},
	}
)

var bmiPlans = map[measure.Category]Sections{
	measure.Underweight: {
		Title:    "Exercise & Nutrition Plan for Healthy Weight Gain",
		WhatItIs: "Based on your measurements, you're in the underweight range. Focus on building healthy muscle mass and increasing calorie intake safely.",
		DoNow: []string{
			"Strength training 3-4 times per week: squats, push-ups, planks, lunges",
			"Light cardio 2-3 times per week: walking, swimming, cycling",
			"Eat 5-6 small meals throughout the day",
			"Include protein with every meal: eggs, chicken, fish, beans, nuts",
		},
		WatchFor: []string{
			"Excessive fatigue or feeling weak",
			"Loss of appetite or difficulty eating",
			"Joint pain during strength training",
		},
		WhenToSee: []string{
			"If you have difficulty gaining weight despite following the plan",
			"If you experience persistent fatigue or weakness",
		},
		Notes: []string{
			"Focus on strength training to build muscle mass",
			"Eat calorie-dense foods: nuts, avocados, olive oil, whole grains",
			"Stay hydrated and get adequate sleep for muscle recovery",
			"Consider working with a nutritionist for personalized meal planning",
		},
	},
	measure.Normal: {
		Title:    "Exercise & Nutrition Plan for Healthy Maintenance",
		WhatItIs: "Based on your measurements, you're in the healthy weight range. Maintain your current routine with balanced exercise and nutrition.",
		DoNow: []string{
			"Mix cardio and strength training: 3-4 times per week",
			"Include variety: running, cycling, swimming, weight training",
			"Eat balanced meals with all food groups",
			"Stay hydrated: 8-10 glasses of water daily",
		},
		WatchFor: []string{
			"Signs of overtraining: excessive fatigue, mood changes",
			"Weight fluctuations outside your normal range",
		},
		WhenToSee: []string{
			"If you notice significant weight changes",
			"If you have concerns about your fitness routine",
		},
		Notes: []string{
			"Maintain your current healthy habits",
			"Include fruits, vegetables, lean proteins, and whole grains",
			"Listen to your body and adjust intensity as needed",
			"Regular health check-ups to monitor your progress",
		},
	},
	measure.Overweight: {
		Title:    "Exercise & Nutrition Plan for Healthy Weight Management",
		WhatItIs: "Based on your measurements, you're in the overweight range. Focus on moderate cardio and strength training with balanced nutrition.",
		DoNow: []string{
			"Moderate cardio 4-5 times per week: brisk walking, cycling, swimming",
			"Strength training 2-3 times per week: bodyweight exercises",
			"Eat smaller, more frequent meals",
			"Focus on lean proteins, vegetables, and whole grains",
		},
		WatchFor: []string{
			"Joint pain during exercise",
			"Dizziness or excessive fatigue",
			"Difficulty maintaining the exercise routine",
		},
		WhenToSee: []string{
			"If you experience persistent joint pain",
			"If you have heart conditions or other health concerns",
		},
		Notes: []string{
			"Start with low-impact activities to protect your joints",
			"Reduce portion sizes and avoid processed foods",
			"Stay consistent with your routine for best results",
			"Consider working with a fitness professional for guidance",
		},
	},
	measure.Obese: {
		Title:    "Exercise & Nutrition Plan for Safe Weight Management",
		WhatItIs: "Based on your measurements, you're in the obese range. Start with low-impact activities and consult a healthcare provider before beginning.",
		DoNow: []string{
			"Low-impact cardio: walking, swimming, cycling (start with 10-15 minutes)",
			"Gentle strength training: light weights, resistance bands",
			"Eat regular, balanced meals with portion control",
			"Stay hydrated and get adequate sleep",
		},
		WatchFor: []string{
			"Chest pain, dizziness, or difficulty breathing",
			"Joint pain or excessive fatigue",
			"Any concerning symptoms during exercise",
		},
		WhenToSee: []string{
			"Before starting any exercise program",
			"If you experience any concerning symptoms",
			"For personalized nutrition and exercise guidance",
		},
		Notes: []string{
			"Start slowly and gradually increase intensity",
			"Focus on whole foods and avoid processed foods",
			"Consider working with healthcare professionals",
			"Set realistic goals and celebrate small victories",
		},
	},
}

// Exercise picks an exercise plan from the goal words in input, falling
// back to a plan for the BMI category of any measurements it mentions.
func Exercise(input string) string {
	t := strings.ToLower(input)
	category := measure.Parse(t).Category()

	switch {
	case containsAny(t, "weight loss", "lose weight", "burn fat"):
		if category == measure.Overweight || category == measure.Obese {
			return FormatSections(weightLossPlan)
		}
		return FormatSections(weightManagementPlan)
	case containsAny(t, "gain weight", "build muscle", "bulk up"):
		return FormatSections(muscleBuildingPlan)
	case containsAny(t, "cardio", "running", "cycling", "swimming"):
		return FormatSections(cardioPlan)
	case containsAny(t, "strength", "weight training", "gym"):
		return FormatSections(strengthPlan)
	case containsAny(t, "beginner", "start", "new to exercise"):
		return FormatSections(beginnerPlan)
	}

	if plan, ok := bmiPlans[category]; ok {
		return FormatSections(plan)
	}
	return FormatSections(generalExercisePlan)
}

func containsAny(t string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
