package advice

import (
	"strings"
)

type dayMeals struct {
	day       string
	breakfast string
	lunch     string
	dinner    string
}

var weeklyPlan = []dayMeals{
	{"Monday", "Arroz caldo (rice porridge) with chicken, boiled egg, and calamansi", "Grilled bangus (milkfish) with ensaladang talong, brown rice", "Sinigang na hipon (shrimp soup) with kangkong and brown rice"},
	{"Tuesday", "Tocino with garlic rice, fried egg, and atchara", "Chicken adobo with steamed vegetables and brown rice", "Ginataang gulay (vegetables in coconut milk) with grilled fish"},
	{"Wednesday", "Champorado (chocolate rice porridge) with tuyo (dried fish)", "Pancit bihon with mixed vegetables and lean meat", "Tinola (chicken soup) with malunggay leaves and brown rice"},
	{"Thursday", "Tapsilog (beef tapa, sinangag, itlog) with fresh tomatoes", "Grilled tilapia with ensaladang mangga and brown rice", "Pinakbet (mixed vegetables) with grilled pork and brown rice"},
	{"Friday", "Longganisa with garlic rice, fried egg, and fresh fruits", "Lumpiang sariwa (fresh spring rolls) with peanut sauce", "Sinigang na baboy (pork soup) with vegetables and brown rice"},
	{"Saturday", "Tocino with garlic rice, fried egg, and fresh mango", "Grilled chicken inasal with atchara and brown rice", "Kare-kare (oxtail stew) with bagoong and brown rice"},
	{"Sunday", "Silog (garlic rice and egg) with your choice of meat", "Lechon kawali with ensaladang talong and brown rice", "Nilagang baka (beef soup) with vegetables and brown rice"},
}

var foodGroups = []struct {
	name  string
	foods string
}{
	{"Proteins", "Bangus (milkfish), tilapia, chicken, pork, beef, eggs, tokwa (tofu), monggo (mung beans)"},
	{"Carbohydrates", "Brown rice, kamote (sweet potato), saba (banana), oats, whole grain bread, fruits"},
	{"Vegetables", "Kangkong, malunggay, talong (eggplant), okra, ampalaya (bitter gourd), tomatoes, leafy greens"},
	{"Fats", "Coconut oil, olive oil, nuts, seeds, fatty fish (bangus, tilapia), avocado"},
	{"Dairy", "Fresh milk, keso (cheese), yogurt (in moderation)"},
}

var hydrationTips = []string{
	"Drink 8-10 glasses of water daily (2-2.5 liters)",
	"Start your day with a glass of water",
	"Drink water before, during, and after exercise",
	"Include hydrating foods: watermelon, cucumber, oranges",
	"Limit caffeine and alcohol as they can dehydrate",
}

// Nutrition renders the nutrition and hydration guide with a weekly
// Filipino meal plan.
func Nutrition() string {
	var plan strings.Builder
	plan.WriteString("**Weekly Healthy Meal Plan (Philippine Cuisine):**\n\n")
	for _, d := range weeklyPlan {
		plan.WriteString("**" + d.day + ":**\n")
		plan.WriteString("**Breakfast:** " + d.breakfast + "\n")
		plan.WriteString("**Lunch:** " + d.lunch + "\n")
		plan.WriteString("**Dinner:** " + d.dinner + "\n\n")
	}

	var foods strings.Builder
	foods.WriteString("**Healthy Food Categories (Philippine Foods):**\n\n")
	for _, g := range foodGroups {
		foods.WriteString("**" + g.name + ":** " + g.foods + "\n")
	}

	notes := []string{plan.String(), foods.String(), "**Hydration Tips:**"}
	notes = append(notes, hydrationTips...)
	notes = append(notes, "Remember: Balance is key - enjoy a variety of foods in moderation")

	return FormatSections(Sections{
		Title:    "Nutrition & Hydration Guide",
		WhatItIs: "Comprehensive nutrition advice with weekly meal plans and healthy food recommendations for optimal health and wellness.",
		DoNow: []string{
			"Plan your meals for the week using the provided meal plan",
			"Include a variety of colors in your meals (rainbow of fruits and vegetables)",
			"Eat regular meals and healthy snacks to maintain energy",
			"Stay hydrated throughout the day",
		},
		WatchFor: []string{
			"Signs of dehydration: dry mouth, dark urine, fatigue",
			"Food allergies or intolerances",
			"Sudden changes in appetite or weight",
		},
		WhenToSee: []string{
			"If you have specific dietary restrictions or allergies",
			"If you experience digestive issues with certain foods",
			"For personalized nutrition counseling",
		},
		Notes: notes,
	})
}
