package advice

import "fmt"

const capabilities = `I'm Your Care Pal, your friendly wellness companion. I can help with:

• First aid tips for minor injuries  
• Common illnesses (colds, headaches, etc.)  
• Nutrition/hydration advice  
• Exercise recommendations based on your weight/height  
• Stress management techniques  `

// TimeOfDay maps an hour (0-23) to the salutation used in greetings.
func TimeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 17:
		return "Good afternoon"
	case hour >= 17 && hour < 21:
		return "Good evening"
	default:
		return "Hello"
	}
}

// Greeting welcomes the user. With a name it addresses them directly,
// otherwise it asks for one.
func Greeting(name string, hour int) string {
	salutation := TimeOfDay(hour)
	if name != "" {
		return fmt.Sprintf("%s, %s! 👋\n\n%s\n\nWhat can I help you with today, %s?\n\n%s",
			salutation, name, capabilities, name, Disclaimer)
	}
	return fmt.Sprintf("%s! 👋\n\n%s\n\nWhat's your name? And what can I help you with today?\n\n%s",
		salutation, capabilities, Disclaimer)
}
