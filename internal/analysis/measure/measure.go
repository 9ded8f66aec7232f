// Package measure pulls body weight and height out of free text and maps
// them to a BMI category.
package measure

import (
	"regexp"
	"strconv"
	"strings"
)

// Category is a BMI band.
type Category string

const (
	Unknown     Category = ""
	Underweight Category = "underweight"
	Normal      Category = "normal"
	Overweight  Category = "overweight"
	Obese       Category = "obese"
)

const (
	kgPerPound    = 0.453592
	metresPerFoot = 0.3048
	metresPerInch = 0.0254
)

var (
	anyUnitRe = regexp.MustCompile(`\d+\s*(kg|kgs|pounds?|lbs?|lb|cm|m|feet?|ft|inches?|in)`)
	weightRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(kgs?|pounds?|lbs?)`)
	heightRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(cm|m|feet?|ft|inches?|in)`)
	inchesRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:inches?|in)`)
)

// Body holds whatever measurements were found. Zero means absent.
type Body struct {
	WeightKg float64
	HeightM  float64
}

// HasMeasurement reports whether text contains a number followed by a
// weight or height unit.
func HasMeasurement(text string) bool {
	return anyUnitRe.MatchString(strings.ToLower(text))
}

// Parse extracts the first weight and the first height mentioned in text.
func Parse(text string) Body {
	t := strings.ToLower(text)
	var body Body

	if m := weightRe.FindStringSubmatch(t); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			if strings.HasPrefix(m[2], "kg") {
				body.WeightKg = value
			} else {
				body.WeightKg = value * kgPerPound
			}
		}
	}

	if m := heightRe.FindStringSubmatch(t); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch m[2] {
			case "cm":
				body.HeightM = value / 100
			case "m":
				body.HeightM = value
			case "ft", "foot", "feet":
				body.HeightM = value * metresPerFoot
				if in := inchesRe.FindStringSubmatch(t); in != nil {
					if inches, err := strconv.ParseFloat(in[1], 64); err == nil {
						body.HeightM += inches * metresPerInch
					}
				}
			default:
				body.HeightM = value * metresPerInch
			}
		}
	}

	return body
}

// BMI returns weight / height² when both are known.
func (b Body) BMI() (float64, bool) {
	if b.WeightKg <= 0 || b.HeightM <= 0 {
		return 0, false
	}
	return b.WeightKg / (b.HeightM * b.HeightM), true
}

// Category maps the BMI onto the WHO adult bands.
func (b Body) Category() Category {
	bmi, ok := b.BMI()
	if !ok {
		return Unknown
	}
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}
