package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		weightKg float64
		heightM  float64
	}{
		{"metric", "I'm 70kg and 170cm", 70, 1.70},
		{"metric with spaces", "weight 82.5 kg, height 1.8 m", 82.5, 1.8},
		{"pounds", "I weigh 150lbs", 150 * kgPerPound, 0},
		{"pounds spelled out", "about 200 pounds", 200 * kgPerPound, 0},
		{"feet and inches", "I am 5 ft 8 in tall and 60 kg", 60, 5*metresPerFoot + 8*metresPerInch},
		{"feet only", "6 feet", 0, 6 * metresPerFoot},
		{"inches only", "68 inches", 0, 68 * metresPerInch},
		{"nothing", "how do I stay healthy?", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.InDelta(t, tt.weightKg, got.WeightKg, 0.0001)
			assert.InDelta(t, tt.heightM, got.HeightM, 0.0001)
		})
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		body Body
		want Category
	}{
		{Body{WeightKg: 45, HeightM: 1.70}, Underweight},
		{Body{WeightKg: 65, HeightM: 1.70}, Normal},
		{Body{WeightKg: 80, HeightM: 1.70}, Overweight},
		{Body{WeightKg: 100, HeightM: 1.70}, Obese},
		{Body{WeightKg: 70}, Unknown},
		{Body{HeightM: 1.7}, Unknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.body.Category(), "body %+v", tt.body)
	}
}

func TestHasMeasurement(t *testing.T) {
	assert.True(t, HasMeasurement("I'm 70kg"))
	assert.True(t, HasMeasurement("170 CM"))
	assert.False(t, HasMeasurement("I'm Maria"))
	assert.False(t, HasMeasurement("I have 2 kids"))
}
