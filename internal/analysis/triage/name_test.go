package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"My name is Maria", "Maria", true},
		{"my name's leo", "Leo", true},
		{"I'm called Ana", "Ana", true},
		{"i’m Jose", "Jose", true},
		{"I am Rafael and I have a cough", "Rafael", true},
		{"I'm so tired, call me Ben", "Ben", true},
		{"you can call me kim", "Kim", true},
		{"I go by Sam", "Sam", true},
		{"I'm 70kg and 170cm", "", false},
		{"I am 5 ft tall, my name is Joy", "", false},
		{"I'm feeling sick", "", false},
		{"I am not okay", "", false},
		{"what should I eat", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ExtractName(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
