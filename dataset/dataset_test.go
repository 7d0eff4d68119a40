package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCompany(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"FB", "Meta"},
		{"Facebook", "Meta"},
		{"google", "Google"},
		{"Amazon ", "Amazon"},
		{"", "Unknown"},
		{"   ", "Unknown"},
		{"Acme Rockets", "Acme Rockets"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCompany(tt.input), "input %q", tt.input)
	}
}

func TestCategorizeQuestion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// "system design" must land in Technical, not Product Design.
		{"System Design", "Technical"},
		{"Behavioral", "Behavioral"},
		{"Leadership & Drive", "Behavioral"},
		{"Market Sizing / Estimation", "Estimation & Pricing"},
		{"Product Execution", "Execution & Metrics"},
		{"Analytical Thinking", "Execution & Metrics"},
		{"Product Strategy", "Product Strategy"},
		{"Product Sense", "Product Design"},
		{"Product Improvement", "Product Design"},
		{"", "Other"},
		{"Something Unrecognized", "Other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeQuestion(tt.input), "input %q", tt.input)
	}
}
