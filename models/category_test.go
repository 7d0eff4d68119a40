package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorySlug(t *testing.T) {
	assert.Equal(t, "product-design", CategorySlug("Product Design"))
	assert.Equal(t, "execution-metrics", CategorySlug("Execution & Metrics"))
	assert.Equal(t, "estimation-pricing", CategorySlug("Estimation & Pricing"))
	assert.Equal(t, "other", CategorySlug("Other"))
}

func TestCategoryForSlug(t *testing.T) {
	// Every label maps to a slug and back.
	for _, name := range Categories {
		assert.Equal(t, name, CategoryForSlug(CategorySlug(name)))
	}

	// Unknown slugs pass through unchanged.
	assert.Equal(t, "no-such-category", CategoryForSlug("no-such-category"))
}
