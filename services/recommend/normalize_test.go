package recommend

import (
	"testing"

	"github.com/jiamdoescs/AnnenBites/models"

	"github.com/stretchr/testify/assert"
)

func TestParseListField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Italian", []string{"italian"}},
		{"commas and spaces", "Italian, Indian ", []string{"italian", "indian"}},
		{"semicolons", "Vegetarian; Gluten Free", []string{"vegetarian", "gluten free"}},
		{"drops empties", "a,, ,b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseListField(tt.input))
		})
	}
}

func TestDietaryFlags(t *testing.T) {
	assert.Empty(t, DietaryFlags(nil))

	prefs := &models.UserPreferences{DietaryRestrictions: "Vegetarian, Gluten-Free"}
	flags := DietaryFlags(prefs)
	assert.True(t, flags["vegetarian"])
	assert.True(t, flags["gluten-free"])
	assert.False(t, flags["vegan"])
}
