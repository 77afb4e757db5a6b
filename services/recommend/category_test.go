package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Belgian Waffles", "waffle"},
		{"Blueberry Pancakes", "pancake"},
		{"Everything Bagel", "bagel"},
		{"French Toast", "bread"},
		{"Whole Wheat Bread", "bread"},
		{"Cheese Omelette", "eggs"},
		{"Scrambled Eggs", "eggs"},
		{"Greek Yogurt", "yogurt"},
		{"Steel Cut Oats", "oatmeal"},
		{"Caesar Salad", "salad"},
		{"Tomato Soup", "soup"},
		{"Turkey Sandwich", "sandwich"},
		{"Veggie Wrap", "sandwich"},
		{"Margherita Pizza", "pizza"},
		{"Black Bean Burger", "burger"},
		{"Roasted Carrots", "other"},
		{"", "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferCategory(tt.name), tt.name)
	}
}

func TestInferCategoryDeterministic(t *testing.T) {
	// Same name twice, same answer.
	for _, name := range []string{"Egg Salad Sandwich", "Waffle Breakfast Pizza", "random"} {
		assert.Equal(t, InferCategory(name), InferCategory(name))
	}
}

func TestInferCategoryFirstMatchWins(t *testing.T) {
	// "waffle" is declared before "pizza", so a name hitting both resolves
	// to waffle.
	assert.Equal(t, "waffle", InferCategory("Waffle Breakfast Pizza"))
	// "eggs" before "salad".
	assert.Equal(t, "eggs", InferCategory("Egg Salad Sandwich"))
}
