package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmissibleVegetarian(t *testing.T) {
	flags := map[string]bool{"vegetarian": true}

	assert.False(t, IsAdmissible(item("Turkey Sandwich", "", nil, nil), flags))
	assert.False(t, IsAdmissible(item("Grilled Salmon", "", nil, nil), flags))
	assert.True(t, IsAdmissible(item("Garden Salad", "", nil, nil), flags))
	// Trigger words hide in tags too.
	assert.False(t, IsAdmissible(item("Mystery Bowl", "contains bacon", nil, nil), flags))
}

func TestIsAdmissibleVegan(t *testing.T) {
	flags := map[string]bool{"vegan": true}

	assert.False(t, IsAdmissible(item("Cheese Omelette", "", nil, nil), flags))
	assert.False(t, IsAdmissible(item("Chicken Wrap", "", nil, nil), flags))
	assert.False(t, IsAdmissible(item("Buttered Toast", "", nil, nil), flags))
	assert.True(t, IsAdmissible(item("Fruit Cup", "", nil, nil), flags))
}

func TestIsAdmissibleOtherFlagsNeverExclude(t *testing.T) {
	flags := map[string]bool{"gluten-free": true, "halal": true, "kosher": true}

	for _, name := range []string{"Turkey Sandwich", "Cheese Omelette", "Wheat Bread", "Beef Stew"} {
		assert.True(t, IsAdmissible(item(name, "", nil, nil), flags), name)
	}
}

func TestIsAdmissibleEmptyFlags(t *testing.T) {
	assert.True(t, IsAdmissible(item("Bacon Cheeseburger", "", nil, nil), map[string]bool{}))
	assert.True(t, IsAdmissible(item("Bacon Cheeseburger", "", nil, nil), nil))
}
