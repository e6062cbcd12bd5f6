package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/entity"
)

func TestMenuService_AddDishValidation(t *testing.T) {
	env := newTestEnv(t, false)
	flour := env.addIngredient(t, "Flour", "kg", "1")

	tests := []struct {
		name     string
		dishName string
		price    string
		category entity.DishCategory
		recipe   []entity.RecipeItem
		wantErr  bool
	}{
		{"valid", "Pizza", "20", entity.CategoryMainCourse, []entity.RecipeItem{needs(flour, "0.3")}, false},
		{"valid_empty_recipe", "Water", "1", entity.CategoryBeverage, nil, false},
		{"blank_name", "  ", "20", entity.CategoryMainCourse, nil, true},
		{"negative_price", "Pizza", "-1", entity.CategoryMainCourse, nil, true},
		{"bad_category", "Pizza", "20", entity.DishCategory("Snack"), nil, true},
		{"zero_recipe_qty", "Pizza", "20", entity.CategoryMainCourse, []entity.RecipeItem{needs(flour, "0")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.menu.AddDish(tt.dishName, "", dec(t, tt.price), tt.category, tt.recipe)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMenuService_ExpandDemandAggregatesSharedIngredients(t *testing.T) {
	env := newTestEnv(t, false)
	flour := env.addIngredient(t, "Flour", "kg", "10")
	tomato := env.addIngredient(t, "Tomato", "kg", "10")

	pizza := env.addDish(t, "Pizza", "20", needs(flour, "0.3"), needs(tomato, "0.1"))
	bread := env.addDish(t, "Bread", "5", needs(flour, "0.2"))

	demand, err := env.menu.ExpandDemand([]CartLine{
		{DishID: pizza.ID, Quantity: 2},
		{DishID: bread.ID, Quantity: 3},
	})
	require.NoError(t, err)
	require.Len(t, demand, 2)

	// 2*0.3 from pizzas + 3*0.2 from bread
	assert.True(t, demand[flour.ID].Quantity.Equal(dec(t, "1.2")))
	assert.True(t, demand[tomato.ID].Quantity.Equal(dec(t, "0.2")))
	assert.Equal(t, "Flour", demand[flour.ID].IngredientName)
}

func TestMenuService_ExpandDemandMissingDish(t *testing.T) {
	t.Run("strict_mode_rejects", func(t *testing.T) {
		env := newTestEnv(t, false)
		_, err := env.menu.ExpandDemand([]CartLine{{DishID: uuid.New(), Quantity: 1}})
		assert.ErrorIs(t, err, ErrDishNotFound)
	})

	t.Run("legacy_mode_skips", func(t *testing.T) {
		env := newTestEnv(t, true)
		flour := env.addIngredient(t, "Flour", "kg", "10")
		pizza := env.addDish(t, "Pizza", "20", needs(flour, "0.3"))

		demand, err := env.menu.ExpandDemand([]CartLine{
			{DishID: uuid.New(), Quantity: 5},
			{DishID: pizza.ID, Quantity: 1},
		})
		require.NoError(t, err)
		require.Len(t, demand, 1)
		assert.True(t, demand[flour.ID].Quantity.Equal(dec(t, "0.3")))
	})
}

func TestMenuService_ExpandDemandEmptyRecipe(t *testing.T) {
	env := newTestEnv(t, false)
	water := env.addDish(t, "Water", "1")

	demand, err := env.menu.ExpandDemand([]CartLine{{DishID: water.ID, Quantity: 4}})
	require.NoError(t, err)
	assert.Empty(t, demand, "a dish with no recipe makes no stock demand")
}
