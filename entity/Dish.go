package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeItem is one ingredient requirement for a single unit of a dish.
// IngredientName is denormalized for display; the live quantity is always
// resolved through the stock service by id.
type RecipeItem struct {
	IngredientID     uuid.UUID       `json:"ingredientId"`
	IngredientName   string          `json:"ingredientName"`
	QuantityRequired decimal.Decimal `json:"quantityRequired"`
}

// Dish owns its recipe. A dish with an empty recipe is always available.
type Dish struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    DishCategory    `json:"category"`
	Recipe      []RecipeItem    `json:"recipe"`
}

func NewDish(name, description string, price decimal.Decimal, category DishCategory, recipe []RecipeItem) *Dish {
	if recipe == nil {
		recipe = []RecipeItem{}
	}
	return &Dish{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Recipe:      recipe,
	}
}

func (d Dish) EntityID() uuid.UUID { return d.ID }
