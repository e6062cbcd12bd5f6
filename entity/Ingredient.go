package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ingredient stock is mutated only through the stock service; StockQuantity
// is always non-negative.
type Ingredient struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
}

func NewIngredient(name, unit string, initialStock decimal.Decimal) *Ingredient {
	return &Ingredient{
		ID:            uuid.New(),
		Name:          name,
		Unit:          unit,
		StockQuantity: initialStock,
	}
}

func (i Ingredient) EntityID() uuid.UUID { return i.ID }
