package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-backend/entity"
	"restaurant-backend/repository"
)

var ErrDishNotFound = errors.New("dish not found")

// CartLine is one client-supplied (dish, quantity, note) tuple.
type CartLine struct {
	DishID   uuid.UUID `json:"dishId" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
	Note     string    `json:"note"`
}

// MenuService owns the dish catalog and expands carts into ingredient
// demand.
type MenuService struct {
	dishes *repository.FileStore[entity.Dish]

	// skipMissingDish preserves the legacy behavior of dropping cart
	// lines whose dish id no longer resolves instead of rejecting the
	// order.
	skipMissingDish bool
}

func NewMenuService(dishes *repository.FileStore[entity.Dish], skipMissingDish bool) *MenuService {
	return &MenuService{dishes: dishes, skipMissingDish: skipMissingDish}
}

func (s *MenuService) ListDishes() []entity.Dish {
	return s.dishes.GetAll()
}

func (s *MenuService) GetDish(id uuid.UUID) (*entity.Dish, bool) {
	d, ok := s.dishes.GetByID(id)
	if !ok {
		return nil, false
	}
	return &d, true
}

func (s *MenuService) AddDish(name, description string, price decimal.Decimal, category entity.DishCategory, recipe []entity.RecipeItem) (*entity.Dish, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if price.IsNegative() {
		return nil, errors.New("price cannot be negative")
	}
	if !category.Valid() {
		return nil, errors.New("unknown dish category")
	}
	for _, ri := range recipe {
		if !ri.QuantityRequired.IsPositive() {
			return nil, errors.New("recipe quantities must be positive")
		}
	}

	dish := entity.NewDish(name, description, price, category, recipe)
	if err := s.dishes.Add(*dish); err != nil {
		return nil, err
	}
	return dish, nil
}

// ExpandDemand turns a cart into the aggregated ingredient demand mapping,
// summing requirements across dishes that share an ingredient. A line
// whose dish does not resolve fails the whole cart unless the legacy
// skip mode is on.
func (s *MenuService) ExpandDemand(cart []CartLine) (map[uuid.UUID]IngredientDemand, error) {
	demand := make(map[uuid.UUID]IngredientDemand)
	for _, line := range cart {
		dish, ok := s.dishes.GetByID(line.DishID)
		if !ok {
			if s.skipMissingDish {
				continue
			}
			return nil, ErrDishNotFound
		}

		qty := decimal.NewFromInt(int64(line.Quantity))
		for _, ri := range dish.Recipe {
			d, seen := demand[ri.IngredientID]
			if !seen {
				d = IngredientDemand{
					IngredientName: ri.IngredientName,
					DishName:       dish.Name,
					Quantity:       decimal.Zero,
				}
			}
			d.Quantity = d.Quantity.Add(ri.QuantityRequired.Mul(qty))
			demand[ri.IngredientID] = d
		}
	}
	return demand, nil
}
