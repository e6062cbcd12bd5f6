package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"restaurant-backend/entity"
	"restaurant-backend/pkg/logger"
	"restaurant-backend/repository"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

// IngredientDemand is one entry of the demand mapping built from a cart:
// the total quantity required of a single ingredient, with the names
// needed for error reporting carried along.
type IngredientDemand struct {
	IngredientName string
	DishName       string
	Quantity       decimal.Decimal
}

// InsufficientStockError names the dish/ingredient pairs the ledger could
// not cover. The whole placement is aborted when it is returned.
type InsufficientStockError struct {
	Shortages []IngredientDemand
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (%s)", s.DishName, s.IngredientName))
	}
	return "insufficient stock for: " + strings.Join(parts, ", ")
}

// StockService is the stock ledger. All mutations run under one mutex so
// two concurrent placements can never jointly overdraw an ingredient:
// validation and commit of a cart are a single critical section.
type StockService struct {
	mu          sync.Mutex
	ingredients *repository.FileStore[entity.Ingredient]
}

func NewStockService(ingredients *repository.FileStore[entity.Ingredient]) *StockService {
	return &StockService{ingredients: ingredients}
}

// CheckAvailability reports whether the ingredient exists and holds at
// least the needed quantity.
func (s *StockService) CheckAvailability(ingredientID uuid.UUID, needed decimal.Decimal) bool {
	ing, ok := s.ingredients.GetByID(ingredientID)
	if !ok {
		return false
	}
	return ing.StockQuantity.GreaterThanOrEqual(needed)
}

// ReserveAndCommit validates the whole demand mapping first and only then
// decrements, so a mid-cart shortage can never leave some ingredients
// decremented and others not. All-or-nothing.
func (s *StockService) ReserveAndCommit(demand map[uuid.UUID]IngredientDemand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Phase 1: full validation scan, nothing is touched yet.
	var short []IngredientDemand
	for id, d := range demand {
		if !s.CheckAvailability(id, d.Quantity) {
			short = append(short, d)
		}
	}
	if len(short) > 0 {
		return &InsufficientStockError{Shortages: short}
	}

	// Phase 2: commit scan, every entry already validated.
	for id, d := range demand {
		ing, _ := s.ingredients.GetByID(id)
		ing.StockQuantity = ing.StockQuantity.Sub(d.Quantity)
		if err := s.ingredients.Update(ing); err != nil {
			return err
		}
		logger.Log.Debug("stock decremented",
			zap.String("ingredient", ing.Name),
			zap.String("remaining", ing.StockQuantity.String()),
		)
	}
	return nil
}

// Restock sets the ingredient's quantity to the given absolute value.
// This is a full overwrite, not an increment.
func (s *StockService) Restock(ingredientID uuid.UUID, newQuantity decimal.Decimal) (*entity.Ingredient, error) {
	if newQuantity.IsNegative() {
		return nil, errors.New("stock quantity cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ing, ok := s.ingredients.GetByID(ingredientID)
	if !ok {
		return nil, ErrIngredientNotFound
	}
	ing.StockQuantity = newQuantity
	if err := s.ingredients.Update(ing); err != nil {
		return nil, err
	}
	return &ing, nil
}

func (s *StockService) CreateIngredient(name, unit string, initialStock decimal.Decimal) (*entity.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if initialStock.IsNegative() {
		return nil, errors.New("stock quantity cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ing := entity.NewIngredient(name, unit, initialStock)
	if err := s.ingredients.Add(*ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *StockService) ListIngredients() []entity.Ingredient {
	return s.ingredients.GetAll()
}

func (s *StockService) GetIngredient(id uuid.UUID) (*entity.Ingredient, bool) {
	ing, ok := s.ingredients.GetByID(id)
	if !ok {
		return nil, false
	}
	return &ing, true
}
