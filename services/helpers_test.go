package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"restaurant-backend/entity"
	"restaurant-backend/repository"
)

// testEnv wires real file stores in a temp dir; no mocks, the services are
// exercised against the same storage the binary uses.
type testEnv struct {
	dir string

	dishStore       *repository.FileStore[entity.Dish]
	orderStore      *repository.FileStore[entity.Order]
	ingredientStore *repository.FileStore[entity.Ingredient]
	userStore       *repository.FileStore[entity.User]
	settingsStore   *repository.FileStore[entity.RestaurantSettings]

	stock    *StockService
	menu     *MenuService
	settings *SettingsService
	orders   *OrderService
	auth     *AuthService
}

func newTestEnv(t *testing.T, skipMissingDish bool) *testEnv {
	t.Helper()
	dir := t.TempDir()

	dishes, err := repository.NewFileStore[entity.Dish](dir, "dishes.json")
	require.NoError(t, err)
	orders, err := repository.NewFileStore[entity.Order](dir, "orders.json")
	require.NoError(t, err)
	ingredients, err := repository.NewFileStore[entity.Ingredient](dir, "ingredients.json")
	require.NoError(t, err)
	users, err := repository.NewFileStore[entity.User](dir, "users.json")
	require.NoError(t, err)
	settingsStore, err := repository.NewFileStore[entity.RestaurantSettings](dir, "settings.json")
	require.NoError(t, err)

	env := &testEnv{
		dir:             dir,
		dishStore:       dishes,
		orderStore:      orders,
		ingredientStore: ingredients,
		userStore:       users,
		settingsStore:   settingsStore,
	}
	env.stock = NewStockService(ingredients)
	env.menu = NewMenuService(dishes, skipMissingDish)
	env.settings = NewSettingsService(settingsStore)
	env.orders = NewOrderService(orders, env.menu, env.stock, env.settings, nil)
	env.auth = NewAuthService(users, "test-secret", time.Hour)
	return env
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func (e *testEnv) addIngredient(t *testing.T, name, unit, stock string) *entity.Ingredient {
	t.Helper()
	ing, err := e.stock.CreateIngredient(name, unit, dec(t, stock))
	require.NoError(t, err)
	return ing
}

func (e *testEnv) addDish(t *testing.T, name, price string, recipe ...entity.RecipeItem) *entity.Dish {
	t.Helper()
	dish, err := e.menu.AddDish(name, "", dec(t, price), entity.CategoryMainCourse, recipe)
	require.NoError(t, err)
	return dish
}

func needs(ing *entity.Ingredient, qty string) entity.RecipeItem {
	d, _ := decimal.NewFromString(qty)
	return entity.RecipeItem{
		IngredientID:     ing.ID,
		IngredientName:   ing.Name,
		QuantityRequired: d,
	}
}

func (e *testEnv) stockOf(t *testing.T, ing *entity.Ingredient) decimal.Decimal {
	t.Helper()
	got, ok := e.stock.GetIngredient(ing.ID)
	require.True(t, ok)
	return got.StockQuantity
}
