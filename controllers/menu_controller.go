package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-backend/entity"
	"restaurant-backend/pkg/resp"
	"restaurant-backend/services"
)

type RecipeItemIn struct {
	IngredientID uuid.UUID       `json:"ingredientId" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
}
type CreateDishReq struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price" binding:"required"`
	Category    entity.DishCategory `json:"category" binding:"required"`
	Recipe      []RecipeItemIn      `json:"recipe"`
}

type MenuController struct {
	Menu  *services.MenuService
	Stock *services.StockService
}

func NewMenuController(menu *services.MenuService, stock *services.StockService) *MenuController {
	return &MenuController{Menu: menu, Stock: stock}
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	resp.OK(c, gin.H{"items": mc.Menu.ListDishes()})
}

// GET /menu/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	dish, ok := mc.Menu.GetDish(id)
	if !ok {
		resp.NotFound(c, "dish not found")
		return
	}
	resp.OK(c, dish)
}

// POST /manager/menu
func (mc *MenuController) Create(c *gin.Context) {
	var req CreateDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// Resolve each recipe line against live stock so the denormalized
	// ingredient name is snapshotted at dish creation.
	recipe := make([]entity.RecipeItem, 0, len(req.Recipe))
	for _, in := range req.Recipe {
		ing, ok := mc.Stock.GetIngredient(in.IngredientID)
		if !ok {
			resp.BadRequest(c, "unknown ingredient in recipe")
			return
		}
		recipe = append(recipe, entity.RecipeItem{
			IngredientID:     ing.ID,
			IngredientName:   ing.Name,
			QuantityRequired: in.Quantity,
		})
	}

	dish, err := mc.Menu.AddDish(req.Name, req.Description, req.Price, req.Category, recipe)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, dish)
}
