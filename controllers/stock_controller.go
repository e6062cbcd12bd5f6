package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restaurant-backend/pkg/resp"
	"restaurant-backend/services"
)

type CreateIngredientReq struct {
	Name          string          `json:"name" binding:"required"`
	Unit          string          `json:"unit" binding:"required"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
}
type RestockReq struct {
	// Absolute quantity: restocking overwrites, it does not add. Zero is
	// a valid target, so no required binding here.
	StockQuantity decimal.Decimal `json:"stockQuantity"`
}

type StockController struct{ Stock *services.StockService }

func NewStockController(stock *services.StockService) *StockController {
	return &StockController{Stock: stock}
}

// GET /manager/ingredients
func (sc *StockController) List(c *gin.Context) {
	resp.OK(c, gin.H{"items": sc.Stock.ListIngredients()})
}

// POST /manager/ingredients
func (sc *StockController) Create(c *gin.Context) {
	var req CreateIngredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ing, err := sc.Stock.CreateIngredient(req.Name, req.Unit, req.StockQuantity)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, ing)
}

// PUT /manager/ingredients/:id/stock
func (sc *StockController) Restock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid ingredient id")
		return
	}
	var req RestockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ing, err := sc.Stock.Restock(id, req.StockQuantity)
	if err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, ing)
}
