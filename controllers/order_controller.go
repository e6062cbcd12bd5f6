package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-backend/entity"
	"restaurant-backend/pkg/resp"
	"restaurant-backend/services"
	"restaurant-backend/utils"
)

type CreateOrderReq struct {
	Items      []services.CartLine `json:"items" binding:"required,min=1,dive"`
	IsDelivery bool                `json:"isDelivery"`
}
type UpdateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

type OrderController struct{ Orders *services.OrderService }

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.PlaceOrder(uid, req.Items, req.IsDelivery)
	if err != nil {
		var short *services.InsufficientStockError
		switch {
		case errors.As(err, &short):
			resp.UnprocessableEntity(c, short.Error())
		case errors.Is(err, services.ErrDishNotFound),
			errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrBelowMinimum),
			errors.Is(err, entity.ErrInvalidQuantity):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	resp.OK(c, gin.H{"items": oc.Orders.ListForClient(utils.CurrentUserID(c))})
}

// GET /orders/:id (owner of the order, or manager)
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := oc.Orders.Detail(id)
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	if order.ClientID != utils.CurrentUserID(c) && utils.CurrentRole(c) != string(entity.RoleManager) {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, order)
}

// GET /manager/orders
func (oc *OrderController) ListAll(c *gin.Context) {
	resp.OK(c, gin.H{"items": oc.Orders.ListAll()})
}

// PATCH /manager/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		resp.BadRequest(c, "unknown status")
		return
	}

	order, err := oc.Orders.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, entity.ErrIllegalCancellation),
			errors.Is(err, entity.ErrIllegalTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}

// DELETE /manager/orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if err := oc.Orders.Delete(id); err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
