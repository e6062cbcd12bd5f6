package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrOrderLocked: items can be appended only while the order is Created.
	ErrOrderLocked = errors.New("order is locked for changes")
	// ErrIllegalCancellation: a completed order cannot be canceled.
	ErrIllegalCancellation = errors.New("completed order cannot be canceled")
	// ErrIllegalTransition covers every other disallowed status change.
	ErrIllegalTransition = errors.New("illegal order status transition")

	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Order is the aggregate root for a placed order. TotalPrice is derived:
// sum(unitPrice * quantity) over Items plus DeliveryFee, recomputed by the
// aggregate itself whenever items change.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	ClientID    uuid.UUID       `json:"clientId"`
	CreatedAt   time.Time       `json:"createdAt"`
	Status      OrderStatus     `json:"status"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	IsDelivery  bool            `json:"isDelivery"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Items       []OrderItem     `json:"items"`
}

// NewOrder starts an empty order in Created state. The delivery fee is a
// snapshot of the settings at creation time and is already part of the
// total of an empty delivery order.
func NewOrder(clientID uuid.UUID, isDelivery bool, deliveryFee decimal.Decimal) *Order {
	o := &Order{
		ID:          uuid.New(),
		ClientID:    clientID,
		CreatedAt:   time.Now().UTC(),
		Status:      StatusCreated,
		IsDelivery:  isDelivery,
		DeliveryFee: deliveryFee,
		Items:       []OrderItem{},
	}
	o.recalculateTotal()
	return o
}

func (o Order) EntityID() uuid.UUID { return o.ID }

// AddItem appends a line with the dish's current name and price snapshotted.
func (o *Order) AddItem(dish *Dish, quantity int, note string) error {
	if o.Status != StatusCreated {
		return ErrOrderLocked
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	o.Items = append(o.Items, OrderItem{
		DishID:    dish.ID,
		DishName:  dish.Name,
		UnitPrice: dish.Price,
		Quantity:  quantity,
		Note:      note,
	})
	o.recalculateTotal()
	return nil
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.LineTotal())
	}
	o.TotalPrice = total.Add(o.DeliveryFee)
}

func (o *Order) MarkPreparing() error {
	if o.Status != StatusCreated {
		return ErrIllegalTransition
	}
	o.Status = StatusPreparing
	return nil
}

func (o *Order) MarkReady() error {
	if o.Status != StatusPreparing {
		return ErrIllegalTransition
	}
	o.Status = StatusReady
	return nil
}

func (o *Order) Complete() error {
	if o.Status != StatusReady {
		return ErrIllegalTransition
	}
	o.Status = StatusCompleted
	return nil
}

// Cancel is allowed from any non-terminal state. Canceling a completed
// order is rejected explicitly, never ignored.
func (o *Order) Cancel() error {
	if o.Status == StatusCompleted {
		return ErrIllegalCancellation
	}
	if o.Status == StatusCanceled {
		return ErrIllegalTransition
	}
	o.Status = StatusCanceled
	return nil
}

// Transition dispatches to the matching state-machine method.
func (o *Order) Transition(next OrderStatus) error {
	switch next {
	case StatusPreparing:
		return o.MarkPreparing()
	case StatusReady:
		return o.MarkReady()
	case StatusCompleted:
		return o.Complete()
	case StatusCanceled:
		return o.Cancel()
	default:
		return ErrIllegalTransition
	}
}
