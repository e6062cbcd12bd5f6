package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"restaurant-backend/entity"
	"restaurant-backend/pkg/logger"
	"restaurant-backend/repository"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrBelowMinimum  = errors.New("order total below delivery minimum")
)

// OrderNotifier receives order lifecycle events (the websocket feed
// implements it). A nil notifier is fine.
type OrderNotifier interface {
	OrderCreated(o *entity.Order)
	OrderStatusChanged(o *entity.Order)
}

// OrderService is the placement orchestrator: it resolves the delivery
// fee, expands the cart into ingredient demand, commits the stock
// deduction and only then materializes and persists the order. Stock
// commitment strictly precedes order visibility, so an order can never be
// observed unless its ingredient cost has already been deducted.
type OrderService struct {
	orders   *repository.FileStore[entity.Order]
	menu     *MenuService
	stock    *StockService
	settings *SettingsService
	notifier OrderNotifier
}

func NewOrderService(
	orders *repository.FileStore[entity.Order],
	menu *MenuService,
	stock *StockService,
	settings *SettingsService,
	notifier OrderNotifier,
) *OrderService {
	return &OrderService{
		orders:   orders,
		menu:     menu,
		stock:    stock,
		settings: settings,
		notifier: notifier,
	}
}

type resolvedLine struct {
	dish *entity.Dish
	qty  int
	note string
}

// PlaceOrder runs the two-phase placement protocol. Any failure before the
// stock commit leaves the ledger and the order collection byte-for-byte
// unchanged; there is no compensating rollback because nothing is ever
// partially applied.
func (s *OrderService) PlaceOrder(clientID uuid.UUID, cart []CartLine, isDelivery bool) (*entity.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	cfg, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	fee := decimal.Zero
	if isDelivery {
		fee = cfg.DeliveryCost
	}

	// Resolve the cart up front; in legacy mode lines with a vanished
	// dish are dropped instead of failing the order.
	lines := make([]resolvedLine, 0, len(cart))
	subtotal := decimal.Zero
	for _, line := range cart {
		if line.Quantity < 1 {
			return nil, entity.ErrInvalidQuantity
		}
		dish, ok := s.menu.GetDish(line.DishID)
		if !ok {
			if s.menu.skipMissingDish {
				continue
			}
			return nil, ErrDishNotFound
		}
		lines = append(lines, resolvedLine{dish: dish, qty: line.Quantity, note: line.Note})
		subtotal = subtotal.Add(dish.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	if isDelivery && subtotal.LessThan(cfg.MinimumOrderAmount) {
		return nil, ErrBelowMinimum
	}

	demand, err := s.menu.ExpandDemand(cart)
	if err != nil {
		return nil, err
	}

	if err := s.stock.ReserveAndCommit(demand); err != nil {
		var short *InsufficientStockError
		if errors.As(err, &short) {
			logger.Log.Info("order rejected, insufficient stock",
				zap.String("clientId", clientID.String()),
				zap.String("detail", short.Error()),
			)
		}
		return nil, err
	}

	order := entity.NewOrder(clientID, isDelivery, fee)
	for _, l := range lines {
		if err := order.AddItem(l.dish, l.qty, l.note); err != nil {
			return nil, err
		}
	}

	if err := s.orders.Add(*order); err != nil {
		return nil, err
	}

	logger.Log.Info("order placed",
		zap.String("orderId", order.ID.String()),
		zap.String("clientId", clientID.String()),
		zap.String("total", order.TotalPrice.String()),
	)
	if s.notifier != nil {
		s.notifier.OrderCreated(order)
	}
	return order, nil
}

// UpdateStatus applies one state-machine transition and persists it.
func (s *OrderService) UpdateStatus(orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	order, ok := s.orders.GetByID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	if err := order.Transition(status); err != nil {
		return nil, err
	}
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	logger.Log.Info("order status changed",
		zap.String("orderId", order.ID.String()),
		zap.String("status", string(order.Status)),
	)
	if s.notifier != nil {
		s.notifier.OrderStatusChanged(&order)
	}
	return &order, nil
}

func (s *OrderService) ListForClient(clientID uuid.UUID) []entity.Order {
	var out []entity.Order
	for _, o := range s.orders.GetAll() {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out
}

func (s *OrderService) ListAll() []entity.Order {
	return s.orders.GetAll()
}

func (s *OrderService) Detail(orderID uuid.UUID) (*entity.Order, error) {
	order, ok := s.orders.GetByID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

func (s *OrderService) Delete(orderID uuid.UUID) error {
	if _, ok := s.orders.GetByID(orderID); !ok {
		return ErrOrderNotFound
	}
	return s.orders.Delete(orderID)
}
