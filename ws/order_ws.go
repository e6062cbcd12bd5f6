package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"restaurant-backend/entity"
	"restaurant-backend/pkg/logger"
)

// OrderEvent is what the staff feed pushes on every order lifecycle step.
type OrderEvent struct {
	Type      string             `json:"type"` // order.created | order.status
	OrderID   uuid.UUID          `json:"orderId"`
	ClientID  uuid.UUID          `json:"clientId"`
	Status    entity.OrderStatus `json:"status"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
}

// OrderHub fans order events out to every connected staff client.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					logger.Log.Warn("ws write error", zap.Error(err))
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderCreated implements services.OrderNotifier.
func (h *OrderHub) OrderCreated(o *entity.Order) {
	h.push(OrderEvent{
		Type: "order.created", OrderID: o.ID, ClientID: o.ClientID,
		Status: o.Status, Total: o.TotalPrice, CreatedAt: o.CreatedAt,
	})
}

// OrderStatusChanged implements services.OrderNotifier.
func (h *OrderHub) OrderStatusChanged(o *entity.Order) {
	h.push(OrderEvent{
		Type: "order.status", OrderID: o.ID, ClientID: o.ClientID,
		Status: o.Status, Total: o.TotalPrice, CreatedAt: o.CreatedAt,
	})
}

// push never blocks a placement on a slow feed; events overflowing the
// buffer are dropped.
func (h *OrderHub) push(ev OrderEvent) {
	select {
	case h.broadcast <- ev:
	default:
		logger.Log.Warn("order feed buffer full, event dropped",
			zap.String("orderId", ev.OrderID.String()))
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Serve upgrades the request and parks the connection on the hub until
// the client goes away.
func (h *OrderHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
