package ws

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub fans order status updates out to every client watching an order.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan StatusUpdate
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	orders     *services.OrderService
}

// Subscription is one client connection watching one order.
type Subscription struct {
	Conn    *websocket.Conn
	OrderID uint
	UserID  uint
}

// StatusUpdate is the payload pushed to watchers when an order changes.
type StatusUpdate struct {
	OrderID       uint                 `json:"orderId"`
	Reference     string               `json:"reference"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	EtaMinutes    int                  `json:"etaMinutes"`
}

func NewOrderHub(orders *services.OrderService) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusUpdate, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		orders:     orders,
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case upd := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[upd.OrderID] {
				if err := conn.WriteJSON(upd); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[upd.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderStatusChanged implements services.StatusPublisher. Updates are
// dropped rather than blocking the caller when the hub falls behind.
func (h *OrderHub) OrderStatusChanged(o *entity.Order) {
	upd := StatusUpdate{
		OrderID:       o.ID,
		Reference:     o.Reference,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		EtaMinutes:    o.EtaMinutes,
	}
	select {
	case h.broadcast <- upd:
	default:
		log.Printf("ws broadcast queue full, dropping update for order %d", o.ID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	var orderID uint
	fmt.Sscan(c.Param("id"), &orderID)

	userID := utils.CurrentUserID(c)
	if userID == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	// Ownership check before the upgrade so failures stay plain HTTP.
	if _, err := h.orders.DetailForUser(c.Request.Context(), userID, orderID); err != nil {
		resp.Error(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, OrderID: orderID, UserID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the read side alive so pings and close frames are handled.
// Clients only receive on this socket, inbound frames are discarded.
func (h *OrderHub) drain(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
