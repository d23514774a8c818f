package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"investment-panel/internal/domain"
	"investment-panel/internal/observability"
)

// SimulationEvent is the JSON payload broadcast for each stored simulation.
type SimulationEvent struct {
	SimulationID  string  `json:"simulation_id"`
	ClientID      string  `json:"client_id"`
	ProductName   string  `json:"product_name"`
	InitialAmount float64 `json:"initial_amount"`
	TermMonths    int     `json:"term_months"`
	FinalAmount   float64 `json:"final_amount"`
	ReturnPercent float64 `json:"return_percent"`
	SimulatedAt   int64   `json:"simulated_at"`
}

// Feed broadcasts simulation events to websocket subscribers.
type Feed struct {
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewFeed creates a simulation feed.
func NewFeed(logger *log.Logger) *Feed {
	return &Feed{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Handler upgrades the request and subscribes the connection until the
// client disconnects.
func (f *Feed) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Printf("websocket upgrade failed: %v", err)
		return
	}

	f.mu.Lock()
	f.conns[conn] = struct{}{}
	subscribers := len(f.conns)
	f.mu.Unlock()
	observability.DefaultMetrics.FeedSubscribers.Set(float64(subscribers))

	// Drain incoming messages; we only push.
	go func() {
		defer f.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast pushes one event to every subscriber. Write failures drop the
// subscriber.
func (f *Feed) Broadcast(result *domain.SimulationResult) {
	event := SimulationEvent{
		SimulationID:  result.SimulationID,
		ClientID:      result.ClientID,
		ProductName:   result.ProductName,
		InitialAmount: result.InitialAmount,
		TermMonths:    result.TermMonths,
		FinalAmount:   result.FinalAmount,
		ReturnPercent: result.ReturnPercent(),
		SimulatedAt:   result.SimulatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		f.logger.Printf("marshal simulation event: %v", err)
		return
	}

	f.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(f.conns))
	for c := range f.conns {
		conns = append(conns, c)
	}
	f.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			f.remove(c)
			continue
		}
		observability.DefaultMetrics.FeedEventsSent.Inc()
	}
}

// Close disconnects all subscribers.
func (f *Feed) Close() {
	f.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(f.conns))
	for c := range f.conns {
		conns = append(conns, c)
	}
	f.conns = make(map[*websocket.Conn]struct{})
	f.mu.Unlock()

	for _, c := range conns {
		c.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.Close()
	}
	observability.DefaultMetrics.FeedSubscribers.Set(0)
}

func (f *Feed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	_, ok := f.conns[conn]
	delete(f.conns, conn)
	subscribers := len(f.conns)
	f.mu.Unlock()

	if ok {
		conn.Close()
	}
	observability.DefaultMetrics.FeedSubscribers.Set(float64(subscribers))
}
