package realtime

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// wsSink adapts a websocket connection to the Sink interface. WriteJSON
// is not safe for concurrent writers, hence the mutex.
type wsSink struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *wsSink) Send(frame Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(frame.MarshalMap())
}

func (s *wsSink) Close() error {
	return s.conn.Close()
}

// UpgradeGuard rejects plain HTTP requests on the realtime route.
func UpgradeGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// Handler returns the websocket handler that registers each connection
// with the broadcaster until the peer goes away. An optional "sessao"
// query parameter binds the observer for session-scoped delivery.
func Handler(b *Broadcaster, logger *zap.Logger) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		var sessaoID *string
		if s := conn.Query("sessao"); s != "" {
			sessaoID = &s
		}

		cliente := NewCliente(&wsSink{conn: conn}, sessaoID)
		b.Conectar(cliente)
		defer b.Desconectar(cliente)

		// Clients only listen; drain incoming frames until close so
		// control messages keep being processed.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				logger.Debug("conexão realtime encerrada", zap.Error(err))
				return
			}
		}
	})
}
